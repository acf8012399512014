package create_booking

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/booking"
)

type fingerprintPayload struct {
	Start          time.Time          `json:"start"`
	End            time.Time          `json:"end"`
	StaffID        *int64             `json:"staff_id"`
	ZoneID         *int64             `json:"zone_id"`
	ZoneName       string             `json:"zone_name"`
	Mode           domain.MeetingMode `json:"mode"`
	ClientName     string             `json:"client_name"`
	ClientEmail    *string            `json:"client_email"`
	ClientPhone    *string            `json:"client_phone"`
	Summary        *string            `json:"summary"`
	Notes          *string            `json:"notes"`
	RestaurantName *string            `json:"restaurant_name"`
	City           *string            `json:"city"`
	Attendees      []string           `json:"attendees"`
}

// fingerprint хэш полезной нагрузки запроса без ключа идемпотентности
func fingerprint(req *Request) (string, error) {
	payload := fingerprintPayload{
		Start:          req.Start.UTC(),
		End:            req.End.UTC(),
		StaffID:        req.StaffID,
		ZoneID:         req.ZoneID,
		ZoneName:       req.ZoneName,
		Mode:           req.Mode,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,
		Summary:        req.Summary,
		Notes:          req.Notes,
		RestaurantName: req.RestaurantName,
		City:           req.City,
		Attendees:      req.Attendees,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// replay ищет ранее созданную по ключу встречу.
// Возвращает nil, если ключ свободен или его встреча отменена
func (uc *UseCase) replay(ctx context.Context, key, fp string) (*domain.Appointment, error) {
	rec, ok := uc.cache.Get(key)
	if !ok {
		stored, err := uc.appointmentRepo.GetIdempotency(ctx, key)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrIdempotencyKeyNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: failed to get idempotency key: %v", ErrInternal, err)
		}
		rec = *stored
	}

	// Встреча отменена: ключ свободен при любом содержимом запроса
	appt, err := uc.appointmentRepo.GetByID(ctx, rec.AppointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.cache.Remove(key)
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to get appointment id=%d: %v", ErrInternal, rec.AppointmentID, err)
	}

	if rec.Fingerprint != fp {
		return nil, ErrIdempotencyMismatch
	}

	uc.cache.Add(key, rec)
	return appt, nil
}
