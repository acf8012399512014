package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// validateRequest валидирует и нормализует входные данные запроса
func validateRequest(req *Request) error {
	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if !req.Mode.Valid() {
		return fmt.Errorf("%w: meeting mode must be %q or %q", ErrInvalidInput, domain.ModePhysical, domain.ModeVisio)
	}

	if !req.End.IsZero() && !req.Start.Before(req.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	if req.ZoneID != nil && *req.ZoneID <= 0 {
		return fmt.Errorf("%w: zoneId must be positive", ErrInvalidInput)
	}

	req.ClientName = strings.TrimSpace(req.ClientName)
	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if req.ClientEmail != nil {
		if _, err := mail.ParseAddress(*req.ClientEmail); err != nil {
			return fmt.Errorf("%w: invalid clientEmail: %v", ErrInvalidInput, err)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if len(req.Attendees) > domain.MaxAttendees {
		return fmt.Errorf("%w: at most %d attendees", ErrInvalidInput, domain.MaxAttendees)
	}
	for i, a := range req.Attendees {
		req.Attendees[i] = strings.TrimSpace(a)
		if req.Attendees[i] == "" {
			return fmt.Errorf("%w: attendee %d is empty", ErrInvalidInput, i)
		}
	}

	key, err := normalizeKey(req.IdempotencyKey)
	if err != nil {
		return err
	}
	req.IdempotencyKey = key

	return nil
}

// normalizeKey приводит UUID к каноническому виду, пустой ключ заменяет новым UUID
func normalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return uuid.NewString(), nil
	}
	if len(key) > domain.MaxIdempotencyKeyLen {
		return "", fmt.Errorf("%w: idempotency key exceeds %d characters", ErrInvalidInput, domain.MaxIdempotencyKeyLen)
	}
	if id, err := uuid.Parse(key); err == nil {
		return id.String(), nil
	}
	return key, nil
}

// validateBookingTime проверяет notice_min и window_days
func validateBookingTime(start, now time.Time, settings *domain.Settings, loc *time.Location) error {
	earliest := now.Add(time.Duration(settings.Notice()) * time.Minute)
	if start.Before(earliest) {
		return fmt.Errorf("%w: earliest start is %s", ErrTooLateToBook, earliest.In(loc).Format(time.RFC3339))
	}

	lastDate := domain.DateOf(now, loc).AddDate(0, 0, settings.Window())
	if domain.DateOf(start, loc).After(lastDate) {
		return fmt.Errorf("%w: bookings open until %s", ErrDateTooFarInFuture, lastDate.Format(domain.DateFormat))
	}

	return nil
}

// resolveRequestedZone находит запрошенную зону и проверяет совместимость с режимом.
// Для визио без явной зоны возвращается визио-зона
func resolveRequestedZone(req *Request, all []*domain.Zone) (*domain.Zone, error) {
	var zone *domain.Zone
	switch {
	case req.ZoneID != nil:
		zone = domain.ZoneIndex(all)[*req.ZoneID]
		if zone == nil {
			return nil, fmt.Errorf("%w: id=%d", ErrZoneNotFound, *req.ZoneID)
		}
	case strings.TrimSpace(req.ZoneName) != "":
		zone = domain.FindZoneByName(all, req.ZoneName)
		if zone == nil {
			return nil, fmt.Errorf("%w: name=%q", ErrZoneNotFound, req.ZoneName)
		}
	}

	if req.Mode == domain.ModeVisio {
		visio := domain.FindVisioZone(all)
		if visio == nil {
			return nil, ErrNoVisioZone
		}
		if zone != nil && zone.ID != visio.ID {
			return nil, fmt.Errorf("%w: zone %q is for in-person meetings", ErrModeZoneMismatch, zone.Name)
		}
		return visio, nil
	}

	if zone != nil && zone.IsVisio() {
		return nil, fmt.Errorf("%w: zone %q is for remote meetings", ErrModeZoneMismatch, zone.Name)
	}
	return zone, nil
}
