package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-ZoneBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Start          string   `json:"start"`         // RFC3339
	End            *string  `json:"end,omitempty"` // по умолчанию длительность режима
	StaffID        *int64   `json:"staffId,omitempty"`
	ZoneID         *int64   `json:"zoneId,omitempty"`
	ZoneName       string   `json:"zoneName,omitempty"`
	MeetingMode    string   `json:"meetingMode"` // "physique" | "visio"
	ClientName     string   `json:"clientName"`
	ClientEmail    *string  `json:"clientEmail,omitempty"`
	ClientPhone    *string  `json:"clientPhone,omitempty"`
	Summary        *string  `json:"summary,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	RestaurantName *string  `json:"restaurantName,omitempty"`
	City           *string  `json:"city,omitempty"`
	Attendees      []string `json:"attendees,omitempty"`
	IdempotencyKey string   `json:"idempotencyKey,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	*models.AppointmentResponse
	Replayed bool `json:"replayed"`
}

// ZoneOption зона в ответе проверки
type ZoneOption struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

// PreflightResponse HTTP response model проверки без записи
type PreflightResponse struct {
	OK         bool         `json:"ok"`
	Code       string       `json:"code,omitempty"`
	Error      string       `json:"error,omitempty"`
	Details    string       `json:"details,omitempty"`
	Retryable  bool         `json:"retryable,omitempty"`
	Start      string       `json:"start,omitempty"`
	End        string       `json:"end,omitempty"`
	StaffID    int64        `json:"staffId,omitempty"`
	ZoneID     int64        `json:"zoneId,omitempty"`
	Zones      []ZoneOption `json:"zones,omitempty"`
	Locked     bool         `json:"locked,omitempty"`
	LockReason string       `json:"lockReason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Ключ из заголовка Idempotency-Key имеет приоритет над полем тела
func (r *CreateBookingRequest) ToUseCaseRequest(headerKey string) (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, strings.TrimSpace(r.Start))
	if err != nil {
		return nil, fmt.Errorf("parse start: %w", err)
	}

	var end time.Time
	if r.End != nil && strings.TrimSpace(*r.End) != "" {
		end, err = time.Parse(time.RFC3339, strings.TrimSpace(*r.End))
		if err != nil {
			return nil, fmt.Errorf("parse end: %w", err)
		}
	}

	mode := domain.MeetingMode(strings.TrimSpace(r.MeetingMode))
	if mode == "" {
		mode = domain.ModePhysical
	}

	key := strings.TrimSpace(headerKey)
	if key == "" {
		key = r.IdempotencyKey
	}

	return &createBooking.Request{
		Start:          start,
		End:            end,
		StaffID:        r.StaffID,
		ZoneID:         r.ZoneID,
		ZoneName:       r.ZoneName,
		Mode:           mode,
		ClientName:     r.ClientName,
		ClientEmail:    r.ClientEmail,
		ClientPhone:    r.ClientPhone,
		Summary:        r.Summary,
		Notes:          r.Notes,
		RestaurantName: r.RestaurantName,
		City:           r.City,
		Attendees:      r.Attendees,
		IdempotencyKey: key,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response, loc *time.Location) *BookingResponse {
	return &BookingResponse{
		AppointmentResponse: models.FromDomainAppointment(resp.Appointment, loc),
		Replayed:            resp.Replayed,
	}
}

// FromPreflightResponse конвертирует результат проверки в HTTP response
func FromPreflightResponse(resp *createBooking.PreflightResponse, loc *time.Location) *PreflightResponse {
	zones := make([]ZoneOption, 0, len(resp.Zones))
	for _, z := range resp.Zones {
		zones = append(zones, ZoneOption{ID: z.ID, Name: z.Name, Color: z.Color})
	}
	return &PreflightResponse{
		OK:         true,
		Start:      resp.Start.In(loc).Format(time.RFC3339),
		End:        resp.End.In(loc).Format(time.RFC3339),
		StaffID:    resp.StaffID,
		ZoneID:     resp.ZoneID,
		Zones:      zones,
		Locked:     resp.Locked,
		LockReason: string(resp.LockReason),
	}
}
