package models

import (
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос списка встреч
type ListAppointmentsRequest struct {
	From    *time.Time `json:"from,omitempty"`    // встречи, заканчивающиеся после From
	To      *time.Time `json:"to,omitempty"`      // встречи, начинающиеся до To
	StaffID *int64     `json:"staffId,omitempty"` // фильтр по сотруднику
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() domain.AppointmentFilter {
	filter := domain.AppointmentFilter{From: r.From, To: r.To}
	if r.StaffID != nil {
		filter.StaffIDs = []int64{*r.StaffID}
	}
	return filter
}

// Response модели

// AppointmentResponse ответ с данными встречи
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"durationMinutes"`
	ZoneID          int64     `json:"zoneId"`
	StaffID         int64     `json:"staffId"`
	MeetingMode     string    `json:"meetingMode"` // "physique" | "visio"

	ClientName     string   `json:"clientName"`
	ClientEmail    *string  `json:"clientEmail,omitempty"`
	ClientPhone    *string  `json:"clientPhone,omitempty"`
	Summary        *string  `json:"summary,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	RestaurantName *string  `json:"restaurantName,omitempty"`
	City           *string  `json:"city,omitempty"`
	Attendees      []string `json:"attendees"`

	IdempotencyKey string    `json:"idempotencyKey"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком встреч
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO, время в часовом поясе loc
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}

	attendees := a.Attendees
	if attendees == nil {
		attendees = []string{}
	}

	return &AppointmentResponse{
		ID:              a.ID,
		Start:           a.Start.In(loc),
		End:             a.End.In(loc),
		DurationMinutes: int(a.Duration() / time.Minute),
		ZoneID:          a.ZoneID,
		StaffID:         a.StaffID,
		MeetingMode:     string(a.MeetingMode),
		ClientName:      a.ClientName,
		ClientEmail:     a.ClientEmail,
		ClientPhone:     a.ClientPhone,
		Summary:         a.Summary,
		Notes:           a.Notes,
		RestaurantName:  a.RestaurantName,
		City:            a.City,
		Attendees:       attendees,
		IdempotencyKey:  a.IdempotencyKey,
		CreatedAt:       a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список встреч
func FromDomainAppointmentList(list []*domain.Appointment, loc *time.Location) *AppointmentListResponse {
	resp := &AppointmentListResponse{Appointments: make([]AppointmentResponse, 0, len(list))}
	for _, a := range list {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a, loc))
	}
	return resp
}
