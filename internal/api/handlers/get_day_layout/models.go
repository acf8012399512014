package get_day_layout

import (
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	getDayLayout "github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_day_layout"
)

// EventResponse событие в колонке дня
type EventResponse struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"` // "appointment" | "free"
	AppointmentID *int64    `json:"appointmentId,omitempty"`
	StaffID       int64     `json:"staffId"`
	ZoneID        *int64    `json:"zoneId,omitempty"`
	MeetingMode   string    `json:"meetingMode,omitempty"`
	ClientName    string    `json:"clientName,omitempty"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	StartMin      int       `json:"startMin"`
	EndMin        int       `json:"endMin"`
	Lane          int       `json:"lane"`
	LanesCount    int       `json:"lanesCount"`
}

// LayoutResponse HTTP response model
type LayoutResponse struct {
	Date       string          `json:"date"`
	LanesCount int             `json:"lanesCount"`
	Events     []EventResponse `json:"events"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayLayout.Response, loc *time.Location) *LayoutResponse {
	out := &LayoutResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		LanesCount: resp.LanesCount,
		Events:     make([]EventResponse, 0, len(resp.Events)),
	}
	for _, e := range resp.Events {
		out.Events = append(out.Events, EventResponse{
			ID:            e.ID,
			Kind:          string(e.Kind),
			AppointmentID: e.AppointmentID,
			StaffID:       e.StaffID,
			ZoneID:        e.ZoneID,
			MeetingMode:   string(e.MeetingMode),
			ClientName:    e.ClientName,
			Start:         e.Start.In(loc),
			End:           e.End.In(loc),
			StartMin:      e.StartMin,
			EndMin:        e.EndMin,
			Lane:          e.Lane,
			LanesCount:    e.LanesCount,
		})
	}
	return out
}
