package get_zone_options

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	getZoneOptions "github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_zone_options"
)

// ZoneOption зона, доступная для слота
type ZoneOption struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Color   *string `json:"color,omitempty"`
	IsVisio bool    `json:"isVisio"`
}

// ZoneOptionsResponse HTTP response model
type ZoneOptionsResponse struct {
	Start         time.Time    `json:"start"`
	End           time.Time    `json:"end"`
	Zones         []ZoneOption `json:"zones"`
	Locked        bool         `json:"locked"`
	Reason        string       `json:"reason,omitempty"`
	AppointmentID *int64       `json:"appointmentId,omitempty"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(startStr, endStr, staffIDStr, modeStr, zoneIDStr string) (*getZoneOptions.Request, error) {
	start, err := time.Parse(time.RFC3339, strings.TrimSpace(startStr))
	if err != nil {
		return nil, fmt.Errorf("invalid start %q", startStr)
	}

	req := &getZoneOptions.Request{Start: start, Mode: domain.MeetingMode(strings.TrimSpace(modeStr))}

	if strings.TrimSpace(endStr) != "" {
		if req.End, err = time.Parse(time.RFC3339, strings.TrimSpace(endStr)); err != nil {
			return nil, fmt.Errorf("invalid end %q", endStr)
		}
	}

	if strings.TrimSpace(staffIDStr) != "" {
		if req.StaffID, err = strconv.ParseInt(strings.TrimSpace(staffIDStr), 10, 64); err != nil {
			return nil, fmt.Errorf("invalid staffId %q", staffIDStr)
		}
	}

	if strings.TrimSpace(zoneIDStr) != "" {
		zoneID, err := strconv.ParseInt(strings.TrimSpace(zoneIDStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid zoneId %q", zoneIDStr)
		}
		req.ZoneID = &zoneID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getZoneOptions.Response, loc *time.Location) *ZoneOptionsResponse {
	out := &ZoneOptionsResponse{
		Start:         resp.Start.In(loc),
		End:           resp.End.In(loc),
		Zones:         make([]ZoneOption, 0, len(resp.Zones)),
		Locked:        resp.Locked,
		Reason:        string(resp.Reason),
		AppointmentID: resp.AppointmentID,
	}
	for _, z := range resp.Zones {
		out.Zones = append(out.Zones, ZoneOption{ID: z.ID, Name: z.Name, Color: z.Color, IsVisio: z.IsVisio()})
	}
	return out
}
