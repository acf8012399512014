package get_availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	getAvailability "github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_availability"
)

// IntervalResponse свободный интервал сотрудника
type IntervalResponse struct {
	StaffID       int64     `json:"staffId"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	AfterBooking  bool      `json:"afterBooking"`
	BeforeBooking bool      `json:"beforeBooking"`
}

// SlotResponse слот для записи
type SlotResponse struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	ZoneID    *int64    `json:"zoneId,omitempty"`
	StaffIDs  []int64   `json:"staffIds"`
	VisioOnly bool      `json:"visioOnly"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	From      string             `json:"from"`
	To        string             `json:"to"` // включительно
	Form      string             `json:"form"`
	Mode      string             `json:"mode,omitempty"`
	Intervals []IntervalResponse `json:"intervals,omitempty"`
	Slots     []SlotResponse     `json:"slots"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case.
// to включительно; без to запрашивается один день from
func ToUseCaseRequest(fromStr, toStr, staffIDStr, zoneIDStr, modeStr, onlyStr string) (*getAvailability.Request, error) {
	from, err := time.Parse(domain.DateFormat, strings.TrimSpace(fromStr))
	if err != nil {
		return nil, fmt.Errorf("invalid from %q", fromStr)
	}

	to := from
	if strings.TrimSpace(toStr) != "" {
		to, err = time.Parse(domain.DateFormat, strings.TrimSpace(toStr))
		if err != nil {
			return nil, fmt.Errorf("invalid to %q", toStr)
		}
	}

	req := &getAvailability.Request{
		From: from,
		To:   to.AddDate(0, 0, 1),
		Mode: domain.MeetingMode(strings.TrimSpace(modeStr)),
		Form: getAvailability.Form(strings.TrimSpace(onlyStr)),
	}

	if req.StaffID, err = parseID(staffIDStr, "staffId"); err != nil {
		return nil, err
	}
	if req.ZoneID, err = parseID(zoneIDStr, "zone"); err != nil {
		return nil, err
	}

	return req, nil
}

func parseID(raw, name string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &id, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response, loc *time.Location) *AvailabilityResponse {
	out := &AvailabilityResponse{
		From:  resp.From.Format(domain.DateFormat),
		To:    resp.To.AddDate(0, 0, -1).Format(domain.DateFormat),
		Form:  string(resp.Form),
		Mode:  string(resp.Mode),
		Slots: make([]SlotResponse, 0, len(resp.Slots)),
	}
	if !resp.To.After(resp.From) {
		out.To = out.From
	}

	if resp.Form == getAvailability.FormMerged {
		out.Intervals = make([]IntervalResponse, 0, len(resp.Intervals))
		for _, f := range resp.Intervals {
			out.Intervals = append(out.Intervals, IntervalResponse{
				StaffID:       f.StaffID,
				Start:         f.Start.In(loc),
				End:           f.End.In(loc),
				AfterBooking:  f.AfterBooking,
				BeforeBooking: f.BeforeBooking,
			})
		}
		out.Slots = nil
	}

	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Start:     s.Start.In(loc),
			End:       s.End.In(loc),
			ZoneID:    s.ZoneID,
			StaffIDs:  s.StaffIDs,
			VisioOnly: s.VisioOnly,
		})
	}
	return out
}
