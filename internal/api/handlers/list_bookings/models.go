package list_bookings

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/bookings/models"
)

// ToServiceRequest конвертирует query параметры в модель сервиса.
// from и to принимают RFC3339 или дату YYYY-MM-DD; дата в to включает весь день
func ToServiceRequest(fromStr, toStr, staffIDStr string, loc *time.Location) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	if fromStr != "" {
		from, err := parseBound(fromStr, loc, false)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := parseBound(toStr, loc, true)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	if staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil || staffID <= 0 {
			return nil, fmt.Errorf("invalid staffId %q", staffIDStr)
		}
		req.StaffID = &staffID
	}

	return req, nil
}

func parseBound(raw string, loc *time.Location, end bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	start, next := domain.DayBounds(date, loc)
	if end {
		return next, nil
	}
	return start, nil
}
