package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if !req.From.Before(req.To) {
		return fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	if req.To.Sub(req.From) > time.Duration(domain.MaxQueryRangeDays)*24*time.Hour {
		return fmt.Errorf("%w: at most %d days", ErrRangeTooLong, domain.MaxQueryRangeDays)
	}

	if req.Mode != "" && !req.Mode.Valid() {
		return fmt.Errorf("%w: unknown meeting mode %q", ErrInvalidInput, req.Mode)
	}

	if req.Form == "" {
		req.Form = FormSlots
	}
	if !req.Form.Valid() {
		return fmt.Errorf("%w: unknown form %q", ErrInvalidInput, req.Form)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	if req.ZoneID != nil && *req.ZoneID <= 0 {
		return fmt.Errorf("%w: zoneId must be positive", ErrInvalidInput)
	}

	return nil
}

// checkModeZone: визио-зона только для визио, остальные зоны только для очных встреч
func checkModeZone(mode domain.MeetingMode, zone *domain.Zone) error {
	switch {
	case mode == domain.ModePhysical && zone.IsVisio():
		return fmt.Errorf("%w: zone %q is for remote meetings", ErrModeZoneMismatch, zone.Name)
	case mode == domain.ModeVisio && !zone.IsVisio():
		return fmt.Errorf("%w: zone %q is for in-person meetings", ErrModeZoneMismatch, zone.Name)
	}
	return nil
}
