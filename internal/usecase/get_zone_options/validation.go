package get_zone_options

import (
	"fmt"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}
	if !req.End.IsZero() && !req.Start.Before(req.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffId is required", ErrInvalidInput)
	}
	if req.Mode == "" {
		req.Mode = domain.ModePhysical
	}
	if !req.Mode.Valid() {
		return fmt.Errorf("%w: unknown meeting mode %q", ErrInvalidInput, req.Mode)
	}
	if req.ZoneID != nil && *req.ZoneID <= 0 {
		return fmt.Errorf("%w: zoneId must be positive", ErrInvalidInput)
	}
	return nil
}
