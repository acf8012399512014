package get_zone_options

import (
	"context"

	getZoneOptions "github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_zone_options"
)

type GetZoneOptionsUseCase interface {
	Execute(ctx context.Context, req *getZoneOptions.Request) (*getZoneOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
