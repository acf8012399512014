package create_booking

import (
	"context"

	createBooking "github.com/m04kA/SMC-ZoneBooking/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
	Preflight(ctx context.Context, req *createBooking.Request) (*createBooking.PreflightResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
