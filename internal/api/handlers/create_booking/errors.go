package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-ZoneBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTime         = "некорректный формат времени, ожидается RFC3339"
	msgInvalidInput        = "некорректные данные бронирования"
	msgTooLateToBook       = "слишком поздно для бронирования этого слота"
	msgDateTooFar          = "дата бронирования слишком далеко в будущем"
	msgModeZoneMismatch    = "режим встречи не подходит для выбранной зоны"
	msgNoVisioZone         = "зона для видеовстреч не настроена"
	msgStaffNotAvailable   = "нет сотрудников, работающих в это время"
	msgZoneLocked          = "зона на эту половину дня уже определена"
	msgIdempotencyMismatch = "ключ идемпотентности уже использован с другими данными"
	msgStaffNotFound       = "сотрудник не найден"
	msgZoneNotFound        = "зона не найдена"
	msgCapacity            = "достигнут лимит очных встреч на половину дня"
	msgSpacing             = "слишком маленький интервал между встречами"
	msgSlotTaken           = "выбранный слот уже занят"
	msgBusy                = "календарь сотрудника занят, повторите запрос"
)

// rejection ответ на отклоненный запрос
type rejection struct {
	status    int
	code      string
	message   string
	details   string
	retryable bool
}

// classify сопоставляет ошибку use case с ответом. false для внутренних ошибок
func classify(err error) (rejection, bool) {
	var details string
	var violation *domain.Violation
	if errors.As(err, &violation) {
		details = violation.Reason
	}

	switch {
	case errors.Is(err, createBooking.ErrIdempotencyMismatch):
		return rejection{status: http.StatusBadRequest, code: "idempotency_key_reused", message: msgIdempotencyMismatch}, true
	case errors.Is(err, createBooking.ErrTooLateToBook):
		return rejection{status: http.StatusBadRequest, code: "too_late", message: msgTooLateToBook}, true
	case errors.Is(err, createBooking.ErrDateTooFarInFuture):
		return rejection{status: http.StatusBadRequest, code: "outside_window", message: msgDateTooFar}, true
	case errors.Is(err, createBooking.ErrModeZoneMismatch):
		return rejection{status: http.StatusBadRequest, code: "mode_zone_mismatch", message: msgModeZoneMismatch}, true
	case errors.Is(err, createBooking.ErrNoVisioZone):
		return rejection{status: http.StatusBadRequest, code: "no_visio_zone", message: msgNoVisioZone}, true
	case errors.Is(err, createBooking.ErrStaffNotAvailable):
		return rejection{status: http.StatusBadRequest, code: "staff_not_available", message: msgStaffNotAvailable}, true
	case errors.Is(err, createBooking.ErrZoneLocked):
		return rejection{status: http.StatusBadRequest, code: "zone_locked", message: msgZoneLocked}, true
	case errors.Is(err, domain.ErrValidation):
		return rejection{status: http.StatusBadRequest, code: "invalid_input", message: msgInvalidInput}, true

	case errors.Is(err, createBooking.ErrStaffNotFound):
		return rejection{status: http.StatusNotFound, code: "staff_not_found", message: msgStaffNotFound}, true
	case errors.Is(err, createBooking.ErrZoneNotFound):
		return rejection{status: http.StatusNotFound, code: "zone_not_found", message: msgZoneNotFound}, true

	case errors.Is(err, domain.ErrCapacity):
		return rejection{status: http.StatusUnprocessableEntity, code: "capacity", message: msgCapacity, details: details}, true
	case errors.Is(err, domain.ErrSpacing):
		return rejection{status: http.StatusUnprocessableEntity, code: "spacing", message: msgSpacing, details: details}, true

	case errors.Is(err, createBooking.ErrBusy):
		return rejection{status: http.StatusConflict, code: "busy", message: msgBusy, retryable: true}, true
	case errors.Is(err, domain.ErrConflict):
		return rejection{status: http.StatusConflict, code: "slot_taken", message: msgSlotTaken, retryable: true}, true
	}
	return rejection{}, false
}
