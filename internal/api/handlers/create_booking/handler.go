package create_booking

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/api/handlers"
)

// IdempotencyHeader заголовок с ключом идемпотентности
const IdempotencyHeader = "Idempotency-Key"

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case
	useCaseReq, err := req.ToUseCaseRequest(r.Header.Get(IdempotencyHeader))
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		rej, ok := classify(err)
		if !ok {
			h.logger.Error("POST /bookings - Failed to create booking: start=%s, error=%v", req.Start, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("POST /bookings - Booking rejected: code=%s, error=%v", rej.code, err)
		handlers.RespondJSON(w, rej.status, handlers.ErrorResponse{
			Error: rej.message, Code: rej.code, Details: rej.details, Retryable: rej.retryable,
		})
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}

	h.logger.Info("POST /bookings - Booking created successfully: id=%d, staff=%d, zone=%d, replayed=%t",
		result.Appointment.ID, result.Appointment.StaffID, result.Appointment.ZoneID, result.Replayed)
	w.Header().Set(IdempotencyHeader, result.Appointment.IdempotencyKey)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result, h.location))
}

// HandlePreflight POST /api/v1/bookings/preflight
// Отклонение правилами возвращается как 200 с ok=false и кодом
func (h *Handler) HandlePreflight(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/preflight - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(r.Header.Get(IdempotencyHeader))
	if err != nil {
		h.logger.Warn("POST /bookings/preflight - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Preflight(r.Context(), useCaseReq)
	if err != nil {
		rej, ok := classify(err)
		if !ok {
			h.logger.Error("POST /bookings/preflight - Failed to check booking: start=%s, error=%v", req.Start, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Info("POST /bookings/preflight - Rejected: code=%s", rej.code)
		handlers.RespondJSON(w, http.StatusOK, &PreflightResponse{
			Code: rej.code, Error: rej.message, Details: rej.details, Retryable: rej.retryable,
		})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromPreflightResponse(result, h.location))
}
