package book_call

import (
	"errors"
	"net/http"

	"github.com/m04kA/Coach-ScheduleService/internal/api/handlers"
	bookCall "github.com/m04kA/Coach-ScheduleService/internal/usecase/book_call"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgClientNotFound     = "клиент не найден"
	msgOutOfHours         = "время вне рабочих часов"
	msgSlotConflict       = "интервал пересекается с другим бронированием"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase BookCallUseCase
	logger  Logger
}

func NewHandler(useCase BookCallUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookCallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookCall.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%s", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, bookCall.ErrOutOfHours):
			h.logger.Warn("POST /bookings - Out of hours: client_id=%s, time=%s", req.ClientID, req.Time)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, bookCall.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: client_id=%s, date=%s, time=%s",
				req.ClientID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, bookCall.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to book call: client_id=%s, error=%v", req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Call booked successfully: booking_id=%s, client_id=%s",
		result.ID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
