package list_bookings

import (
	"net/http"
	"time"

	"github.com/m04kA/Coach-ScheduleService/internal/api/handlers"
	"github.com/m04kA/Coach-ScheduleService/internal/domain"
	"github.com/m04kA/Coach-ScheduleService/internal/service/bookings/models"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// BookingResponse HTTP response model (литеральная запись, без проекций)
type BookingResponse struct {
	ID              string `json:"id"`
	ClientID        string `json:"clientId"`
	CallType        string `json:"callType"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Recurring       bool   `json:"recurring"`
	DayOfWeek       int    `json:"dayOfWeek"`
	CreatedAt       string `json:"createdAt"`
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Fetched %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.BookingListResponse) []BookingResponse {
	out := make([]BookingResponse, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		out = append(out, BookingResponse{
			ID:              b.ID,
			ClientID:        b.ClientID,
			CallType:        string(b.CallType),
			Date:            b.Date.Format(domain.DateFormat),
			StartTime:       b.StartTime.String(),
			DurationMinutes: b.DurationMinutes,
			Recurring:       b.Recurring,
			DayOfWeek:       b.DayOfWeek,
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
