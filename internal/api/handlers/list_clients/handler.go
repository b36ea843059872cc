package list_clients

import (
	"net/http"
	"time"

	"github.com/m04kA/Coach-ScheduleService/internal/api/handlers"
	"github.com/m04kA/Coach-ScheduleService/internal/service/clients/models"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ClientResponse HTTP response model
type ClientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}

// Handle GET /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients - Fetched %d clients", len(result.Clients))
	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.ClientListResponse) []ClientResponse {
	out := make([]ClientResponse, 0, len(resp.Clients))
	for _, c := range resp.Clients {
		out = append(out, ClientResponse{
			ID:        c.ID,
			Name:      c.Name,
			Phone:     c.Phone,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
