package add_client

import (
	"time"

	"github.com/m04kA/Coach-ScheduleService/internal/service/clients/models"
)

// AddClientRequest HTTP request model
type AddClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ClientResponse HTTP response model
type ClientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddClientRequest) ToServiceRequest() *models.CreateClientRequest {
	return &models.CreateClientRequest{
		Name:  r.Name,
		Phone: r.Phone,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ClientResponse) *ClientResponse {
	return &ClientResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Phone:     resp.Phone,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
