package models

import (
	"time"

	"github.com/m04kA/Coach-ScheduleService/internal/domain"
)

// CreateClientRequest модель запроса на регистрацию клиента
type CreateClientRequest struct {
	Name  string
	Phone string
}

// ClientResponse модель клиента для ответа сервиса
type ClientResponse struct {
	ID        string
	Name      string
	Phone     string
	CreatedAt time.Time
}

// ClientListResponse список клиентов
type ClientListResponse struct {
	Clients []ClientResponse
}

// FromDomainClient конвертирует доменного клиента в ответ сервиса
func FromDomainClient(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainClientList конвертирует список доменных клиентов
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *FromDomainClient(c))
	}
	return &ClientListResponse{Clients: out}
}
