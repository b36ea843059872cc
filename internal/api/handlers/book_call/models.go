package book_call

import (
	"time"

	"github.com/m04kA/Coach-ScheduleService/internal/domain"
	bookCall "github.com/m04kA/Coach-ScheduleService/internal/usecase/book_call"
	"github.com/m04kA/Coach-ScheduleService/pkg/types"
)

// BookCallRequest HTTP request model
type BookCallRequest struct {
	ClientID string `json:"clientId"`
	CallType string `json:"callType"` // "onboarding" | "followup"
	Date     string `json:"date"`     // "2025-08-01"
	Time     string `json:"time"`     // "11:00"
}

// BookingResponse HTTP response model
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с парсингом даты и времени)
func (r *BookCallRequest) ToUseCaseRequest() (*bookCall.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &bookCall.Request{
		ClientID:  r.ClientID,
		CallType:  domain.CallType(r.CallType),
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookCall.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		CallType:        string(resp.CallType),
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Recurring:       resp.Recurring,
		DayOfWeek:       resp.DayOfWeek,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
