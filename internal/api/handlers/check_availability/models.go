package check_availability

import (
	"time"

	"github.com/m04kA/Coach-ScheduleService/internal/domain"
	checkAvailability "github.com/m04kA/Coach-ScheduleService/internal/usecase/check_availability"
)

// ScheduleResponse HTTP response model: расписание дня
type ScheduleResponse struct {
	Date        string               `json:"date"`
	ServerTime  string               `json:"serverTime"`
	BookedCalls []BookedCallResponse `json:"bookedCalls"`
	FreeSlots   []FreeSlotResponse   `json:"freeSlots"`
}

// BookedCallResponse занятый интервал (прямой или еженедельная проекция)
type BookedCallResponse struct {
	BookingID       string `json:"bookingId"`
	ClientName      string `json:"clientName"`
	CallType        string `json:"callType"`
	Recurring       bool   `json:"recurring"`
	Start           string `json:"start"` // "HH:MM"
	End             string `json:"end"`   // "HH:MM"
	DurationMinutes int    `json:"durationMinutes"`
}

// FreeSlotResponse свободное кандидатное окно
type FreeSlotResponse struct {
	Start           string `json:"start"` // "HH:MM"
	End             string `json:"end"`   // "HH:MM"
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *ScheduleResponse {
	booked := make([]BookedCallResponse, 0, len(resp.BookedCalls))
	for _, call := range resp.BookedCalls {
		booked = append(booked, BookedCallResponse{
			BookingID:       call.BookingID,
			ClientName:      call.ClientName,
			CallType:        string(call.CallType),
			Recurring:       call.Recurring,
			Start:           call.Start.Format(domain.TimeFormat),
			End:             call.End.Format(domain.TimeFormat),
			DurationMinutes: call.DurationMinutes,
		})
	}

	free := make([]FreeSlotResponse, 0, len(resp.FreeSlots))
	for _, slot := range resp.FreeSlots {
		free = append(free, FreeSlotResponse{
			Start:           slot.Start.Format(domain.TimeFormat),
			End:             slot.End.Format(domain.TimeFormat),
			DurationMinutes: slot.DurationMinutes,
		})
	}

	return &ScheduleResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		ServerTime:  resp.ServerTime.Format(time.RFC3339),
		BookedCalls: booked,
		FreeSlots:   free,
	}
}
