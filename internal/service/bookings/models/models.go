package models

import (
	"time"

	"github.com/m04kA/Coach-ScheduleService/internal/domain"
	"github.com/m04kA/Coach-ScheduleService/pkg/types"
)

// BookingResponse модель сохраненного бронирования для ответа сервиса
// Отдает литеральную запись без разворачивания рекуррентности
type BookingResponse struct {
	ID              string
	ClientID        string
	CallType        domain.CallType
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Recurring       bool
	DayOfWeek       int
	CreatedAt       time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse
}

// FromDomainBooking конвертирует доменное бронирование в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		ClientID:        b.ClientID,
		CallType:        b.CallType,
		Date:            b.StartAt,
		StartTime:       types.NewTimeString(b.StartAt),
		DurationMinutes: b.DurationMinutes(),
		Recurring:       b.Recurring,
		DayOfWeek:       b.DayOfWeek,
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out}
}
