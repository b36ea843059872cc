package book_call

import (
	"fmt"
	"time"

	"github.com/m04kA/Coach-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID == "" {
		return fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}

	if !req.CallType.IsValid() {
		return fmt.Errorf("%w: callType must be %q or %q", ErrInvalidInput,
			domain.CallOnboarding, domain.CallFollowup)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateBusinessHours проверяет, что звонок начинается внутри рабочего окна.
// Проверка всегда использует фиксированный запас policy.BookingMarginMinutes
// от времени начала, независимо от фактической длительности звонка:
// так вела себя исходная система, и это поведение зафиксировано тестами.
func validateBusinessHours(req *Request, policy domain.SchedulePolicy) error {
	start, err := req.StartTime.MinutesFromMidnight()
	if err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	open, err := policy.OpenTime.MinutesFromMidnight()
	if err != nil {
		return fmt.Errorf("%w: invalid open time: %v", ErrInternal, err)
	}

	close, err := policy.CloseTime.MinutesFromMidnight()
	if err != nil {
		return fmt.Errorf("%w: invalid close time: %v", ErrInternal, err)
	}

	if start < open || start+policy.BookingMarginMinutes > close {
		return fmt.Errorf("%w: time must be between %s and %s", ErrOutOfHours,
			policy.OpenTime, policy.CloseTime)
	}

	return nil
}

// findConflict возвращает первое бронирование, чей литеральный интервал
// пересекается с запрошенным, либо nil. Рекуррентность здесь не разворачивается:
// сравниваются только сохраненные интервалы (как в исходной системе)
func findConflict(start time.Time, durationMinutes int, bookings []*domain.Booking) *domain.Booking {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	for _, b := range bookings {
		if domain.Overlaps(start, end, b.StartAt, b.EndAt()) {
			return b
		}
	}

	return nil
}
