package book_call

import (
	"time"

	"github.com/m04kA/Coach-ScheduleService/internal/domain"
	"github.com/m04kA/Coach-ScheduleService/pkg/types"
)

// Request модель запроса на бронирование звонка
type Request struct {
	ClientID  string           // ID клиента
	CallType  domain.CallType  // Тип звонка: onboarding или followup
	Date      time.Time        // Дата звонка (без времени)
	StartTime types.TimeString // Время начала (например, "11:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string           // ID бронирования
	ClientID        string           // ID клиента
	CallType        domain.CallType  // Тип звонка
	Date            time.Time        // Дата первого звонка
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Recurring       bool             // Повторяется ли еженедельно
	DayOfWeek       int              // День недели (0 = воскресенье)
	CreatedAt       time.Time        // Время создания записи
}
