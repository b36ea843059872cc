package check_availability

import (
	"time"

	"github.com/m04kA/Coach-ScheduleService/internal/domain"
)

// Request модель запроса расписания на дату
type Request struct {
	Date time.Time // Целевая дата (без времени)
}

// Response расписание дня: занятые звонки и свободные слоты
type Response struct {
	Date        time.Time           // Дата, на которую запрашивалось расписание
	ServerTime  time.Time           // Текущее время сервера (для живых часов в UI)
	BookedCalls []domain.BookedCall // Звонки, происходящие в эту дату (прямые и проекции)
	FreeSlots   []domain.FreeSlot   // Свободные слоты длиной policy.SlotDurationMinutes
}
