package check_availability

import (
	"time"

	"github.com/m04kA/Coach-ScheduleService/internal/domain"
)

// freeSlots сканирует рабочее окно на целевую дату с шагом policy.SlotStepMinutes
// и возвращает все кандидатные окна длиной policy.SlotDurationMinutes, которые
// целиком помещаются в рабочие часы и не пересекаются ни с одним занятым звонком.
//
// Скан не останавливается на первом занятом интервале: соседние кандидаты
// намеренно пересекаются между собой, это выбор точного времени начала,
// а не разбиение дня на непересекающиеся слоты.
//
// При окне, в которое не помещается ни один слот, результат пуст
func freeSlots(
	booked []domain.BookedCall,
	targetDate time.Time,
	policy domain.SchedulePolicy,
) ([]domain.FreeSlot, error) {
	open, close, err := policy.WindowOnDate(targetDate)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(policy.SlotDurationMinutes) * time.Minute
	step := time.Duration(policy.SlotStepMinutes) * time.Minute

	slots := make([]domain.FreeSlot, 0)
	for t := open; !t.Add(duration).After(close); t = t.Add(step) {
		end := t.Add(duration)
		if overlapsAny(t, end, booked) {
			continue
		}
		slots = append(slots, domain.FreeSlot{
			Start:           t,
			End:             end,
			DurationMinutes: policy.SlotDurationMinutes,
		})
	}

	return slots, nil
}

// overlapsAny проверяет пересечение кандидата [start, end) хотя бы с одним
// занятым интервалом (полуоткрытые интервалы, граничащие не пересекаются)
func overlapsAny(start, end time.Time, booked []domain.BookedCall) bool {
	for _, call := range booked {
		if domain.Overlaps(start, end, call.Start, call.End) {
			return true
		}
	}
	return false
}
