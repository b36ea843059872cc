package check_availability

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/m04kA/Coach-ScheduleService/internal/domain"
)

// projectOntoDate проецирует бронирования на целевую дату.
//
// Прямое совпадение: сохраненная дата бронирования равна целевой - звонок
// отображается со своим типом и длительностью. Иначе, для рекуррентных
// бронирований, проверяется еженедельное правило от даты первого звонка;
// совпадение дает 20-минутный followup в то же время суток, перенесенное
// на целевую дату. Прямое совпадение имеет приоритет и исключает проекцию.
//
// Порядок результата повторяет порядок обхода bookings
func projectOntoDate(
	bookings []*domain.Booking,
	clientNames map[string]string,
	targetDate time.Time,
) []domain.BookedCall {
	booked := make([]domain.BookedCall, 0)

	for _, b := range bookings {
		var call domain.BookedCall

		switch {
		case isSameDay(b.StartAt, targetDate):
			// Прямое совпадение: литеральный интервал бронирования
			call = domain.BookedCall{
				BookingID:       b.ID,
				CallType:        b.CallType,
				Recurring:       b.Recurring,
				Start:           b.StartAt,
				End:             b.EndAt(),
				DurationMinutes: b.DurationMinutes(),
			}

		case recursOn(b, targetDate):
			// Еженедельная проекция: всегда followup на 20 минут,
			// в то же время суток, что и исходное бронирование
			start := atSameTimeOfDay(b.StartAt, targetDate)
			call = domain.BookedCall{
				BookingID:       b.ID,
				CallType:        domain.CallFollowup,
				Recurring:       b.Recurring,
				Start:           start,
				End:             start.Add(domain.FollowupDurationMinutes * time.Minute),
				DurationMinutes: domain.FollowupDurationMinutes,
			}

		default:
			continue
		}

		call.ClientName = resolveClientName(clientNames, b.ClientID)
		booked = append(booked, call)
	}

	return booked
}

// recursOn проверяет, выпадает ли еженедельная проекция бронирования
// на целевую дату: день недели совпадает и дата входит в WEEKLY-правило,
// заякоренное на дате первого звонка
func recursOn(b *domain.Booking, targetDate time.Time) bool {
	if !b.Recurring {
		return false
	}
	if b.DayOfWeek != int(targetDate.Weekday()) {
		return false
	}

	anchor := dateOnly(b.FirstCallAt)
	target := dateOnly(targetDate)
	if target.Before(anchor) {
		return false
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.WEEKLY,
		Dtstart: anchor,
	})
	if err != nil {
		return false
	}

	return len(rule.Between(target, target, true)) > 0
}

// resolveClientName возвращает имя клиента либо плейсхолдер для
// неразрешимых идентификаторов
func resolveClientName(clientNames map[string]string, clientID string) string {
	if name, ok := clientNames[clientID]; ok {
		return name
	}
	return domain.UnknownClientName
}

// atSameTimeOfDay переносит время суток instant на дату date
func atSameTimeOfDay(instant, date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		instant.Hour(), instant.Minute(), 0, 0, date.Location())
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// dateOnly обнуляет время, оставляя только календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
