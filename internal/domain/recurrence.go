package domain

import "time"

// Frequency периодичность повторяющейся записи
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// IsValid returns true for one of the supported frequencies
func (f Frequency) IsValid() bool {
	return f == FrequencyWeekly || f == FrequencyBiweekly || f == FrequencyMonthly
}

// RecurrenceRule правило повторяющейся записи
// Имеет смысл только при Enabled = true
//
// DayOfWeek хранится в соглашении JS Date: 0 = воскресенье ... 6 = суббота
// По умолчанию выводится из дня недели StartDate и пересчитывается при каждом
// изменении StartDate, пока не задан явно (DayOfWeekOverridden)
type RecurrenceRule struct {
	Enabled             bool
	Frequency           Frequency
	StartDate           time.Time
	EndDate             *time.Time
	DayOfWeek           int
	DayOfWeekOverridden bool
}

// SetStartDate устанавливает дату начала и пересчитывает день недели,
// если он не был задан явно
func (r *RecurrenceRule) SetStartDate(date time.Time) {
	r.StartDate = date
	if !r.DayOfWeekOverridden {
		r.DayOfWeek = int(date.Weekday())
	}
}

// OverrideDayOfWeek явно задаёт день недели; дальнейшие изменения StartDate
// его больше не пересчитывают
func (r *RecurrenceRule) OverrideDayOfWeek(dayOfWeek int) {
	r.DayOfWeek = dayOfWeek
	r.DayOfWeekOverridden = true
}

// ValidateDates проверяет даты правила относительно текущего момента
// StartDate не может быть в прошлом, EndDate (если задана) не раньше StartDate
func (r *RecurrenceRule) ValidateDates(now time.Time) error {
	if !r.Enabled {
		return nil
	}
	if r.StartDate.IsZero() {
		return ErrRecurrenceStartRequired
	}

	startOnly := truncateToDay(r.StartDate)
	nowOnly := truncateToDay(now)
	if startOnly.Before(nowOnly) {
		return ErrRecurrenceStartInPast
	}

	if r.EndDate != nil && truncateToDay(*r.EndDate).Before(startOnly) {
		return ErrRecurrenceEndBeforeStart
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
