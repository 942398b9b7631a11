package set_recurrence

// SetRecurrenceRequest HTTP request model
// Запрос заменяет правило повторения целиком
type SetRecurrenceRequest struct {
	Enabled   bool    `json:"enabled"`
	Frequency *string `json:"frequency,omitempty"` // weekly | biweekly | monthly
	StartDate *string `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"endDate,omitempty"`   // YYYY-MM-DD
	DayOfWeek *int    `json:"dayOfWeek,omitempty"` // 0 = воскресенье ... 6 = суббота
}
