package set_recurrence

// Request модель запроса на установку правила повторения
//
// Запрос заменяет правило целиком (PUT-семантика). При Enabled = false
// правило удаляется, остальные поля игнорируются
//
// StartDate по умолчанию берётся из выбранной даты записи черновика
// DayOfWeek по умолчанию выводится из StartDate; явное значение фиксируется
// и дальнейшими изменениями StartDate не пересчитывается
type Request struct {
	UserID    int64   // ID пользователя (владельца черновика)
	DraftID   string  // ID черновика
	Enabled   bool    // Включено ли повторение
	Frequency *string // weekly | biweekly | monthly (по умолчанию weekly)
	StartDate *string // Дата начала серии, YYYY-MM-DD
	EndDate   *string // Дата окончания серии, YYYY-MM-DD (опционально)
	DayOfWeek *int    // Явный день недели: 0 = воскресенье ... 6 = суббота
}
