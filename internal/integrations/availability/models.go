package availability

// SlotsRequest параметры запроса доступных слотов
//
// ServiceID - "репрезентативная" услуга (первая услуга первого участника),
// сохраняется ради обратной совместимости API доступности;
// фактическую длительность определяет TotalDuration
type SlotsRequest struct {
	WorkerID       string
	Date           string // YYYY-MM-DD
	ServiceID      string
	TotalDuration  int // минуты
	NumberOfPeople int // передаётся только при значении > 1
}

// Slot временной слот из сервиса доступности
type Slot struct {
	Start     string `json:"start"` // HH:MM
	Available bool   `json:"available"`
}

// slotsResponse обертка ответа сервиса доступности
type slotsResponse struct {
	Data []Slot `json:"data"`
}
