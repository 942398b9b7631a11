package get_available_slots

import (
	"time"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
)

// Request модель запроса доступных слотов
type Request struct {
	UserID  int64     // ID пользователя (владельца черновика)
	DraftID string    // ID черновика
	Date    time.Time // Дата, на которую запрашиваются слоты
}

// Response модель ответа с сеткой слотов
//
// Stale выставляется, когда за время запроса к сервису доступности
// черновик успел запросить слоты ещё раз: такой ответ не сохраняется,
// и Slots содержит актуальное состояние черновика
//
// Degraded выставляется при сбое сервиса доступности: пустая сетка
// сохранена в черновике, а вызывающий обязан показать ошибку
type Response struct {
	DraftID              string
	Date                 time.Time
	WorkerID             string
	TotalDurationMinutes int
	NumberOfPeople       int
	Slots                []domain.TimeSlot
	Stale                bool
	Degraded             bool
}
