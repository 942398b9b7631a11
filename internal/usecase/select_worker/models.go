package select_worker

// Request модель запроса на выбор мастера
type Request struct {
	UserID   int64  // ID пользователя (владельца черновика)
	DraftID  string // ID черновика
	WorkerID string // ID мастера из каталога салона
}
