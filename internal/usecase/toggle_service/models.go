package toggle_service

// Request модель запроса на переключение услуги участника
type Request struct {
	UserID      int64  // ID пользователя (владельца черновика)
	DraftID     string // ID черновика
	PersonIndex int    // Индекс участника (0..numberOfPeople-1)
	ServiceID   string // ID услуги из каталога салона
}
