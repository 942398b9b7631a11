package set_people

// Request модель запроса на изменение количества участников
//
// NumberOfPeople приводится к диапазону [1, 10]: значения за границами
// не считаются ошибкой, а ограничиваются ближайшей допустимой величиной
type Request struct {
	UserID         int64  // ID пользователя (владельца черновика)
	DraftID        string // ID черновика
	NumberOfPeople int    // Желаемое количество участников
}
