package submit_booking

import "time"

// Request модель запроса на отправку черновика
type Request struct {
	UserID  int64   // ID пользователя (владельца черновика)
	DraftID string  // ID черновика
	Notes   *string // Дополнительные заметки (опционально)
}

// PersonOutcomeView результат создания записи для одного участника
type PersonOutcomeView struct {
	PersonIndex   int
	AppointmentID *string
	Error         *string
	Success       bool
}

// Response модель ответа с результатом отправки
//
// При групповой записи Created может быть меньше Requested: уже созданные
// записи не откатываются, и клиент видит, для кого запись создана, а для
// кого нет
type Response struct {
	SubmissionID string
	DraftID      string
	Kind         string
	Requested    int
	Created      int
	SeriesID     *string
	People       []PersonOutcomeView
	SubmittedAt  time.Time
}
