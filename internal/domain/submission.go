package domain

import "time"

// SubmissionKind форма отправки черновика
type SubmissionKind string

const (
	SubmissionSingle         SubmissionKind = "single"          // один участник, разовая запись
	SubmissionMulti          SubmissionKind = "multi"           // группа, разовые записи по участникам
	SubmissionRecurring      SubmissionKind = "recurring"       // один участник, серия
	SubmissionMultiRecurring SubmissionKind = "multi_recurring" // группа, серия
)

// PersonOutcome результат создания записи для одного участника
type PersonOutcome struct {
	PersonIndex   int
	AppointmentID *string
	Error         *string
	Success       bool
}

// Submission результат отправки черновика
// Хранится для разбора частичных сбоев групповых записей:
// система не откатывает уже созданные записи, а фиксирует, что именно создалось
type Submission struct {
	ID        string
	DraftID   string
	UserID    int64
	Kind      SubmissionKind
	Requested int
	Created   int
	SeriesID  *string
	People    []PersonOutcome
	CreatedAt time.Time
}

// IsPartialFailure возвращает true, когда создана только часть запрошенных записей
func (s *Submission) IsPartialFailure() bool {
	return s.Created > 0 && s.Created < s.Requested
}

// IsComplete возвращает true, когда созданы все запрошенные записи
func (s *Submission) IsComplete() bool {
	return s.Requested > 0 && s.Created == s.Requested
}
