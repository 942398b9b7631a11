package domain

import "errors"

var (
	// ErrPersonIndexOutOfRange возвращается при обращении к несуществующему участнику
	ErrPersonIndexOutOfRange = errors.New("person index is out of range")

	// ErrStepNotReachable возвращается при попытке перейти на шаг, условия которого не выполнены
	ErrStepNotReachable = errors.New("wizard step preconditions are not satisfied")

	// ErrDraftSubmitted возвращается при попытке изменить уже отправленный черновик
	ErrDraftSubmitted = errors.New("draft has already been submitted")

	// ErrRecurrenceStartRequired возвращается, когда у включенного правила нет даты начала
	ErrRecurrenceStartRequired = errors.New("recurrence start date is required")

	// ErrRecurrenceStartInPast возвращается, когда дата начала правила в прошлом
	ErrRecurrenceStartInPast = errors.New("recurrence start date is in the past")

	// ErrRecurrenceEndBeforeStart возвращается, когда дата окончания раньше даты начала
	ErrRecurrenceEndBeforeStart = errors.New("recurrence end date is before start date")
)
