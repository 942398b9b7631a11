package set_recurrence

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("set_recurrence: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("set_recurrence: access denied")

	// ErrDraftExpired возвращается, когда срок жизни черновика истёк
	ErrDraftExpired = errors.New("set_recurrence: draft has expired")

	// ErrDraftSubmitted возвращается при попытке изменить отправленный черновик
	ErrDraftSubmitted = errors.New("set_recurrence: draft has already been submitted")

	// ErrInvalidFrequency возвращается при неизвестной периодичности
	ErrInvalidFrequency = errors.New("set_recurrence: invalid frequency")

	// ErrInvalidDayOfWeek возвращается при дне недели вне диапазона 0..6
	ErrInvalidDayOfWeek = errors.New("set_recurrence: day of week must be between 0 and 6")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("set_recurrence: invalid date format")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("set_recurrence: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_recurrence: internal error")
)
