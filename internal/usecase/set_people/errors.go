package set_people

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("set_people: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("set_people: access denied")

	// ErrDraftExpired возвращается, когда срок жизни черновика истёк
	ErrDraftExpired = errors.New("set_people: draft has expired")

	// ErrDraftSubmitted возвращается при попытке изменить отправленный черновик
	ErrDraftSubmitted = errors.New("set_people: draft has already been submitted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("set_people: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_people: internal error")
)
