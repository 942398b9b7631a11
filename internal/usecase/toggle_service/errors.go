package toggle_service

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("toggle_service: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("toggle_service: access denied")

	// ErrDraftExpired возвращается, когда срок жизни черновика истёк
	ErrDraftExpired = errors.New("toggle_service: draft has expired")

	// ErrDraftSubmitted возвращается при попытке изменить отправленный черновик
	ErrDraftSubmitted = errors.New("toggle_service: draft has already been submitted")

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("toggle_service: salon not found")

	// ErrServiceNotFound возвращается, когда услуги нет в каталоге салона
	ErrServiceNotFound = errors.New("toggle_service: service not found in salon catalog")

	// ErrPersonIndexOutOfRange возвращается при индексе участника вне диапазона
	ErrPersonIndexOutOfRange = errors.New("toggle_service: person index is out of range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("toggle_service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("toggle_service: internal error")
)
