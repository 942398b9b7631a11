package get_available_slots

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("get_available_slots: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("get_available_slots: access denied")

	// ErrDraftExpired возвращается, когда срок жизни черновика истёк
	ErrDraftExpired = errors.New("get_available_slots: draft has expired")

	// ErrDraftSubmitted возвращается при попытке работать с отправленным черновиком
	ErrDraftSubmitted = errors.New("get_available_slots: draft has already been submitted")

	// ErrStepNotReachable возвращается, когда не выбраны услуги или мастер
	ErrStepNotReachable = errors.New("get_available_slots: services and worker must be selected first")

	// ErrWorkerNotFound возвращается, когда сервис доступности не знает мастера
	ErrWorkerNotFound = errors.New("get_available_slots: worker not found")

	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
