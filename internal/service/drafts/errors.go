package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrDraftExpired возвращается, когда срок жизни черновика истёк
	ErrDraftExpired = errors.New("draft has expired")

	// ErrDraftSubmitted возвращается при попытке изменить отправленный черновик
	ErrDraftSubmitted = errors.New("draft has already been submitted")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salon not found")

	// ErrStepNotReachable возвращается при недопустимом переходе между шагами
	ErrStepNotReachable = errors.New("wizard step preconditions are not satisfied")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrSlotsNotFetched возвращается при выборе времени до загрузки слотов
	ErrSlotsNotFetched = errors.New("available slots have not been fetched")

	// ErrSlotUnavailable возвращается при выборе недоступного слота
	ErrSlotUnavailable = errors.New("selected slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("drafts service: internal error")
)
