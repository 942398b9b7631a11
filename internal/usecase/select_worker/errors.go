package select_worker

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("select_worker: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("select_worker: access denied")

	// ErrDraftExpired возвращается, когда срок жизни черновика истёк
	ErrDraftExpired = errors.New("select_worker: draft has expired")

	// ErrDraftSubmitted возвращается при попытке изменить отправленный черновик
	ErrDraftSubmitted = errors.New("select_worker: draft has already been submitted")

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("select_worker: salon not found")

	// ErrWorkerNotFound возвращается, когда мастера нет в каталоге салона
	ErrWorkerNotFound = errors.New("select_worker: worker not found in salon catalog")

	// ErrStepNotReachable возвращается, когда не у всех участников выбраны услуги
	ErrStepNotReachable = errors.New("select_worker: services must be selected first")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("select_worker: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("select_worker: internal error")
)
