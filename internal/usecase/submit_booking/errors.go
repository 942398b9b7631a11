package submit_booking

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("submit_booking: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("submit_booking: access denied")

	// ErrDraftExpired возвращается, когда срок жизни черновика истёк
	ErrDraftExpired = errors.New("submit_booking: draft has expired")

	// ErrAlreadySubmitted возвращается при повторной отправке черновика
	ErrAlreadySubmitted = errors.New("submit_booking: draft has already been submitted")

	// ErrNotReadyToSubmit возвращается, когда не выбраны услуги или мастер
	ErrNotReadyToSubmit = errors.New("submit_booking: services and worker must be selected first")

	// ErrScheduleNotSelected возвращается, когда не выбраны дата или время
	ErrScheduleNotSelected = errors.New("submit_booking: date and time slot must be selected")

	// ErrSlotUnavailable возвращается, когда выбранное время отсутствует в текущей сетке
	ErrSlotUnavailable = errors.New("submit_booking: selected slot is not available")

	// ErrInvalidRecurrence возвращается при некорректном правиле повторения
	ErrInvalidRecurrence = errors.New("submit_booking: invalid recurrence rule")

	// ErrSlotNotAvailable возвращается, когда сервис записей отклонил слот как занятый
	ErrSlotNotAvailable = errors.New("submit_booking: slot is no longer available")

	// ErrNothingCreated возвращается, когда не удалось создать ни одной записи
	ErrNothingCreated = errors.New("submit_booking: no appointments were created")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
