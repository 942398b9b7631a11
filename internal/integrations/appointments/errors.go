package appointments

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда слот уже занят (проверка доступности на стороне сервиса)
	ErrSlotNotAvailable = errors.New("time slot is not available")

	// ErrValidation возвращается, когда сервис отклонил тело запроса
	ErrValidation = errors.New("appointment request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("appointments client: invalid response")
)
