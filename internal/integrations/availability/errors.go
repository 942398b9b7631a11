package availability

import "errors"

var (
	// ErrWorkerNotFound возвращается, когда работник не найден
	ErrWorkerNotFound = errors.New("worker not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("availability client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("availability client: invalid response")
)
