package submission

import "errors"

var (
	// ErrSubmissionNotFound возвращается, когда результат отправки не найден
	ErrSubmissionNotFound = errors.New("submission.repository: submission not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("submission.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("submission.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("submission.repository: failed to scan row")

	// ErrMarshal возвращается при ошибке сериализации результатов по участникам
	ErrMarshal = errors.New("submission.repository: failed to marshal person outcomes")

	// ErrUnmarshal возвращается при ошибке десериализации результатов по участникам
	ErrUnmarshal = errors.New("submission.repository: failed to unmarshal person outcomes")
)
