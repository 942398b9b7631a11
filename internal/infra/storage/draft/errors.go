package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft.repository: draft not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("draft.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("draft.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("draft.repository: failed to scan row")

	// ErrMarshal возвращается при ошибке сериализации jsonb-полей черновика
	ErrMarshal = errors.New("draft.repository: failed to marshal draft state")

	// ErrUnmarshal возвращается при ошибке десериализации jsonb-полей черновика
	ErrUnmarshal = errors.New("draft.repository: failed to unmarshal draft state")
)
