package select_worker

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.DraftID) == "" {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.WorkerID) == "" {
		return fmt.Errorf("%w: workerID is required", ErrInvalidInput)
	}

	return nil
}
