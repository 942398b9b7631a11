package set_people

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
// Количество участников не проверяется: оно приводится к допустимому диапазону
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.DraftID) == "" {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	return nil
}
