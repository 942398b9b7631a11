package set_recurrence

import (
	"fmt"
	"strings"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Даты серии относительно текущего момента проверяются при отправке черновика,
// а не здесь: пользователь может заполнять правило в любом порядке
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.DraftID) == "" {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	if !req.Enabled {
		return nil
	}

	if req.Frequency != nil && !domain.Frequency(*req.Frequency).IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, *req.Frequency)
	}

	if req.DayOfWeek != nil && (*req.DayOfWeek < 0 || *req.DayOfWeek > 6) {
		return fmt.Errorf("%w: got %d", ErrInvalidDayOfWeek, *req.DayOfWeek)
	}

	return nil
}
