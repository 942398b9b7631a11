package submit_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.DraftID) == "" {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateReadiness проверяет, что черновик готов к отправке:
// услуги у всех участников, мастер, дата и доступное время, валидное
// правило повторения (если включено)
func validateReadiness(draft *domain.BookingDraft, now time.Time) error {
	if !draft.CanEnterStep(domain.StepSelectSchedule) {
		return ErrNotReadyToSubmit
	}

	if draft.Date == nil || draft.SlotStart == nil {
		return ErrScheduleNotSelected
	}

	// Время должно присутствовать в последней загруженной сетке и быть доступным
	slot, ok := draft.SelectedSlot()
	if !ok || !slot.Available {
		return ErrSlotUnavailable
	}

	if draft.Recurrence != nil && draft.Recurrence.Enabled {
		if err := draft.Recurrence.ValidateDates(now); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRecurrence, err)
		}
	}

	return nil
}
