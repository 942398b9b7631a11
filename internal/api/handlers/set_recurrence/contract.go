package set_recurrence

import (
	"context"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	setRecurrence "github.com/zied7316-tech/Xaura-sub000/internal/usecase/set_recurrence"
)

type SetRecurrenceUseCase interface {
	Execute(ctx context.Context, req *setRecurrence.Request) (*domain.BookingDraft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
