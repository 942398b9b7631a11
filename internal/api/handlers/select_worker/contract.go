package select_worker

import (
	"context"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	selectWorker "github.com/zied7316-tech/Xaura-sub000/internal/usecase/select_worker"
)

type SelectWorkerUseCase interface {
	Execute(ctx context.Context, req *selectWorker.Request) (*domain.BookingDraft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
