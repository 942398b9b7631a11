package toggle_service

import (
	"context"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	toggleService "github.com/zied7316-tech/Xaura-sub000/internal/usecase/toggle_service"
)

type ToggleServiceUseCase interface {
	Execute(ctx context.Context, req *toggleService.Request) (*domain.BookingDraft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
