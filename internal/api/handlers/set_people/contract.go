package set_people

import (
	"context"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	setPeople "github.com/zied7316-tech/Xaura-sub000/internal/usecase/set_people"
)

type SetPeopleUseCase interface {
	Execute(ctx context.Context, req *setPeople.Request) (*domain.BookingDraft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
