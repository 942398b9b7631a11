package create_draft

import (
	"context"

	"github.com/zied7316-tech/Xaura-sub000/internal/service/drafts/models"
)

type DraftService interface {
	Create(ctx context.Context, req *models.CreateDraftRequest) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
