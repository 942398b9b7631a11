package set_schedule

import (
	"context"

	"github.com/zied7316-tech/Xaura-sub000/internal/service/drafts/models"
)

type DraftService interface {
	SetSchedule(ctx context.Context, draftID string, req *models.SetScheduleRequest) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
