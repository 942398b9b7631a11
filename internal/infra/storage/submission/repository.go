package submission

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	"github.com/zied7316-tech/Xaura-sub000/pkg/dbmetrics"
	"github.com/zied7316-tech/Xaura-sub000/pkg/psqlbuilder"
)

const table = "submissions"

// DBExecutor интерфейс исполнителя запросов (см. dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

type personOutcomeJSON struct {
	PersonIndex   int     `json:"personIndex"`
	AppointmentID *string `json:"appointmentId,omitempty"`
	Error         *string `json:"error,omitempty"`
	Success       bool    `json:"success"`
}

// Repository репозиторий результатов отправки черновиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория результатов отправки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет результат отправки черновика
func (r *Repository) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	people, err := marshalOutcomes(s.People)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"draft_id",
			"user_id",
			"kind",
			"requested",
			"created",
			"series_id",
			"people",
		).
		Values(
			s.ID,
			s.DraftID,
			s.UserID,
			s.Kind,
			s.Requested,
			s.Created,
			s.SeriesID,
			people,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	return s, nil
}

// GetByDraftID получает последний результат отправки черновика
func (r *Repository) GetByDraftID(ctx context.Context, draftID string) (*domain.Submission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"draft_id",
		"user_id",
		"kind",
		"requested",
		"created",
		"series_id",
		"people",
		"created_at",
	).
		From(table).
		Where(squirrel.Eq{"draft_id": draftID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDraftID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Submission
	var kind string
	var people []byte
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.DraftID,
		&s.UserID,
		&kind,
		&s.Requested,
		&s.Created,
		&s.SeriesID,
		&people,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	s.Kind = domain.SubmissionKind(kind)
	s.CreatedAt = createdAt.Time
	if s.People, err = unmarshalOutcomes(people); err != nil {
		return nil, err
	}

	return &s, nil
}

func marshalOutcomes(outcomes []domain.PersonOutcome) ([]byte, error) {
	rows := make([]personOutcomeJSON, len(outcomes))
	for i, o := range outcomes {
		rows[i] = personOutcomeJSON(o)
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshal, err)
	}
	return data, nil
}

func unmarshalOutcomes(data []byte) ([]domain.PersonOutcome, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var rows []personOutcomeJSON
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnmarshal, err)
	}
	outcomes := make([]domain.PersonOutcome, len(rows))
	for i, row := range rows {
		outcomes[i] = domain.PersonOutcome(row)
	}
	return outcomes, nil
}
