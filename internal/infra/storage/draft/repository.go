package draft

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/zied7316-tech/Xaura-sub000/internal/domain"
	"github.com/zied7316-tech/Xaura-sub000/pkg/dbmetrics"
	"github.com/zied7316-tech/Xaura-sub000/pkg/psqlbuilder"
)

const table = "booking_drafts"

var selectColumns = []string{
	"id",
	"user_id",
	"salon_id",
	"step",
	"number_of_people",
	"people",
	"worker",
	"booking_date",
	"slot_start",
	"slots",
	"slot_fetch_generation",
	"recurrence",
	"status",
	"expires_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий черновиков записи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый черновик
func (r *Repository) Create(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	people, err := marshalPeople(d.People)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"user_id",
			"salon_id",
			"step",
			"number_of_people",
			"people",
			"status",
			"expires_at",
		).
		Values(
			d.ID,
			d.UserID,
			d.SalonID,
			int(d.Step),
			d.NumberOfPeople,
			people,
			d.Status,
			d.ExpiresAt,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// GetByID получает черновик по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	return scanDraft(row)
}

// Update полностью перезаписывает изменяемое состояние черновика
// Возвращает черновик с обновлённым updated_at
func (r *Repository) Update(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	people, err := marshalPeople(d.People)
	if err != nil {
		return nil, err
	}
	worker, err := marshalWorker(d.Worker)
	if err != nil {
		return nil, err
	}
	slots, err := marshalSlots(d.Slots)
	if err != nil {
		return nil, err
	}
	recurrence, err := marshalRecurrence(d.Recurrence)
	if err != nil {
		return nil, err
	}

	var bookingDate interface{}
	if d.Date != nil {
		bookingDate = *d.Date
	}
	var slotStart interface{}
	if d.SlotStart != nil {
		slotStart = d.SlotStart.String()
	}

	query, args, err := psqlbuilder.Update(table).
		Set("step", int(d.Step)).
		Set("number_of_people", d.NumberOfPeople).
		Set("people", people).
		Set("worker", worker).
		Set("booking_date", bookingDate).
		Set("slot_start", slotStart).
		Set("slots", slots).
		Set("slot_fetch_generation", d.SlotFetchGeneration).
		Set("recurrence", recurrence).
		Set("status", d.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": d.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	d.UpdatedAt = updatedAt.Time
	return d, nil
}

// Delete удаляет черновик по ID
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrDraftNotFound
	}

	return nil
}

// DeleteExpired удаляет черновики с истёкшим сроком жизни
// Отправленные черновики сохраняются для истории независимо от срока
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Lt{"expires_at": now}).
		Where(squirrel.Eq{"status": domain.DraftStatusDraft}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

func scanDraft(row *sql.Row) (*domain.BookingDraft, error) {
	var d domain.BookingDraft
	var step int
	var people, worker, slots, recurrence []byte
	var bookingDate sql.NullTime
	var slotStart sql.NullString
	var status string
	var expiresAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.SalonID,
		&step,
		&d.NumberOfPeople,
		&people,
		&worker,
		&bookingDate,
		&slotStart,
		&slots,
		&d.SlotFetchGeneration,
		&recurrence,
		&status,
		&expiresAt,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	d.Step = domain.Step(step)
	d.Status = domain.DraftStatus(status)
	d.ExpiresAt = expiresAt.Time
	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	if bookingDate.Valid {
		date := bookingDate.Time
		d.Date = &date
	}
	if slotStart.Valid {
		start, err := parseSlotStart(slotStart.String)
		if err != nil {
			return nil, err
		}
		d.SlotStart = start
	}

	if d.People, err = unmarshalPeople(people); err != nil {
		return nil, err
	}
	if d.Worker, err = unmarshalWorker(worker); err != nil {
		return nil, err
	}
	if d.Slots, err = unmarshalSlots(slots); err != nil {
		return nil, err
	}
	if d.Recurrence, err = unmarshalRecurrence(recurrence); err != nil {
		return nil, err
	}

	return &d, nil
}
