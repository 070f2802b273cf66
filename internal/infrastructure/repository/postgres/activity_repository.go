package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fpl-live/internal/domain/activity"
	qb "github.com/riskibarqy/fpl-live/internal/platform/querybuilder"
)

type ActivityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Append(ctx context.Context, events []activity.Event) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([]activityEventTableModel, 0, len(events))
	for _, e := range events {
		rows = append(rows, activityEventToRow(e))
	}

	query, args, err := qb.InsertRows(activityEventsTable, rows, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert activity events query: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert activity events: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert activity events: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit activity events: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListByGameweek(ctx context.Context, gameweekID, limit int) ([]activity.Event, error) {
	query, args, err := qb.Select(qb.Columns(activityEventTableModel{})...).
		From(activityEventsTable).
		Where(qb.Eq("gameweek_id", gameweekID)).
		OrderBy("id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list activity events query: %w", err)
	}

	var rows []activityEventTableModel
	err = retryOnStalePreparedStatement(ctx, func(ctx context.Context) error {
		rows = rows[:0]
		return r.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("list activity events: %w", err)
	}

	out := make([]activity.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, activityEventFromRow(row))
	}
	return out, nil
}

func (r *ActivityRepository) MaxID(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COALESCE(MAX(id), 0)").From(activityEventsTable).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build max activity id query: %w", err)
	}

	var maxID int64
	err = retryOnStalePreparedStatement(ctx, func(ctx context.Context) error {
		return r.db.GetContext(ctx, &maxID, query, args...)
	})
	if err != nil {
		return 0, fmt.Errorf("select max activity id: %w", err)
	}
	return maxID, nil
}

// PruneBefore drops events of gameweeks older than keepFrom.
func (r *ActivityRepository) PruneBefore(ctx context.Context, keepFrom int) (int64, error) {
	query, args, err := qb.DeleteFrom(activityEventsTable).Where(qb.Lt("gameweek_id", keepFrom)).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build prune activity events query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("prune activity events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune activity events rows affected: %w", err)
	}
	return n, nil
}
