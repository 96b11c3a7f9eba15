package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
	qb "github.com/bissetw-stack/pelham-swimming-app/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

var resultSelectColumns = []string{
	"id",
	"swimmer_id",
	"stroke",
	"time_seconds",
	"date_swum",
	"season",
	"source",
	"logged_by",
	"created_at",
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) List(ctx context.Context, filter result.Filter) ([]result.Result, error) {
	builder := qb.Select(resultSelectColumns...).From("results")
	if filter.Stroke != "" {
		builder = builder.Where(qb.Eq("stroke", string(filter.Stroke)))
	}
	if filter.SwimmerID != "" {
		builder = builder.Where(qb.Eq("swimmer_id", filter.SwimmerID))
	}

	query, args, err := builder.OrderBy("date_swum DESC", "created_at DESC", "id DESC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select results query: %w", err)
	}

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select results: %w", err)
	}

	out := make([]result.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *ResultRepository) Create(ctx context.Context, res result.Result) (string, error) {
	query, args, err := qb.InsertInto("results").
		Columns("swimmer_id", "stroke", "time_seconds", "date_swum", "season", "source", "logged_by").
		Values(res.SwimmerID, string(res.Stroke), res.TimeSeconds, res.DateSwum, res.Season, res.Source, res.LoggedBy).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return "", fmt.Errorf("build insert result query: %w", err)
	}

	var id string
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return "", fmt.Errorf("insert result: %w", err)
	}

	return id, nil
}

func (r *ResultRepository) Update(ctx context.Context, id string, fields result.Update) error {
	query, args, err := qb.Update("results").
		Set("time_seconds", fields.TimeSeconds).
		Set("date_swum", fields.DateSwum).
		Set("stroke", string(fields.Stroke)).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update result query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update result: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update result rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("result %s not found", id)
	}

	return nil
}

func (r *ResultRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("results").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete result query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete result rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("result %s not found", id)
	}

	return nil
}
