package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
	qb "github.com/bissetw-stack/pelham-swimming-app/internal/platform/querybuilder"
)

type SwimmerRepository struct {
	db *sqlx.DB
}

var swimmerSelectColumns = []string{
	"id",
	"first_name",
	"surname",
	"dob",
	"gender",
	"grade",
	"house",
	"active",
	"created_at",
}

func NewSwimmerRepository(db *sqlx.DB) *SwimmerRepository {
	return &SwimmerRepository{db: db}
}

func (r *SwimmerRepository) List(ctx context.Context, filter swimmer.Filter) ([]swimmer.Swimmer, error) {
	builder := qb.Select(swimmerSelectColumns...).From("swimmers")
	if filter.Grade != 0 {
		builder = builder.Where(qb.Eq("grade", filter.Grade))
	}
	if filter.Gender != "" {
		builder = builder.Where(qb.Eq("gender", string(filter.Gender)))
	}

	query, args, err := builder.OrderBy("surname", "first_name", "id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select swimmers query: %w", err)
	}

	var rows []swimmerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select swimmers: %w", err)
	}

	out := make([]swimmer.Swimmer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *SwimmerRepository) GetByID(ctx context.Context, id string) (swimmer.Swimmer, bool, error) {
	query, args, err := qb.Select(swimmerSelectColumns...).From("swimmers").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return swimmer.Swimmer{}, false, fmt.Errorf("build select swimmer query: %w", err)
	}

	var row swimmerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return swimmer.Swimmer{}, false, nil
		}
		return swimmer.Swimmer{}, false, fmt.Errorf("select swimmer: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *SwimmerRepository) Create(ctx context.Context, s swimmer.Swimmer) (string, error) {
	query, args, err := qb.InsertInto("swimmers").
		Columns("first_name", "surname", "dob", "gender", "grade", "house", "active").
		Values(s.FirstName, s.Surname, s.DOB, string(s.Gender), s.Grade, string(s.House), s.Active).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return "", fmt.Errorf("build insert swimmer query: %w", err)
	}

	var id string
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return "", fmt.Errorf("insert swimmer: %w", err)
	}

	return id, nil
}

func (r *SwimmerRepository) SetActive(ctx context.Context, id string, active bool) error {
	query, args, err := qb.Update("swimmers").
		Set("active", active).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update swimmer query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update swimmer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update swimmer rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("swimmer %s not found", id)
	}

	return nil
}

func (r *SwimmerRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("swimmers").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count swimmers query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count swimmers: %w", err)
	}

	return count, nil
}
