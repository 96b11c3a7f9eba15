package postgres

import (
	"time"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
)

type resultTableModel struct {
	ID          string    `db:"id"`
	SwimmerID   string    `db:"swimmer_id"`
	Stroke      string    `db:"stroke"`
	TimeSeconds float64   `db:"time_seconds"`
	DateSwum    string    `db:"date_swum"`
	Season      int       `db:"season"`
	Source      string    `db:"source"`
	LoggedBy    string    `db:"logged_by"`
	CreatedAt   time.Time `db:"created_at"`
}

func (m resultTableModel) toDomain() result.Result {
	return result.Result{
		ID:          m.ID,
		SwimmerID:   m.SwimmerID,
		Stroke:      result.Stroke(m.Stroke),
		TimeSeconds: m.TimeSeconds,
		DateSwum:    m.DateSwum,
		Season:      m.Season,
		Source:      m.Source,
		LoggedBy:    m.LoggedBy,
		CreatedAt:   m.CreatedAt,
	}
}
