package postgres

import (
	"time"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
)

type swimmerTableModel struct {
	ID        string    `db:"id"`
	FirstName string    `db:"first_name"`
	Surname   string    `db:"surname"`
	DOB       string    `db:"dob"`
	Gender    string    `db:"gender"`
	Grade     int       `db:"grade"`
	House     string    `db:"house"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
}

func (m swimmerTableModel) toDomain() swimmer.Swimmer {
	return swimmer.Swimmer{
		ID:        m.ID,
		FirstName: m.FirstName,
		Surname:   m.Surname,
		DOB:       m.DOB,
		Gender:    swimmer.Gender(m.Gender),
		Grade:     m.Grade,
		House:     swimmer.House(m.House),
		Active:    m.Active,
	}
}
