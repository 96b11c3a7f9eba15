package swimmer

import (
	"fmt"
	"time"
)

// DOBLayout is the stored date-of-birth form.
const DOBLayout = "2006-01-02"

// Gender as recorded on the gala entry forms.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

var AllGenders = map[Gender]struct{}{
	GenderMale:   {},
	GenderFemale: {},
}

// House is one of the four fixed interhouse team affiliations.
type House string

const (
	HouseBromhead House = "Bromhead"
	HouseChristie House = "Christie"
	HouseClark    House = "Clark"
	HouseMelville House = "Melville"
)

// Houses lists the four houses in their fixed report order.
var Houses = []House{HouseBromhead, HouseChristie, HouseClark, HouseMelville}

var houseSet = map[House]struct{}{
	HouseBromhead: {},
	HouseChristie: {},
	HouseClark:    {},
	HouseMelville: {},
}

func ValidHouse(h House) bool {
	_, ok := houseSet[h]
	return ok
}

// Senior-primary grade bounds.
const (
	MinGrade = 4
	MaxGrade = 7
)

// Swimmer is a registered student in the gala pool. Swimmers are never
// deleted, only deactivated.
type Swimmer struct {
	ID        string
	FirstName string
	Surname   string
	DOB       string // YYYY-MM-DD
	Gender    Gender
	Grade     int
	House     House
	Active    bool
}

func (s Swimmer) Validate() error {
	if s.FirstName == "" {
		return fmt.Errorf("swimmer first name is required")
	}
	if s.Surname == "" {
		return fmt.Errorf("swimmer surname is required")
	}
	if _, ok := AllGenders[s.Gender]; !ok {
		return fmt.Errorf("invalid swimmer gender: %s", s.Gender)
	}
	if s.Grade < MinGrade || s.Grade > MaxGrade {
		return fmt.Errorf("swimmer grade must be between %d and %d, got %d", MinGrade, MaxGrade, s.Grade)
	}
	if !ValidHouse(s.House) {
		return fmt.Errorf("invalid swimmer house: %s", s.House)
	}
	if _, err := time.Parse(DOBLayout, s.DOB); err != nil {
		return fmt.Errorf("swimmer date of birth must be YYYY-MM-DD, got %q", s.DOB)
	}

	return nil
}
