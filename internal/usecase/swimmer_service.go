package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
)

// CSVHeader is the exact bulk-upload template header, order fixed.
var CSVHeader = []string{"First Name", "Surname", "DOB", "Gender", "Grade", "House"}

// SwimmerService manages the student database: single-entry creation,
// CSV bulk import, and the soft active flag.
type SwimmerService struct {
	swimmerRepo swimmer.Repository
}

func NewSwimmerService(swimmerRepo swimmer.Repository) *SwimmerService {
	return &SwimmerService{swimmerRepo: swimmerRepo}
}

// CreateSwimmerInput is the single-entry form payload.
type CreateSwimmerInput struct {
	FirstName string
	Surname   string
	DOB       string
	Gender    swimmer.Gender
	Grade     int
	House     swimmer.House
}

func (s *SwimmerService) Create(ctx context.Context, input CreateSwimmerInput) (swimmer.Swimmer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SwimmerService.Create")
	defer span.End()

	candidate := swimmer.Swimmer{
		FirstName: strings.TrimSpace(input.FirstName),
		Surname:   strings.TrimSpace(input.Surname),
		DOB:       strings.TrimSpace(input.DOB),
		Gender:    input.Gender,
		Grade:     input.Grade,
		House:     input.House,
		Active:    true,
	}
	if err := candidate.Validate(); err != nil {
		return swimmer.Swimmer{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	id, err := s.swimmerRepo.Create(ctx, candidate)
	if err != nil {
		return swimmer.Swimmer{}, markStore(fmt.Errorf("create swimmer: %w", err))
	}
	candidate.ID = id

	return candidate, nil
}

func (s *SwimmerService) List(ctx context.Context, filter swimmer.Filter) ([]swimmer.Swimmer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SwimmerService.List")
	defer span.End()

	if filter.Grade != 0 && (filter.Grade < swimmer.MinGrade || filter.Grade > swimmer.MaxGrade) {
		return nil, fmt.Errorf("%w: grade must be between %d and %d", ErrInvalidInput, swimmer.MinGrade, swimmer.MaxGrade)
	}
	if filter.Gender != "" {
		if _, ok := swimmer.AllGenders[filter.Gender]; !ok {
			return nil, fmt.Errorf("%w: gender must be M or F", ErrInvalidInput)
		}
	}

	swimmers, err := s.swimmerRepo.List(ctx, filter)
	if err != nil {
		return nil, markStore(fmt.Errorf("list swimmers: %w", err))
	}

	return swimmers, nil
}

// Deactivate clears the active flag. Swimmers are never deleted.
func (s *SwimmerService) Deactivate(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SwimmerService.Deactivate")
	defer span.End()

	if id == "" {
		return fmt.Errorf("%w: swimmer id is required", ErrInvalidInput)
	}

	_, exists, err := s.swimmerRepo.GetByID(ctx, id)
	if err != nil {
		return markStore(fmt.Errorf("get swimmer: %w", err))
	}
	if !exists {
		return fmt.Errorf("%w: swimmer=%s", ErrNotFound, id)
	}

	if err := s.swimmerRepo.SetActive(ctx, id, false); err != nil {
		return markStore(fmt.Errorf("deactivate swimmer: %w", err))
	}

	return nil
}

func (s *SwimmerService) Count(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SwimmerService.Count")
	defer span.End()

	count, err := s.swimmerRepo.Count(ctx)
	if err != nil {
		return 0, markStore(fmt.Errorf("count swimmers: %w", err))
	}

	return count, nil
}

// CSVRowError reports one rejected import row by its 1-based data-row
// index; the rest of the file still imports.
type CSVRowError struct {
	Row     int
	Message string
}

// ImportOutcome reports a completed CSV bulk import.
type ImportOutcome struct {
	Imported int
	Errors   []CSVRowError
}

// ImportCSV reads a class list in the fixed template layout and creates
// one swimmer per parseable row. Bad rows are skipped with a per-row
// error; the file as a whole is only rejected when the header does not
// match the template.
func (s *SwimmerService) ImportCSV(ctx context.Context, r io.Reader) (ImportOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SwimmerService.ImportCSV")
	defer span.End()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(CSVHeader)

	header, err := reader.Read()
	if err != nil {
		return ImportOutcome{}, fmt.Errorf("%w: read csv header: %v", ErrInvalidInput, err)
	}
	for i, want := range CSVHeader {
		if strings.TrimSpace(header[i]) != want {
			return ImportOutcome{}, fmt.Errorf("%w: header column %d must be %q, got %q", ErrInvalidInput, i+1, want, header[i])
		}
	}

	var outcome ImportOutcome
	for row := 1; ; row++ {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			outcome.Errors = append(outcome.Errors, CSVRowError{Row: row, Message: readErr.Error()})
			continue
		}

		grade, gradeErr := strconv.Atoi(strings.TrimSpace(record[4]))
		if gradeErr != nil {
			outcome.Errors = append(outcome.Errors, CSVRowError{
				Row:     row,
				Message: fmt.Sprintf("grade %q is not an integer", record[4]),
			})
			continue
		}

		candidate := swimmer.Swimmer{
			FirstName: strings.TrimSpace(record[0]),
			Surname:   strings.TrimSpace(record[1]),
			DOB:       strings.TrimSpace(record[2]),
			Gender:    swimmer.Gender(strings.TrimSpace(record[3])),
			Grade:     grade,
			House:     swimmer.House(strings.TrimSpace(record[5])),
			Active:    true,
		}
		if validateErr := candidate.Validate(); validateErr != nil {
			outcome.Errors = append(outcome.Errors, CSVRowError{Row: row, Message: validateErr.Error()})
			continue
		}

		if _, createErr := s.swimmerRepo.Create(ctx, candidate); createErr != nil {
			outcome.Errors = append(outcome.Errors, CSVRowError{Row: row, Message: createErr.Error()})
			continue
		}
		outcome.Imported++
	}

	return outcome, nil
}

// TemplateCSV renders the blank bulk-upload template.
func (s *SwimmerService) TemplateCSV() []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writer := csv.NewWriter(buf)
	_ = writer.Write(CSVHeader)
	writer.Flush()

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}
