package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/valyala/bytebufferpool"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/ranking"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
)

// ReportService is thin formatting over the ranking and selection
// outputs: it walks every event category and renders the heat sheets
// into one downloadable CSV document. No selection policy lives here.
type ReportService struct {
	selectionSvc *SelectionService
}

func NewReportService(selectionSvc *SelectionService) *ReportService {
	return &ReportService{selectionSvc: selectionSvc}
}

var reportHeader = []string{"Event", "Position", "First Name", "Surname", "House", "Time (s)", "Note"}

// GalaReportCSV renders the heat sheet for every grade x gender x
// stroke combination under one policy. Categories with no data are
// left out rather than rendered empty.
func (s *ReportService) GalaReportCSV(ctx context.Context, policy ranking.Policy, n, perHouse int) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.GalaReportCSV")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writer := csv.NewWriter(buf)
	if err := writer.Write(reportHeader); err != nil {
		return nil, fmt.Errorf("write report header: %w", err)
	}

	for grade := swimmer.MinGrade; grade <= swimmer.MaxGrade; grade++ {
		for _, gender := range []swimmer.Gender{swimmer.GenderMale, swimmer.GenderFemale} {
			for _, stroke := range result.Strokes {
				sheet, err := s.selectionSvc.ComputeHeatSheet(ctx, RankingQuery{
					Grade:  grade,
					Gender: gender,
					Stroke: stroke,
					Policy: policy,
					N:      n,
				}, perHouse)
				if err != nil {
					return nil, err
				}
				if sheet.Empty != ranking.EmptyNone {
					continue
				}

				event := fmt.Sprintf("Grade %d %s %s", grade, gender, stroke)
				for _, row := range sheet.Finalists {
					record := []string{
						event,
						strconv.Itoa(row.Position),
						row.FirstName,
						row.Surname,
						string(row.House),
						strconv.FormatFloat(row.RankTime, 'f', 2, 64),
						row.Note,
					}
					if err := writer.Write(record); err != nil {
						return nil, fmt.Errorf("write report row: %w", err)
					}
				}
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush report: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
