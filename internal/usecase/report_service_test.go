package usecase

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/ranking"
)

func TestReportService_GalaReportCSV(t *testing.T) {
	svc := NewReportService(NewSelectionService(seededRankingService()))

	report, err := svc.GalaReportCSV(t.Context(), ranking.PolicyBestTime, 0, 3)
	if err != nil {
		t.Fatalf("gala report failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(report)).ReadAll()
	if err != nil {
		t.Fatalf("report is not valid csv: %v", err)
	}

	header := records[0]
	want := []string{"Event", "Position", "First Name", "Surname", "House", "Time (s)", "Note"}
	for i := range want {
		if header[i] != want[i] {
			t.Fatalf("unexpected header column %d: %q", i, header[i])
		}
	}

	// The seed populates exactly one category, grade 4 girls freestyle,
	// with five qualifiers across the four houses.
	rows := records[1:]
	if len(rows) != 5 {
		t.Fatalf("expected 5 report rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row[0] != "Grade 4 F Freestyle" {
			t.Fatalf("unexpected event label: %q", row[0])
		}
	}

	first := rows[0]
	if first[1] != "1" || first[2] != "Zanele" || first[5] != "47.90" {
		t.Fatalf("unexpected first row: %+v", first)
	}
}

func TestReportService_GalaReportCSV_AverageRequiresValidN(t *testing.T) {
	svc := NewReportService(NewSelectionService(seededRankingService()))

	if _, err := svc.GalaReportCSV(t.Context(), ranking.PolicyAverageLastN, 1, 3); err == nil {
		t.Fatalf("expected validation error for n below bounds")
	}
}
