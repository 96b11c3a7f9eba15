package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/bissetw-stack/pelham-swimming-app/internal/infrastructure/repository/memory"
	"github.com/bissetw-stack/pelham-swimming-app/internal/usecase"
)

func seededRouter(t *testing.T) http.Handler {
	t.Helper()

	swimmerRepo := memory.NewSwimmerRepository(memory.SeedSwimmers(), nil)
	resultRepo := memory.NewResultRepository(memory.SeedResults(), nil)

	rankingSvc := usecase.NewRankingService(swimmerRepo, resultRepo)
	selectionSvc := usecase.NewSelectionService(rankingSvc)
	handler := NewHandler(
		usecase.NewSwimmerService(swimmerRepo),
		usecase.NewBatchEntryService(resultRepo),
		usecase.NewHistoryService(swimmerRepo, resultRepo),
		rankingSvc,
		selectionSvc,
		usecase.NewReportService(selectionSvc),
		nil,
	)

	return NewRouter(handler, nil, []string{"*"})
}

func decodeData(t *testing.T, body []byte) map[string]any {
	t.Helper()

	var envelope map[string]any
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", envelope)
	}
	return data
}

func TestRouter_GetRankings(t *testing.T) {
	router := seededRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/rankings?grade=4&gender=F&stroke=Freestyle&policy=best_time", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data := decodeData(t, rec.Body.Bytes())
	rows, ok := data["rows"].([]any)
	if !ok || len(rows) != 5 {
		t.Fatalf("expected 5 ranking rows, got %v", data["rows"])
	}

	first, _ := rows[0].(map[string]any)
	if got, _ := first["surname"].(string); got != "Dlamini" {
		t.Fatalf("unexpected fastest swimmer: %v", first)
	}
}

func TestRouter_GetRankings_EmptyCategoryMessage(t *testing.T) {
	router := seededRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/rankings?grade=7&gender=F&stroke=Freestyle", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	data := decodeData(t, rec.Body.Bytes())
	if got, _ := data["empty"].(string); got != "no_swimmers" {
		t.Fatalf("expected no_swimmers, got %v", data["empty"])
	}
	if got, _ := data["message"].(string); got != "No swimmers found in this category." {
		t.Fatalf("unexpected message: %v", data["message"])
	}
}

func TestRouter_BatchRequiresOperator(t *testing.T) {
	router := seededRouter(t)

	payload := `{"stroke":"Freestyle","rows":[{"swimmerId":"swm-001","time":45.3}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/results/batch", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without operator, got %d", rec.Code)
	}
}

func TestRouter_SubmitBatch(t *testing.T) {
	router := seededRouter(t)

	payload := `{"stroke":"Freestyle","rows":[{"swimmerId":"swm-001","time":45.3},{"swimmerId":"swm-002","time":"abc"},{"swimmerId":"swm-003","dns":true}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/results/batch", strings.NewReader(payload))
	req.Header.Set("X-Operator", "Coach Bennett")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data := decodeData(t, rec.Body.Bytes())
	if got, _ := data["considered"].(float64); got != 3 {
		t.Fatalf("expected 3 considered, got %v", data["considered"])
	}
	if got, _ := data["saved"].(float64); got != 1 {
		t.Fatalf("expected 1 saved, got %v", data["saved"])
	}
	if got, _ := data["skipped"].(float64); got != 2 {
		t.Fatalf("expected 2 skipped, got %v", data["skipped"])
	}
}

func TestRouter_SwimmerTemplate(t *testing.T) {
	router := seededRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/swimmers/template.csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Fatalf("unexpected content type: %q", got)
	}
	if rec.Body.String() != "First Name,Surname,DOB,Gender,Grade,House\n" {
		t.Fatalf("unexpected template body: %q", rec.Body.String())
	}
}

func TestRouter_HistoryNotFound(t *testing.T) {
	router := seededRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/swimmers/swm-missing/results", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRouter_Healthz(t *testing.T) {
	router := seededRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
