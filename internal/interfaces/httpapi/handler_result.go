package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
	"github.com/bissetw-stack/pelham-swimming-app/internal/usecase"
)

func (h *Handler) SubmitBatchResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitBatchResults")
	defer span.End()

	operator, ok := operatorFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: operator is missing from request context", usecase.ErrInvalidInput))
		return
	}

	var req batchSubmitRequest
	if err := h.decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows := make([]usecase.BatchRow, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, usecase.BatchRow{
			SwimmerID: row.SwimmerID,
			RawTime:   row.Time,
			DNS:       row.DNS,
		})
	}

	outcome, err := h.batchService.SubmitBatch(ctx, rows, usecase.BatchSubmission{
		Stroke:   result.Stroke(req.Stroke),
		Source:   req.Source,
		Operator: operator,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "batch submit failed", "stroke", req.Stroke, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, batchOutcomeDTO{
		Considered: outcome.Considered,
		Saved:      outcome.Saved,
		Skipped:    outcome.Skipped,
		Failed:     outcome.Failed,
		Errors:     append([]string{}, outcome.Errors...),
	})
}

func (h *Handler) GetSwimmerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSwimmerHistory")
	defer span.End()

	swimmerID := strings.TrimSpace(r.PathValue("swimmerID"))
	history, err := h.historyService.History(ctx, swimmerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get history failed", "swimmer_id", swimmerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]resultDTO, 0, len(history))
	for _, res := range history {
		items = append(items, resultToDTO(res))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ReconcileSwimmerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReconcileSwimmerHistory")
	defer span.End()

	swimmerID := strings.TrimSpace(r.PathValue("swimmerID"))
	var req reconcileRequest
	if err := h.decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows := make([]usecase.HistoryRow, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, usecase.HistoryRow{
			ResultID: row.ResultID,
			RawTime:  row.Time,
			DateSwum: row.DateSwum,
			Stroke:   result.Stroke(row.Stroke),
		})
	}

	outcome, err := h.historyService.Reconcile(ctx, swimmerID, rows)
	if err != nil {
		h.logger.WarnContext(ctx, "reconcile history failed", "swimmer_id", swimmerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	errs := make([]rowErrorDTO, 0, len(outcome.Errors))
	for _, e := range outcome.Errors {
		errs = append(errs, rowErrorDTO{ResultID: e.ResultID, Message: e.Message})
	}

	writeSuccess(ctx, w, http.StatusOK, reconcileOutcomeDTO{
		Updated: outcome.Updated,
		Deleted: outcome.Deleted,
		Errors:  errs,
	})
}

type batchSubmitRequest struct {
	Stroke string          `json:"stroke" validate:"required"`
	Source string          `json:"source"`
	Rows   []batchRowInput `json:"rows" validate:"required,min=1,dive"`
}

type batchRowInput struct {
	SwimmerID string `json:"swimmerId" validate:"required"`
	Time      any    `json:"time"`
	DNS       bool   `json:"dns"`
}

type batchOutcomeDTO struct {
	Considered int      `json:"considered"`
	Saved      int      `json:"saved"`
	Skipped    int      `json:"skipped"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors"`
}

type reconcileRequest struct {
	Rows []historyRowInput `json:"rows" validate:"dive"`
}

type historyRowInput struct {
	ResultID string `json:"resultId" validate:"required"`
	Time     any    `json:"time"`
	DateSwum string `json:"dateSwum" validate:"required"`
	Stroke   string `json:"stroke" validate:"required"`
}

type rowErrorDTO struct {
	ResultID string `json:"resultId"`
	Message  string `json:"message"`
}

type reconcileOutcomeDTO struct {
	Updated int           `json:"updated"`
	Deleted int           `json:"deleted"`
	Errors  []rowErrorDTO `json:"errors"`
}

type resultDTO struct {
	ID           string  `json:"id"`
	SwimmerID    string  `json:"swimmerId"`
	Stroke       string  `json:"stroke"`
	TimeSeconds  float64 `json:"timeSeconds"`
	DateSwum     string  `json:"dateSwum"`
	Season       int     `json:"season"`
	Source       string  `json:"source"`
	LoggedBy     string  `json:"loggedBy"`
	CreatedAtUTC string  `json:"createdAtUtc"`
}

func resultToDTO(v result.Result) resultDTO {
	return resultDTO{
		ID:           v.ID,
		SwimmerID:    v.SwimmerID,
		Stroke:       string(v.Stroke),
		TimeSeconds:  v.TimeSeconds,
		DateSwum:     v.DateSwum,
		Season:       v.Season,
		Source:       v.Source,
		LoggedBy:     v.LoggedBy,
		CreatedAtUTC: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
