package httpapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/bissetw-stack/pelham-swimming-app/internal/usecase"
)

type Handler struct {
	swimmerService   *usecase.SwimmerService
	batchService     *usecase.BatchEntryService
	historyService   *usecase.HistoryService
	rankingService   *usecase.RankingService
	selectionService *usecase.SelectionService
	reportService    *usecase.ReportService
	logger           *slog.Logger
	validator        *validator.Validate
}

func NewHandler(
	swimmerService *usecase.SwimmerService,
	batchService *usecase.BatchEntryService,
	historyService *usecase.HistoryService,
	rankingService *usecase.RankingService,
	selectionService *usecase.SelectionService,
	reportService *usecase.ReportService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		swimmerService:   swimmerService,
		batchService:     batchService,
		historyService:   historyService,
		rankingService:   rankingService,
		selectionService: selectionService,
		reportService:    reportService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	count, err := h.swimmerService.Count(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardDTO{SwimmerCount: count})
}

func (h *Handler) decodeBody(ctx context.Context, body io.Reader, target any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeBody")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type dashboardDTO struct {
	SwimmerCount int `json:"swimmerCount"`
}
