package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
	"github.com/bissetw-stack/pelham-swimming-app/internal/usecase"
)

func (h *Handler) ListSwimmers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSwimmers")
	defer span.End()

	filter, err := parseSwimmerFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	swimmers, err := h.swimmerService.List(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list swimmers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]swimmerDTO, 0, len(swimmers))
	for _, s := range swimmers {
		items = append(items, swimmerToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateSwimmer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSwimmer")
	defer span.End()

	var req createSwimmerRequest
	if err := h.decodeBody(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.swimmerService.Create(ctx, usecase.CreateSwimmerInput{
		FirstName: req.FirstName,
		Surname:   req.Surname,
		DOB:       req.DOB,
		Gender:    swimmer.Gender(req.Gender),
		Grade:     req.Grade,
		House:     swimmer.House(req.House),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create swimmer failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, swimmerToDTO(created))
}

func (h *Handler) ImportSwimmers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportSwimmers")
	defer span.End()

	outcome, err := h.swimmerService.ImportCSV(ctx, r.Body)
	if err != nil {
		h.logger.WarnContext(ctx, "import swimmers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	errs := make([]csvRowErrorDTO, 0, len(outcome.Errors))
	for _, e := range outcome.Errors {
		errs = append(errs, csvRowErrorDTO{Row: e.Row, Message: e.Message})
	}

	writeSuccess(ctx, w, http.StatusOK, importOutcomeDTO{
		Imported: outcome.Imported,
		Errors:   errs,
	})
}

func (h *Handler) DownloadSwimmerTemplate(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.DownloadSwimmerTemplate")
	defer span.End()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="swimmers_template.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.swimmerService.TemplateCSV())
}

func (h *Handler) DeactivateSwimmer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeactivateSwimmer")
	defer span.End()

	swimmerID := strings.TrimSpace(r.PathValue("swimmerID"))
	if err := h.swimmerService.Deactivate(ctx, swimmerID); err != nil {
		h.logger.WarnContext(ctx, "deactivate swimmer failed", "swimmer_id", swimmerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deactivated"})
}

func parseSwimmerFilter(r *http.Request) (swimmer.Filter, error) {
	var filter swimmer.Filter

	if raw := strings.TrimSpace(r.URL.Query().Get("grade")); raw != "" {
		grade, err := strconv.Atoi(raw)
		if err != nil {
			return swimmer.Filter{}, fmt.Errorf("%w: grade %q is not an integer", usecase.ErrInvalidInput, raw)
		}
		filter.Grade = grade
	}
	filter.Gender = swimmer.Gender(strings.TrimSpace(r.URL.Query().Get("gender")))

	return filter, nil
}

type createSwimmerRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	Surname   string `json:"surname" validate:"required,max=100"`
	DOB       string `json:"dob" validate:"required"`
	Gender    string `json:"gender" validate:"required,oneof=M F"`
	Grade     int    `json:"grade" validate:"required,min=4,max=7"`
	House     string `json:"house" validate:"required"`
}

type swimmerDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`
	DOB       string `json:"dob"`
	Gender    string `json:"gender"`
	Grade     int    `json:"grade"`
	House     string `json:"house"`
	Active    bool   `json:"active"`
}

type importOutcomeDTO struct {
	Imported int              `json:"imported"`
	Errors   []csvRowErrorDTO `json:"errors"`
}

type csvRowErrorDTO struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func swimmerToDTO(v swimmer.Swimmer) swimmerDTO {
	return swimmerDTO{
		ID:        v.ID,
		FirstName: v.FirstName,
		Surname:   v.Surname,
		DOB:       v.DOB,
		Gender:    string(v.Gender),
		Grade:     v.Grade,
		House:     string(v.House),
		Active:    v.Active,
	}
}
