package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/ranking"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/selection"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
	"github.com/bissetw-stack/pelham-swimming-app/internal/usecase"
)

func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRankings")
	defer span.End()

	query, err := parseRankingQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.rankingService.ComputeRankings(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "compute rankings failed", "stroke", query.Stroke, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankingTableDTO{
		Rows:    rankedRowsToDTO(table.Rows),
		Empty:   string(table.Empty),
		Message: emptyMessage(table.Empty),
	})
}

func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSelection")
	defer span.End()

	query, err := parseRankingQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	perHouse, err := parsePerHouse(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sel, err := h.selectionService.SelectTopN(ctx, query, perHouse)
	if err != nil {
		h.logger.WarnContext(ctx, "team selection failed", "stroke", query.Stroke, "error", err)
		writeError(ctx, w, err)
		return
	}

	byHouse := make(map[string][]rankedSwimmerDTO, len(sel.ByHouse))
	for house, rows := range sel.ByHouse {
		byHouse[string(house)] = rankedRowsToDTO(rows)
	}

	writeSuccess(ctx, w, http.StatusOK, teamSelectionDTO{
		ByHouse: byHouse,
		Empty:   string(sel.Empty),
		Message: emptyMessage(sel.Empty),
	})
}

func (h *Handler) GetHeatSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeatSheet")
	defer span.End()

	query, err := parseRankingQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	perHouse, err := parsePerHouse(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sheet, err := h.selectionService.ComputeHeatSheet(ctx, query, perHouse)
	if err != nil {
		h.logger.WarnContext(ctx, "heat sheet failed", "stroke", query.Stroke, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, heatSheetDTO{
		Finalists: rankedRowsToDTO(sheet.Finalists),
		Empty:     string(sheet.Empty),
		Message:   emptyMessage(sheet.Empty),
	})
}

func (h *Handler) DownloadGalaReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DownloadGalaReport")
	defer span.End()

	policy, n, err := parsePolicy(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	perHouse, err := parsePerHouse(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.reportService.GalaReportCSV(ctx, policy, n, perHouse)
	if err != nil {
		h.logger.WarnContext(ctx, "gala report failed", "policy", policy, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="gala_report.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(report)
}

func parseRankingQuery(r *http.Request) (usecase.RankingQuery, error) {
	rawGrade := strings.TrimSpace(r.URL.Query().Get("grade"))
	grade, err := strconv.Atoi(rawGrade)
	if err != nil {
		return usecase.RankingQuery{}, fmt.Errorf("%w: grade %q is not an integer", usecase.ErrInvalidInput, rawGrade)
	}

	policy, n, err := parsePolicy(r)
	if err != nil {
		return usecase.RankingQuery{}, err
	}

	return usecase.RankingQuery{
		Grade:  grade,
		Gender: swimmer.Gender(strings.TrimSpace(r.URL.Query().Get("gender"))),
		Stroke: result.Stroke(strings.TrimSpace(r.URL.Query().Get("stroke"))),
		Policy: policy,
		N:      n,
	}, nil
}

// parsePolicy reads the reduction policy plus its N parameter. Policy
// defaults to best_time; N defaults to 3 and is only consulted for
// average_last_n.
func parsePolicy(r *http.Request) (ranking.Policy, int, error) {
	policy := ranking.Policy(strings.TrimSpace(r.URL.Query().Get("policy")))
	if policy == "" {
		policy = ranking.PolicyBestTime
	}

	n := 3
	if rawN := strings.TrimSpace(r.URL.Query().Get("n")); rawN != "" {
		parsed, err := strconv.Atoi(rawN)
		if err != nil {
			return "", 0, fmt.Errorf("%w: n %q is not an integer", usecase.ErrInvalidInput, rawN)
		}
		n = parsed
	}

	return policy, n, nil
}

func parsePerHouse(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("perHouse"))
	if raw == "" {
		return selection.DefaultPerHouse, nil
	}

	perHouse, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: perHouse %q is not an integer", usecase.ErrInvalidInput, raw)
	}

	return perHouse, nil
}

// emptyMessage maps an empty-table reason to the operator-facing text
// shown in the UI.
func emptyMessage(reason ranking.EmptyReason) string {
	switch reason {
	case ranking.EmptyNoSwimmers:
		return "No swimmers found in this category."
	case ranking.EmptyNoResults:
		return "No results entered for this stroke yet."
	case ranking.EmptyNoOverlap:
		return "No results found for these swimmers."
	default:
		return ""
	}
}

type rankingTableDTO struct {
	Rows    []rankedSwimmerDTO `json:"rows"`
	Empty   string             `json:"empty,omitempty"`
	Message string             `json:"message,omitempty"`
}

type teamSelectionDTO struct {
	ByHouse map[string][]rankedSwimmerDTO `json:"byHouse,omitempty"`
	Empty   string                        `json:"empty,omitempty"`
	Message string                        `json:"message,omitempty"`
}

type heatSheetDTO struct {
	Finalists []rankedSwimmerDTO `json:"finalists"`
	Empty     string             `json:"empty,omitempty"`
	Message   string             `json:"message,omitempty"`
}

type rankedSwimmerDTO struct {
	Position  int     `json:"position"`
	SwimmerID string  `json:"swimmerId"`
	FirstName string  `json:"firstName"`
	Surname   string  `json:"surname"`
	House     string  `json:"house"`
	Time      float64 `json:"time"`
	Note      string  `json:"note"`
}

func rankedRowsToDTO(rows []ranking.RankedSwimmer) []rankedSwimmerDTO {
	items := make([]rankedSwimmerDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, rankedSwimmerDTO{
			Position:  row.Position,
			SwimmerID: row.SwimmerID,
			FirstName: row.FirstName,
			Surname:   row.Surname,
			House:     string(row.House),
			Time:      row.RankTime,
			Note:      row.Note,
		})
	}
	return items
}
