package usecase

import (
	"context"
	"fmt"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/ranking"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/selection"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
)

// SelectionService layers the team-selection reducer over freshly
// computed rankings.
type SelectionService struct {
	rankingSvc *RankingService
}

func NewSelectionService(rankingSvc *RankingService) *SelectionService {
	return &SelectionService{rankingSvc: rankingSvc}
}

// TeamSelection is the per-house partition of one event's rankings.
type TeamSelection struct {
	ByHouse map[swimmer.House][]ranking.RankedSwimmer
	Empty   ranking.EmptyReason
}

// SelectTopN partitions the ranked pool into each house's top perHouse
// qualifiers. Houses with fewer qualifiers return shorter lists.
func (s *SelectionService) SelectTopN(ctx context.Context, q RankingQuery, perHouse int) (TeamSelection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.SelectTopN")
	defer span.End()

	if perHouse < 1 {
		return TeamSelection{}, fmt.Errorf("%w: per-house count must be at least 1", ErrInvalidInput)
	}

	table, err := s.rankingSvc.ComputeRankings(ctx, q)
	if err != nil {
		return TeamSelection{}, err
	}
	if table.Empty != ranking.EmptyNone {
		return TeamSelection{Empty: table.Empty}, nil
	}

	return TeamSelection{
		ByHouse: selection.TopN(table.Rows, swimmer.Houses, perHouse),
	}, nil
}

// HeatSheet is the combined, globally time-sorted finalist pool for one
// event (grade x gender x stroke).
type HeatSheet struct {
	Finalists []ranking.RankedSwimmer
	Empty     ranking.EmptyReason
}

// ComputeHeatSheet takes each house's top perHouse qualifiers and
// re-sorts the combined pool by rank time ascending.
func (s *SelectionService) ComputeHeatSheet(ctx context.Context, q RankingQuery, perHouse int) (HeatSheet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.ComputeHeatSheet")
	defer span.End()

	if perHouse < 1 {
		return HeatSheet{}, fmt.Errorf("%w: per-house count must be at least 1", ErrInvalidInput)
	}

	table, err := s.rankingSvc.ComputeRankings(ctx, q)
	if err != nil {
		return HeatSheet{}, err
	}
	if table.Empty != ranking.EmptyNone {
		return HeatSheet{Empty: table.Empty}, nil
	}

	return HeatSheet{
		Finalists: selection.HeatSheet(table.Rows, swimmer.Houses, perHouse),
	}, nil
}
