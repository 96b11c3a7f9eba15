package usecase

import (
	"context"
	"fmt"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/ranking"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
)

// RankingService fetches the swimmer and result sets for one event
// category and runs the ranking engine over them. Every call re-fetches
// fresh data; there is no caching.
type RankingService struct {
	swimmerRepo swimmer.Repository
	resultRepo  result.Repository
}

func NewRankingService(swimmerRepo swimmer.Repository, resultRepo result.Repository) *RankingService {
	return &RankingService{
		swimmerRepo: swimmerRepo,
		resultRepo:  resultRepo,
	}
}

// RankingQuery identifies one event category and the reduction policy.
// N is only consulted for PolicyAverageLastN.
type RankingQuery struct {
	Grade  int
	Gender swimmer.Gender
	Stroke result.Stroke
	Policy ranking.Policy
	N      int
}

func (q RankingQuery) validate() error {
	if q.Grade < swimmer.MinGrade || q.Grade > swimmer.MaxGrade {
		return fmt.Errorf("%w: grade must be between %d and %d", ErrInvalidInput, swimmer.MinGrade, swimmer.MaxGrade)
	}
	if _, ok := swimmer.AllGenders[q.Gender]; !ok {
		return fmt.Errorf("%w: gender must be M or F", ErrInvalidInput)
	}
	if !result.ValidStroke(q.Stroke) {
		return fmt.Errorf("%w: unknown stroke %q", ErrInvalidInput, q.Stroke)
	}
	if _, ok := ranking.AllPolicies[q.Policy]; !ok {
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidInput, q.Policy)
	}
	if q.Policy == ranking.PolicyAverageLastN && (q.N < ranking.MinAverageN || q.N > ranking.MaxAverageN) {
		return fmt.Errorf("%w: n must be between %d and %d", ErrInvalidInput, ranking.MinAverageN, ranking.MaxAverageN)
	}
	return nil
}

// ComputeRankings returns the ranked table for one event category. An
// empty table is not an error; Table.Empty says which of the three
// empty states applies so the caller can phrase the message.
//
// The two fetches are independent equality-filter queries; the inner
// join inside the engine drops results for swimmers outside the
// filtered set.
func (s *RankingService) ComputeRankings(ctx context.Context, q RankingQuery) (ranking.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.ComputeRankings")
	defer span.End()

	if err := q.validate(); err != nil {
		return ranking.Table{}, err
	}

	swimmers, err := s.swimmerRepo.List(ctx, swimmer.Filter{Grade: q.Grade, Gender: q.Gender})
	if err != nil {
		return ranking.Table{}, markStore(fmt.Errorf("fetch swimmers: %w", err))
	}

	results, err := s.resultRepo.List(ctx, result.Filter{Stroke: q.Stroke})
	if err != nil {
		return ranking.Table{}, markStore(fmt.Errorf("fetch results: %w", err))
	}

	return ranking.Compute(swimmers, results, q.Policy, q.N), nil
}
