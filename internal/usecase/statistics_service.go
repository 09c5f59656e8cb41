package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/domain/statistics"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const maxTopN = 50

type StatisticsService struct {
	repo        statistics.Repository
	defaultTopN int
	logger      *logging.Logger
}

func NewStatisticsService(repo statistics.Repository, defaultTopN int, logger *logging.Logger) *StatisticsService {
	if logger == nil {
		logger = logging.Default()
	}
	if defaultTopN <= 0 || defaultTopN > maxTopN {
		defaultTopN = 5
	}

	return &StatisticsService{
		repo:        repo,
		defaultTopN: defaultTopN,
		logger:      logger,
	}
}

func (s *StatisticsService) General(ctx context.Context) (statistics.General, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.General")
	defer span.End()

	facts, err := s.loadFacts(ctx)
	if err != nil {
		return statistics.General{}, err
	}
	return statistics.ComputeGeneral(facts), nil
}

// League ranks purchases per role; topN 0 means the configured default.
func (s *StatisticsService) League(ctx context.Context, topN int) (statistics.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.League")
	defer span.End()

	if topN == 0 {
		topN = s.defaultTopN
	}
	if topN < 1 || topN > maxTopN {
		return statistics.League{}, fmt.Errorf("%w: top must be between 1 and %d", ErrInvalidInput, maxTopN)
	}

	facts, err := s.loadFacts(ctx)
	if err != nil {
		return statistics.League{}, err
	}
	return statistics.ComputeLeague(facts, topN), nil
}

func (s *StatisticsService) Comparative(ctx context.Context, sortBy, order string) ([]statistics.TeamComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.Comparative")
	defer span.End()

	field, dir, err := statistics.ParseSort(sortBy, order)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	facts, err := s.loadFacts(ctx)
	if err != nil {
		return nil, err
	}
	return statistics.ComputeComparative(facts, field, dir), nil
}

// loadFacts runs the three fact queries concurrently; the first failure cancels the rest.
func (s *StatisticsService) loadFacts(ctx context.Context) (statistics.Facts, error) {
	var (
		purchases []statistics.PurchaseFact
		teams     []statistics.TeamFact
		byStatus  map[player.Status]int
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		purchases, err = s.repo.ListPurchaseFacts(ctx)
		if err != nil {
			return fmt.Errorf("load purchase facts: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		teams, err = s.repo.ListTeamFacts(ctx)
		if err != nil {
			return fmt.Errorf("load team facts: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		byStatus, err = s.repo.CountPlayersByStatus(ctx)
		if err != nil {
			return fmt.Errorf("count players by status: %w", err)
		}
		return nil
	})

	if err := p.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return statistics.Facts{}, err
		}
		s.logger.WarnContext(ctx, "load statistics facts failed", "error", err)
		return statistics.Facts{}, err
	}

	return statistics.Facts{Purchases: purchases, Teams: teams, PlayersByState: byStatus}, nil
}
