package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/domain/statistics"
	statisticsmock "github.com/riskibarqy/fantacalcio/internal/mocks/domain/statistics"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func mockFacts(repo *statisticsmock.Repository) {
	repo.On("ListPurchaseFacts", mock.Anything).Return([]statistics.PurchaseFact{
		{PurchaseID: 1, PlayerID: "a", Role: player.RoleForward, TeamID: 1, TeamName: "A", Price: 100},
		{PurchaseID: 2, PlayerID: "b", Role: player.RoleDefender, TeamID: 2, TeamName: "B", Price: 20},
		{PurchaseID: 3, PlayerID: "c", Role: player.RoleDefender, TeamID: 2, TeamName: "B", Price: 20},
	}, nil).Once()
	repo.On("ListTeamFacts", mock.Anything).Return([]statistics.TeamFact{
		{ID: 1, Name: "A", Budget: 500},
		{ID: 2, Name: "B", Budget: 500},
	}, nil).Once()
	repo.On("CountPlayersByStatus", mock.Anything).Return(map[player.Status]int{
		player.StatusAvailable: 7,
		player.StatusPurchased: 3,
	}, nil).Once()
}

func TestStatisticsService_General(t *testing.T) {
	t.Parallel()

	repo := statisticsmock.NewRepository(t)
	mockFacts(repo)
	service := NewStatisticsService(repo, 5, logging.NewNop())

	got, err := service.General(context.Background())
	if err != nil {
		t.Fatalf("general: %v", err)
	}
	if got.TotalPurchases != 3 || got.TotalSpent != 140 || got.AvailablePlayers != 7 {
		t.Fatalf("unexpected general stats: %+v", got)
	}
}

func TestStatisticsService_Comparative(t *testing.T) {
	t.Parallel()

	repo := statisticsmock.NewRepository(t)
	mockFacts(repo)
	service := NewStatisticsService(repo, 5, logging.NewNop())

	got, err := service.Comparative(context.Background(), "numero_giocatori", "desc")
	if err != nil {
		t.Fatalf("comparative: %v", err)
	}
	if len(got) != 2 || got[0].TeamID != 2 {
		t.Fatalf("expected team B first, got %+v", got)
	}
}

func TestStatisticsService_InvalidInput(t *testing.T) {
	t.Parallel()

	service := NewStatisticsService(statisticsmock.NewRepository(t), 5, logging.NewNop())

	if _, err := service.Comparative(context.Background(), "nome", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown sort field, got %v", err)
	}
	if _, err := service.Comparative(context.Background(), "", "sideways"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown order, got %v", err)
	}
	if _, err := service.League(context.Background(), 51); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for top=51, got %v", err)
	}
}

func TestStatisticsService_FactFailure(t *testing.T) {
	t.Parallel()

	repo := statisticsmock.NewRepository(t)
	boom := errors.New("disk on fire")
	repo.On("ListPurchaseFacts", mock.Anything).Return(nil, boom).Once()
	repo.On("ListTeamFacts", mock.Anything).Return([]statistics.TeamFact{}, nil).Maybe()
	repo.On("CountPlayersByStatus", mock.Anything).Return(map[player.Status]int{}, nil).Maybe()
	service := NewStatisticsService(repo, 5, logging.NewNop())

	if _, err := service.General(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected fact error, got %v", err)
	}
}
