package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/domain/team"
	playermock "github.com/riskibarqy/fantacalcio/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/fantacalcio/internal/mocks/domain/team"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestTeamService_CreateTeamUsesDefaultBudget(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, playermock.NewRepository(t), 500, logging.NewNop())

	teamRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(v team.Team) bool { return v.Name == "Real Mente" && v.Budget == 500 })).
		Return(team.Team{ID: 1, Name: "Real Mente", Budget: 500}, nil).
		Once()

	got, err := service.CreateTeam(context.Background(), CreateTeamInput{Name: "  Real Mente "})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if got.ID != 1 || got.Remaining() != 500 {
		t.Fatalf("unexpected team: %+v", got)
	}
}

func TestTeamService_CreateTeamValidation(t *testing.T) {
	t.Parallel()

	service := NewTeamService(teammock.NewRepository(t), playermock.NewRepository(t), 500, logging.NewNop())
	negative := int64(-1)

	for _, input := range []CreateTeamInput{{Name: " "}, {Name: "Ok", Budget: &negative}} {
		if _, err := service.CreateTeam(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestTeamService_UpdateTeamBudgetBelowSpent(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, playermock.NewRepository(t), 500, logging.NewNop())

	teamRepo.
		On("Update", mock.Anything, mock.Anything).
		Return(team.Team{}, true, fmt.Errorf("%w: budget=10 spent=50", team.ErrBudgetBelowSpent)).
		Once()

	_, err := service.UpdateTeam(context.Background(), UpdateTeamInput{ID: 1, Name: "A", Budget: 10})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestTeamService_GetTeamIncludesRoster(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewTeamService(teamRepo, playerRepo, 500, logging.NewNop())

	teamRepo.On("GetByID", mock.Anything, int64(7)).Return(team.Team{ID: 7, Name: "A", Budget: 500, Spent: 30}, true, nil).Once()
	playerRepo.
		On("List", mock.Anything, mock.MatchedBy(func(f player.Filter) bool { return f.TeamID != nil && *f.TeamID == 7 })).
		Return([]player.View{{Player: player.Player{ID: "rossi_inter"}}}, nil).
		Once()

	got, err := service.GetTeam(context.Background(), 7)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if len(got.Players) != 1 || got.Remaining() != 470 {
		t.Fatalf("unexpected details: %+v", got)
	}
}

func TestTeamService_DeleteTeamNotFound(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, playermock.NewRepository(t), 500, logging.NewNop())

	teamRepo.On("Delete", mock.Anything, int64(9)).Return(team.DeleteResult{}, false, nil).Once()

	if _, err := service.DeleteTeam(context.Background(), 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
