package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
	"github.com/riskibarqy/fantacalcio/internal/domain/team"
	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
)

type CreateTeamInput struct {
	Name   string
	Owner  string
	Budget *int64
}

type UpdateTeamInput struct {
	ID     int64
	Name   string
	Owner  string
	Budget int64
}

type TeamService struct {
	teamRepo      team.Repository
	playerRepo    player.Repository
	defaultBudget int64
	logger        *logging.Logger
}

func NewTeamService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	defaultBudget int64,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	if defaultBudget <= 0 {
		defaultBudget = team.DefaultBudget
	}

	return &TeamService{
		teamRepo:      teamRepo,
		playerRepo:    playerRepo,
		defaultBudget: defaultBudget,
		logger:        logger,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// GetTeam returns the team with its roster.
func (s *TeamService) GetTeam(ctx context.Context, teamID int64) (team.Details, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return team.Details{}, err
	}

	roster, err := s.playerRepo.List(ctx, player.Filter{TeamID: &item.ID})
	if err != nil {
		return team.Details{}, fmt.Errorf("list team roster: %w", err)
	}

	return team.Details{Team: item, Players: roster}, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	item := team.Team{
		Name:   strings.TrimSpace(input.Name),
		Owner:  strings.TrimSpace(input.Owner),
		Budget: s.defaultBudget,
	}
	if input.Budget != nil {
		item.Budget = *input.Budget
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	s.logger.InfoContext(ctx, "team created", "team_id", created.ID, "budget", created.Budget)
	return created, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, input UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeam")
	defer span.End()

	if input.ID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be > 0", ErrInvalidInput)
	}
	item := team.Team{
		ID:     input.ID,
		Name:   strings.TrimSpace(input.Name),
		Owner:  strings.TrimSpace(input.Owner),
		Budget: input.Budget,
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, exists, err := s.teamRepo.Update(ctx, item)
	if err != nil {
		if errors.Is(err, team.ErrBudgetBelowSpent) {
			return team.Team{}, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: squadra=%d", ErrNotFound, input.ID)
	}
	return updated, nil
}

// DeleteTeam releases the roster and removes the team.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID int64) (team.DeleteResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteTeam")
	defer span.End()

	if teamID <= 0 {
		return team.DeleteResult{}, fmt.Errorf("%w: team id must be > 0", ErrInvalidInput)
	}

	result, exists, err := s.teamRepo.Delete(ctx, teamID)
	if err != nil {
		return team.DeleteResult{}, fmt.Errorf("delete team: %w", err)
	}
	if !exists {
		return team.DeleteResult{}, fmt.Errorf("%w: squadra=%d", ErrNotFound, teamID)
	}

	s.logger.InfoContext(ctx, "team deleted",
		"team_id", teamID,
		"released_players", len(result.ReleasedPlayerIDs),
		"purchases_removed", result.PurchasesRemoved,
	)
	return result, nil
}

func (s *TeamService) getTeam(ctx context.Context, teamID int64) (team.Team, error) {
	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be > 0", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: squadra=%d", ErrNotFound, teamID)
	}
	return item, nil
}
