package statistics

import (
	"context"
	"time"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
)

// PurchaseFact is one purchase joined with player and team data.
type PurchaseFact struct {
	PurchaseID  int64
	PlayerID    string
	PlayerName  string
	PlayerClub  string
	Role        player.Role
	TeamID      int64
	TeamName    string
	Price       int64
	PurchasedAt time.Time
}

// TeamFact is the minimum team data needed for aggregation.
type TeamFact struct {
	ID     int64
	Name   string
	Budget int64
}

// Facts is the raw input of every statistics view.
type Facts struct {
	Purchases      []PurchaseFact
	Teams          []TeamFact
	PlayersByState map[player.Status]int
}

type RoleCount struct {
	Role  player.Role
	Count int
}

type TeamCount struct {
	TeamID   int64
	TeamName string
	Count    int
}

// General is the league-wide overview.
type General struct {
	TotalPurchases   int
	TotalSpent       int64
	AveragePrice     float64
	TotalPlayers     int
	AvailablePlayers int
	PurchasedPlayers int
	SoldPlayers      int
	ByRole           []RoleCount
	ByTeam           []TeamCount
}

type RoleSummary struct {
	Role         player.Role
	Count        int
	TotalSpent   int64
	AveragePrice float64
}

type RoleSpend struct {
	Role  player.Role
	Count int
	Spent int64
}

type TeamSummary struct {
	TeamID          int64
	TeamName        string
	Budget          int64
	TotalSpent      int64
	RemainingBudget int64
	PlayerCount     int
	Roles           []RoleSpend
}

type RoleTop struct {
	Role    player.Role
	Players []PurchaseFact
}

// League is the per-role and per-team breakdown.
type League struct {
	TopByRole []RoleTop
	Roles     []RoleSummary
	Teams     []TeamSummary
}

// TeamComparison is one row of the comparative view.
type TeamComparison struct {
	TeamID          int64
	TeamName        string
	Budget          int64
	TotalSpent      int64
	RemainingBudget int64
	PlayerCount     int
	AveragePrice    float64
	Efficiency      float64
	Roles           []RoleSpend
}

// Repository loads the facts; every call reads the current state.
type Repository interface {
	ListPurchaseFacts(ctx context.Context) ([]PurchaseFact, error)
	ListTeamFacts(ctx context.Context) ([]TeamFact, error)
	CountPlayersByStatus(ctx context.Context) (map[player.Status]int, error)
}
