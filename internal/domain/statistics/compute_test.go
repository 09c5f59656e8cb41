package statistics

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
)

func sampleFacts() Facts {
	return Facts{
		Teams: []TeamFact{
			{ID: 1, Name: "Alpha", Budget: 500},
			{ID: 2, Name: "Beta", Budget: 500},
			{ID: 3, Name: "Gamma", Budget: 400},
		},
		Purchases: []PurchaseFact{
			{PurchaseID: 1, PlayerID: "a_inter", Role: player.RoleForward, TeamID: 1, TeamName: "Alpha", Price: 40},
			{PurchaseID: 2, PlayerID: "b_milan", Role: player.RoleForward, TeamID: 2, TeamName: "Beta", Price: 60},
			{PurchaseID: 3, PlayerID: "c_roma", Role: player.RoleForward, TeamID: 2, TeamName: "Beta", Price: 40},
			{PurchaseID: 4, PlayerID: "d_lazio", Role: player.RoleGoalkeeper, TeamID: 1, TeamName: "Alpha", Price: 10},
			{PurchaseID: 5, PlayerID: "e_juve", Role: player.RoleDefender, TeamID: 1, TeamName: "Alpha", Price: 5},
		},
		PlayersByState: map[player.Status]int{
			player.StatusAvailable: 20,
			player.StatusPurchased: 5,
		},
	}
}

func TestComputeGeneral(t *testing.T) {
	got := ComputeGeneral(sampleFacts())

	if got.TotalPurchases != 5 || got.TotalSpent != 155 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if got.AveragePrice != 31 {
		t.Fatalf("unexpected average: %v", got.AveragePrice)
	}
	if got.AvailablePlayers != 20 || got.PurchasedPlayers != 5 || got.TotalPlayers != 25 {
		t.Fatalf("unexpected player counts: %+v", got)
	}
	if len(got.ByRole) != 4 || got.ByRole[3].Role != player.RoleForward || got.ByRole[3].Count != 3 {
		t.Fatalf("unexpected role counts: %+v", got.ByRole)
	}
	if got.ByRole[2].Count != 0 {
		t.Fatalf("expected zero midfielders, got %d", got.ByRole[2].Count)
	}
	if len(got.ByTeam) != 3 || got.ByTeam[2].Count != 0 {
		t.Fatalf("expected all teams listed with zeros: %+v", got.ByTeam)
	}
}

func TestComputeGeneral_NoPurchasesAverageIsZero(t *testing.T) {
	got := ComputeGeneral(Facts{Teams: []TeamFact{{ID: 1, Name: "Alpha", Budget: 500}}})
	if got.AveragePrice != 0 || got.TotalSpent != 0 {
		t.Fatalf("expected zero average with no purchases, got %+v", got)
	}
}

func TestComputeLeague_TopTieBreaksByPurchaseOrder(t *testing.T) {
	got := ComputeLeague(sampleFacts(), 2)

	var forwards RoleTop
	for _, rt := range got.TopByRole {
		if rt.Role == player.RoleForward {
			forwards = rt
		}
	}
	if len(forwards.Players) != 2 {
		t.Fatalf("expected top 2 forwards, got %d", len(forwards.Players))
	}
	if forwards.Players[0].PlayerID != "b_milan" || forwards.Players[1].PlayerID != "a_inter" {
		t.Fatalf("unexpected top order: %+v", forwards.Players)
	}

	for _, rs := range got.Roles {
		if rs.Role == player.RoleForward && (rs.Count != 3 || rs.TotalSpent != 140) {
			t.Fatalf("unexpected forward summary: %+v", rs)
		}
		if rs.Role == player.RoleMidfielder && rs.AveragePrice != 0 {
			t.Fatalf("expected zero average for empty role")
		}
	}

	if got.Teams[2].RemainingBudget != 400 || got.Teams[0].RemainingBudget != 445 {
		t.Fatalf("unexpected remaining budgets: %+v", got.Teams)
	}
}

func TestComputeComparative_DefaultSort(t *testing.T) {
	field, order, err := ParseSort("", "")
	if err != nil {
		t.Fatalf("parse sort: %v", err)
	}
	got := ComputeComparative(sampleFacts(), field, order)

	if got[0].TeamName != "Beta" || got[1].TeamName != "Alpha" || got[2].TeamName != "Gamma" {
		t.Fatalf("unexpected order: %s %s %s", got[0].TeamName, got[1].TeamName, got[2].TeamName)
	}
	if got[0].AveragePrice != 50 {
		t.Fatalf("unexpected average for Beta: %v", got[0].AveragePrice)
	}
	if got[2].Efficiency != 0 {
		t.Fatalf("expected zero efficiency without spend, got %v", got[2].Efficiency)
	}
}

func TestComputeComparative_AscendingByRemainingBudget(t *testing.T) {
	field, order, err := ParseSort("budget_residuo", "asc")
	if err != nil {
		t.Fatalf("parse sort: %v", err)
	}
	got := ComputeComparative(sampleFacts(), field, order)
	if got[0].TeamName != "Beta" || got[2].TeamName != "Alpha" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestParseSort_Invalid(t *testing.T) {
	if _, _, err := ParseSort("nome", ""); !errors.Is(err, ErrInvalidSort) {
		t.Fatalf("expected ErrInvalidSort for field, got %v", err)
	}
	if _, _, err := ParseSort("", "up"); !errors.Is(err, ErrInvalidSort) {
		t.Fatalf("expected ErrInvalidSort for order, got %v", err)
	}
}

func TestEfficiency(t *testing.T) {
	if got := Efficiency(3, 55); got < 5.45 || got > 5.46 {
		t.Fatalf("unexpected efficiency: %v", got)
	}
	if got := Efficiency(0, 0); got != 0 {
		t.Fatalf("expected zero efficiency, got %v", got)
	}
}
