package statistics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantacalcio/internal/domain/player"
)

var ErrInvalidSort = errors.New("invalid sort")

// SortField selects the comparative ordering.
type SortField string

const (
	SortByTotalSpent      SortField = "spesa_totale"
	SortByPlayerCount     SortField = "numero_giocatori"
	SortByAveragePrice    SortField = "prezzo_medio"
	SortByEfficiency      SortField = "efficienza"
	SortByRemainingBudget SortField = "budget_residuo"
)

type SortOrder string

const (
	OrderDesc SortOrder = "desc"
	OrderAsc  SortOrder = "asc"
)

// ParseSort validates sort options; blanks default to total spend descending.
func ParseSort(field, order string) (SortField, SortOrder, error) {
	f := SortField(field)
	if f == "" {
		f = SortByTotalSpent
	}
	switch f {
	case SortByTotalSpent, SortByPlayerCount, SortByAveragePrice, SortByEfficiency, SortByRemainingBudget:
	default:
		return "", "", fmt.Errorf("%w: unknown sort field %q", ErrInvalidSort, field)
	}

	o := SortOrder(order)
	if o == "" {
		o = OrderDesc
	}
	if o != OrderAsc && o != OrderDesc {
		return "", "", fmt.Errorf("%w: unknown sort order %q", ErrInvalidSort, order)
	}

	return f, o, nil
}

// efficiencyScale expresses efficiency as players per 100 credits.
const efficiencyScale = 100

func average(total int64, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// Efficiency is playerCount / totalSpent scaled; zero when nothing was spent.
func Efficiency(playerCount int, totalSpent int64) float64 {
	if totalSpent <= 0 {
		return 0
	}
	return float64(playerCount) / float64(totalSpent) * efficiencyScale
}

func ComputeGeneral(f Facts) General {
	out := General{
		TotalPurchases:   len(f.Purchases),
		AvailablePlayers: f.PlayersByState[player.StatusAvailable],
		PurchasedPlayers: f.PlayersByState[player.StatusPurchased],
		SoldPlayers:      f.PlayersByState[player.StatusSold],
	}
	for _, n := range f.PlayersByState {
		out.TotalPlayers += n
	}

	byRole := make(map[player.Role]int, len(player.Roles))
	byTeam := make(map[int64]int, len(f.Teams))
	for _, p := range f.Purchases {
		out.TotalSpent += p.Price
		byRole[p.Role]++
		byTeam[p.TeamID]++
	}
	out.AveragePrice = average(out.TotalSpent, out.TotalPurchases)

	out.ByRole = make([]RoleCount, 0, len(player.Roles))
	for _, role := range player.Roles {
		out.ByRole = append(out.ByRole, RoleCount{Role: role, Count: byRole[role]})
	}
	out.ByTeam = make([]TeamCount, 0, len(f.Teams))
	for _, t := range f.Teams {
		out.ByTeam = append(out.ByTeam, TeamCount{TeamID: t.ID, TeamName: t.Name, Count: byTeam[t.ID]})
	}

	return out
}

// ComputeLeague builds the per-role and per-team view. Purchases must be in
// insertion order; top lists keep that order among equal prices.
func ComputeLeague(f Facts, topN int) League {
	out := League{}

	perRole := make(map[player.Role][]PurchaseFact, len(player.Roles))
	for _, p := range f.Purchases {
		perRole[p.Role] = append(perRole[p.Role], p)
	}

	out.TopByRole = make([]RoleTop, 0, len(player.Roles))
	out.Roles = make([]RoleSummary, 0, len(player.Roles))
	for _, role := range player.Roles {
		items := append([]PurchaseFact(nil), perRole[role]...)
		summary := RoleSummary{Role: role, Count: len(items)}
		for _, p := range items {
			summary.TotalSpent += p.Price
		}
		summary.AveragePrice = average(summary.TotalSpent, summary.Count)
		out.Roles = append(out.Roles, summary)

		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
		if topN >= 0 && len(items) > topN {
			items = items[:topN]
		}
		out.TopByRole = append(out.TopByRole, RoleTop{Role: role, Players: items})
	}

	out.Teams = teamSummaries(f)
	return out
}

func teamSummaries(f Facts) []TeamSummary {
	type acc struct {
		spent int64
		count int
		roles map[player.Role]*RoleSpend
	}
	byTeam := make(map[int64]*acc, len(f.Teams))
	for _, t := range f.Teams {
		byTeam[t.ID] = &acc{roles: make(map[player.Role]*RoleSpend, len(player.Roles))}
	}
	for _, p := range f.Purchases {
		a, ok := byTeam[p.TeamID]
		if !ok {
			continue
		}
		a.spent += p.Price
		a.count++
		rs, ok := a.roles[p.Role]
		if !ok {
			rs = &RoleSpend{Role: p.Role}
			a.roles[p.Role] = rs
		}
		rs.Count++
		rs.Spent += p.Price
	}

	out := make([]TeamSummary, 0, len(f.Teams))
	for _, t := range f.Teams {
		a := byTeam[t.ID]
		roles := make([]RoleSpend, 0, len(player.Roles))
		for _, role := range player.Roles {
			if rs, ok := a.roles[role]; ok {
				roles = append(roles, *rs)
				continue
			}
			roles = append(roles, RoleSpend{Role: role})
		}
		out = append(out, TeamSummary{
			TeamID:          t.ID,
			TeamName:        t.Name,
			Budget:          t.Budget,
			TotalSpent:      a.spent,
			RemainingBudget: t.Budget - a.spent,
			PlayerCount:     a.count,
			Roles:           roles,
		})
	}
	return out
}

func ComputeComparative(f Facts, field SortField, order SortOrder) []TeamComparison {
	summaries := teamSummaries(f)
	out := make([]TeamComparison, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, TeamComparison{
			TeamID:          s.TeamID,
			TeamName:        s.TeamName,
			Budget:          s.Budget,
			TotalSpent:      s.TotalSpent,
			RemainingBudget: s.RemainingBudget,
			PlayerCount:     s.PlayerCount,
			AveragePrice:    average(s.TotalSpent, s.PlayerCount),
			Efficiency:      Efficiency(s.PlayerCount, s.TotalSpent),
			Roles:           s.Roles,
		})
	}

	key := func(c TeamComparison) float64 {
		switch field {
		case SortByPlayerCount:
			return float64(c.PlayerCount)
		case SortByAveragePrice:
			return c.AveragePrice
		case SortByEfficiency:
			return c.Efficiency
		case SortByRemainingBudget:
			return float64(c.RemainingBudget)
		default:
			return float64(c.TotalSpent)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if order == OrderAsc {
			return key(out[i]) < key(out[j])
		}
		return key(out[i]) > key(out[j])
	})

	return out
}
