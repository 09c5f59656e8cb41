package player

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantacalcio/internal/platform/id"
)

// Role is the fantacalcio position bucket of a player.
type Role string

const (
	RoleGoalkeeper Role = "portiere"
	RoleDefender   Role = "difensore"
	RoleMidfielder Role = "centrocampista"
	RoleForward    Role = "attaccante"
)

// Roles lists every role in listone order (P, D, C, A).
var Roles = []Role{RoleGoalkeeper, RoleDefender, RoleMidfielder, RoleForward}

var roleAliases = map[string]Role{
	"portiere":       RoleGoalkeeper,
	"p":              RoleGoalkeeper,
	"por":            RoleGoalkeeper,
	"difensore":      RoleDefender,
	"d":              RoleDefender,
	"dif":            RoleDefender,
	"centrocampista": RoleMidfielder,
	"c":              RoleMidfielder,
	"cen":            RoleMidfielder,
	"attaccante":     RoleForward,
	"a":              RoleForward,
	"att":            RoleForward,
}

// ParseRole accepts the full Italian role name or the listone shorthand.
func ParseRole(raw string) (Role, bool) {
	role, ok := roleAliases[strings.ToLower(strings.TrimSpace(raw))]
	return role, ok
}

// Status tracks where a player stands in the auction.
type Status string

const (
	StatusAvailable Status = "disponibile"
	StatusPurchased Status = "acquistato"
	StatusSold      Status = "venduto"
)

func ParseStatus(raw string) (Status, bool) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case StatusAvailable, StatusPurchased, StatusSold:
		return s, true
	default:
		return "", false
	}
}

// Player is an entry of the auction listone.
type Player struct {
	ID        string
	Name      string
	Club      string
	Role      Role
	TeamID    *int64
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeriveID builds the stable player id from name and club, e.g. "lautaro_martinez_inter".
func DeriveID(name, club string) string {
	return id.Slug(name, club)
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Club) == "" {
		return fmt.Errorf("player club is required")
	}
	if _, ok := ParseRole(string(p.Role)); !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	if _, ok := ParseStatus(string(p.Status)); !ok {
		return fmt.Errorf("invalid player status: %s", p.Status)
	}
	if p.Status == StatusPurchased && p.TeamID == nil {
		return fmt.Errorf("purchased player %s has no fantasquadra", p.ID)
	}

	return nil
}

// View is a player enriched with quotation, purchase, owner and wishlist data.
type View struct {
	Player

	TeamName     string
	Price        *int64
	PurchasedAt  *time.Time
	Gazzetta     *float64
	Fascia       *string
	Consiglio    *string
	Voto         *float64
	MyRating     *int
	Note         *string
	Favourite    bool
	InWishlist   bool
	WishlistedAt *time.Time
}

// Filter narrows List results; zero values mean "any".
type Filter struct {
	Role   Role
	Club   string
	Status Status
	TeamID *int64
	Search string
}
