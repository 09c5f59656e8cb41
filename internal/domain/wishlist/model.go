package wishlist

import "time"

// Entry marks a player the user wants to track during the auction.
type Entry struct {
	ID        int64
	PlayerID  string
	CreatedAt time.Time
}

// Item is an entry joined with the player's listone data.
type Item struct {
	Entry
	PlayerName   string
	PlayerClub   string
	PlayerRole   string
	PlayerStatus string
	Gazzetta     *float64
}
