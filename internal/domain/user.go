package domain

import "time"

// User holds a player's currency balance.
type User struct {
	UserID    string    `json:"user_id"`
	Balance   int       `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
