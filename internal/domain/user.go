package domain

import "time"

// Status is the display state of a user, derived from HP and SP
type Status string

const (
	StatusNormal    Status = "NORMAL"
	StatusSSJ       Status = "SSJ"
	StatusExhausted Status = "EXHAUSTED"
)

// User represents a player's progression record
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Level      int       `json:"level"`
	CurrentExp int       `json:"current_exp"`
	MaxExp     int       `json:"max_exp"`
	HP         int       `json:"hp"`
	MaxHP      int       `json:"max_hp"`
	SP         int       `json:"sp"`
	MaxSP      int       `json:"max_sp"`
	Gold       int       `json:"gold"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewUser returns a level 1 user with full HP and SP
func NewUser(id, username string, now time.Time) User {
	return User{
		ID:         id,
		Username:   username,
		Level:      DefaultLevel,
		CurrentExp: 0,
		MaxExp:     DefaultMaxExp,
		HP:         DefaultMaxHP,
		MaxHP:      DefaultMaxHP,
		SP:         DefaultMaxSP,
		MaxSP:      DefaultMaxSP,
		Gold:       0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsIncapacitated reports whether the user has no HP left
func (u User) IsIncapacitated() bool {
	return u.HP <= 0
}

// RecoveryResult describes a rest, meditation or senzu bean
type RecoveryResult struct {
	User        User   `json:"user"`
	Action      string `json:"action"`
	HPRestored  int    `json:"hp_restored"`
	SPRestored  int    `json:"sp_restored"`
	StatusAfter Status `json:"status"`
}
