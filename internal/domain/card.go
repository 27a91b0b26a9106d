package domain

import "time"

// Card is a persisted text document attached to a session. Each session holds
// at most one card per role.
type Card struct {
	ID        string
	SessionID string
	Role      DocumentRole
	Title     string
	Entry     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
