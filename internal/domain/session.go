package domain

import "time"

// Session is one interview: an outline being filled turn by turn.
type Session struct {
	ID          string
	Title       string
	Status      SessionStatus
	ActionCount int
	State       TurnState
	// ExportedAt is set once the story bible has been produced.
	ExportedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DisplayID returns the first 8 characters of the session ID.
func (s *Session) DisplayID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}

// IsComplete reports whether the outline has been filled.
func (s *Session) IsComplete() bool {
	return s.Status == SessionComplete
}
