package domain

import (
	"strings"
	"time"
)

// Turn is one entry of a session's append-only text log. Concatenating the
// texts of all turns in order reproduces the transcript.
type Turn struct {
	ID        string
	SessionID string
	Seq       int
	Kind      TurnKind
	Text      string
	CreatedAt time.Time
}

// JoinTurns concatenates turn texts in order.
func JoinTurns(turns []*Turn) string {
	var b strings.Builder
	for _, t := range turns {
		b.WriteString(t.Text)
	}
	return b.String()
}
