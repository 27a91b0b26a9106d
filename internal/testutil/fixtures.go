package testutil

import (
	"time"

	"github.com/alexanderramin/scenariogen/internal/domain"
	"github.com/google/uuid"
)

// Session options
type SessionOption func(*domain.Session)

func WithSessionStatus(s domain.SessionStatus) SessionOption {
	return func(sess *domain.Session) {
		sess.Status = s
	}
}

func WithActionCount(n int) SessionOption {
	return func(sess *domain.Session) {
		sess.ActionCount = n
	}
}

func WithTurnState(st domain.TurnState) SessionOption {
	return func(sess *domain.Session) {
		sess.State = st
	}
}

func WithSessionID(id string) SessionOption {
	return func(sess *domain.Session) {
		sess.ID = id
	}
}

func WithUpdatedAt(t time.Time) SessionOption {
	return func(sess *domain.Session) {
		sess.UpdatedAt = t
	}
}

func NewTestSession(title string, opts ...SessionOption) *domain.Session {
	now := time.Now().UTC()
	s := &domain.Session{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    domain.SessionActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Card options
type CardOption func(*domain.Card)

func WithCardNotes(notes string) CardOption {
	return func(c *domain.Card) {
		c.Notes = notes
	}
}

func WithCardTitle(title string) CardOption {
	return func(c *domain.Card) {
		c.Title = title
	}
}

func NewTestCard(sessionID string, role domain.DocumentRole, entry string, opts ...CardOption) *domain.Card {
	now := time.Now().UTC()
	c := &domain.Card{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      role,
		Title:     string(role),
		Entry:     entry,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func NewTestTurn(sessionID string, kind domain.TurnKind, text string) *domain.Turn {
	return &domain.Turn{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Kind:      kind,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
