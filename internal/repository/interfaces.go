package repository

import (
	"context"

	"github.com/alexanderramin/scenariogen/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// GetByPrefix resolves a full ID or a unique leading fragment of one.
	GetByPrefix(ctx context.Context, prefix string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}

type CardRepo interface {
	// Upsert creates the session's card for c.Role or replaces its content.
	Upsert(ctx context.Context, c *domain.Card) error
	Get(ctx context.Context, sessionID string, role domain.DocumentRole) (*domain.Card, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Card, error)
}

type TurnRepo interface {
	// Append stores t at the next sequence number and sets t.Seq.
	Append(ctx context.Context, t *domain.Turn) error
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Turn, error)
}
