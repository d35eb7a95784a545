package repository

import (
	"context"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// ListByUser returns sessions sorted by date descending.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Session, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}
