package repository

import (
	"context"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
)

// ProfileStore is the durable-record-store contract the core consumes.
// Implementations may fail or time out; the tiered repository treats any
// error as "store unavailable for this operation" and degrades. Retries,
// if any, belong to the implementation.
type ProfileStore interface {
	// GetByID returns domain.ErrRecordNotFound on a clean miss.
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
	CountWhere(ctx context.Context, table string, filter map[string]string) (int, error)
}

// ProfileRepository is the caller-facing tiered contract. Read never
// fails with not-found: it synthesizes and persists a default profile.
type ProfileRepository interface {
	Create(ctx context.Context, userData domain.ProfileUpdate) (*domain.Profile, error)
	Read(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.Profile, error)
}
