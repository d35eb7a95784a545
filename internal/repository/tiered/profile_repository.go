// Package tiered implements the profile repository as a layered read/write
// path: short-TTL in-memory cache, durable record store, in-memory
// fallback table. The cache is authoritative while fresh, the durable
// store is the source of truth when the cache is stale, and the fallback
// exists purely to ride out durable-store outages.
package tiered

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
	"github.com/RomainBraquet/surfai-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const DefaultTTL = 5 * time.Minute

var errStoreUnavailable = errors.New("durable store not configured")

// cacheEntry is replaced wholesale, never partially updated. Expired
// entries are only overwritten on the next write or durable read; there
// is no background eviction sweep.
type cacheEntry struct {
	profile   domain.Profile
	writtenAt time.Time
}

type ProfileRepository struct {
	store repository.ProfileStore // nil means durable tier permanently down
	ttl   time.Duration
	log   zerolog.Logger
	now   func() time.Time

	// mu guards the maps only. It is never held across a store call, so
	// two concurrent updates to the same id can still interleave their
	// read-merge-write sequences (last write wins, accepted limitation).
	mu       sync.RWMutex
	cache    map[string]cacheEntry
	fallback map[string]domain.Profile
}

func NewProfileRepository(store repository.ProfileStore, ttl time.Duration, log zerolog.Logger) *ProfileRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ProfileRepository{
		store:    store,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
		cache:    make(map[string]cacheEntry),
		fallback: make(map[string]domain.Profile),
	}
}

// Create builds a complete profile from partial user data, assigning a new
// id if absent, and persists it best-effort to the durable store and
// always to the fallback table and cache. A durable-store failure never
// fails the caller-visible operation.
func (r *ProfileRepository) Create(ctx context.Context, userData domain.ProfileUpdate) (*domain.Profile, error) {
	id := uuid.NewString()
	if userData.ID != nil && *userData.ID != "" {
		id = *userData.ID
	}

	profile := domain.DefaultProfile(id, r.now())
	domain.Apply(&profile, userData)
	profile.Normalize()

	if err := r.persist(ctx, &profile); err != nil {
		return nil, err
	}
	out := profile.Clone()
	return &out, nil
}

// Read resolves a profile through the tiers in strict order: fresh cache,
// durable store, fallback table, default synthesis. It never returns
// not-found; a total miss self-heals by creating a default profile.
func (r *ProfileRepository) Read(ctx context.Context, userID string) (*domain.Profile, error) {
	r.mu.RLock()
	entry, cached := r.cache[userID]
	r.mu.RUnlock()
	if cached && r.now().Sub(entry.writtenAt) < r.ttl {
		out := entry.profile.Clone()
		return &out, nil
	}

	if r.store != nil {
		profile, err := r.store.GetByID(ctx, userID)
		switch {
		case err == nil:
			r.setCache(*profile)
			out := profile.Clone()
			return &out, nil
		case errors.Is(err, domain.ErrRecordNotFound):
			// clean miss, fall through to the fallback table
		default:
			r.log.Warn().Err(err).Str("user_id", userID).Msg("durable store read failed, degrading to fallback")
		}
	}

	// The fallback tier is unverified, so it never refreshes the cache;
	// only durable reads and explicit writes do.
	r.mu.RLock()
	fb, ok := r.fallback[userID]
	r.mu.RUnlock()
	if ok {
		out := fb.Clone()
		return &out, nil
	}

	return r.Create(ctx, domain.ProfileUpdate{ID: &userID})
}

// Update deep-merges the partial update over the current profile, stamps
// updated_at, and writes through all tiers. It fails only when both the
// durable write and the fallback write fail.
func (r *ProfileRepository) Update(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.Profile, error) {
	current, err := r.Read(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := current.Clone()
	domain.Apply(&merged, update)
	merged.Normalize()
	merged.ID = current.ID
	merged.CreatedAt = current.CreatedAt
	merged.UpdatedAt = r.now()
	if merged.UpdatedAt.Before(current.UpdatedAt) {
		merged.UpdatedAt = current.UpdatedAt
	}

	if err := r.persist(ctx, &merged); err != nil {
		return nil, err
	}
	out := merged.Clone()
	return &out, nil
}

// persist attempts the durable write and the fallback write independently
// (best effort both), then replaces the cache entry. At least one of the
// two writes must succeed.
func (r *ProfileRepository) persist(ctx context.Context, profile *domain.Profile) error {
	durableErr := errStoreUnavailable
	if r.store != nil {
		durableErr = r.store.Upsert(ctx, profile)
		if durableErr != nil {
			r.log.Warn().Err(durableErr).Str("user_id", profile.ID).Msg("durable store write failed, fallback only")
		}
	}

	fallbackErr := r.writeFallback(*profile)
	if durableErr != nil && fallbackErr != nil {
		r.log.Error().Err(durableErr).AnErr("fallback_error", fallbackErr).Str("user_id", profile.ID).Msg("all persistence tiers failed")
		return &domain.PersistenceError{DurableErr: durableErr, FallbackErr: fallbackErr}
	}

	r.setCache(*profile)
	return nil
}

func (r *ProfileRepository) writeFallback(profile domain.Profile) error {
	r.mu.Lock()
	r.fallback[profile.ID] = profile.Clone()
	r.mu.Unlock()
	return nil
}

func (r *ProfileRepository) setCache(profile domain.Profile) {
	r.mu.Lock()
	r.cache[profile.ID] = cacheEntry{profile: profile.Clone(), writtenAt: r.now()}
	r.mu.Unlock()
}
