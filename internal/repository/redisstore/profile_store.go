// Package redisstore is the Redis-backed durable adapter, selected with
// STORAGE_TYPE=redis. Profiles live as JSON values at profile:<id>.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
	"github.com/RomainBraquet/surfai-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "profile:"

type profileStore struct {
	client *redis.Client
}

func NewProfileStore(client *redis.Client) repository.ProfileStore {
	return &profileStore{client: client}
}

func (s *profileStore) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	val, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(val, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", id, err)
	}
	return &profile, nil
}

func (s *profileStore) Upsert(ctx context.Context, profile *domain.Profile) error {
	doc, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile %s: %w", profile.ID, err)
	}
	// Durable records never expire; TTL belongs to the cache tier.
	if err := s.client.Set(ctx, keyPrefix+profile.ID, doc, 0).Err(); err != nil {
		return fmt.Errorf("failed to upsert profile %s: %w", profile.ID, err)
	}
	return nil
}

func (s *profileStore) CountWhere(ctx context.Context, table string, filter map[string]string) (int, error) {
	if table != "profiles" {
		return 0, fmt.Errorf("unknown table %q", table)
	}

	count := 0
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if len(filter) == 0 {
			count++
			continue
		}
		val, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}
		var doc map[string]interface{}
		if err := json.Unmarshal(val, &doc); err != nil {
			continue
		}
		if matches(doc, filter) {
			count++
		}
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan profiles: %w", err)
	}
	return count, nil
}

func matches(doc map[string]interface{}, filter map[string]string) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || fmt.Sprint(got) != want {
			return false
		}
	}
	return true
}
