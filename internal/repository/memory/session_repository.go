// Package memory keeps session history in process memory. It backs the
// service when no database is configured and keeps session recording
// available while the durable store is down.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
	"github.com/RomainBraquet/surfai-backend/internal/repository"
)

type sessionRepository struct {
	mu     sync.RWMutex
	byUser map[string][]*domain.Session
}

func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{byUser: make(map[string][]*domain.Session)}
}

func (r *sessionRepository) Create(_ context.Context, session *domain.Session) error {
	copied := *session

	r.mu.Lock()
	defer r.mu.Unlock()
	sessions := append(r.byUser[session.UserID], &copied)
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date)
	})
	r.byUser[session.UserID] = sessions
	return nil
}

func (r *sessionRepository) ListByUser(_ context.Context, userID string, limit, offset int) ([]*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := r.byUser[userID]
	if offset < 0 {
		offset = 0
	}
	if offset >= len(sessions) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(sessions) {
		end = len(sessions)
	}

	out := make([]*domain.Session, 0, end-offset)
	for _, s := range sessions[offset:end] {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (r *sessionRepository) CountByUser(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID]), nil
}
