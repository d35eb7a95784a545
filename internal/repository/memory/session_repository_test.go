package memory

import (
	"context"
	"testing"
	"time"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSessions(t *testing.T, repo *sessionRepository, userID string, spots []string) {
	t.Helper()
	now := time.Now()
	for i, spot := range spots {
		err := repo.Create(context.Background(), &domain.Session{
			ID:     spot,
			UserID: userID,
			Spot:   spot,
			Date:   now.AddDate(0, 0, -i),
		})
		require.NoError(t, err)
	}
}

func TestListByUserPaginates(t *testing.T) {
	repo := NewSessionRepository().(*sessionRepository)
	seedSessions(t, repo, "u1", []string{"a", "b", "c", "d"})

	page, err := repo.ListByUser(context.Background(), "u1", 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "b", page[0].Spot)
	assert.Equal(t, "c", page[1].Spot)
}

func TestListByUserNegativeOffsetReadsFromStart(t *testing.T) {
	repo := NewSessionRepository().(*sessionRepository)
	seedSessions(t, repo, "u1", []string{"a"})

	sessions, err := repo.ListByUser(context.Background(), "u1", 50, -1)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "a", sessions[0].Spot)
}

func TestListByUserOffsetPastEnd(t *testing.T) {
	repo := NewSessionRepository().(*sessionRepository)
	seedSessions(t, repo, "u1", []string{"a", "b"})

	sessions, err := repo.ListByUser(context.Background(), "u1", 10, 5)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
