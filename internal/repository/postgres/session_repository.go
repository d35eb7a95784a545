package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
	"github.com/RomainBraquet/surfai-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) (repository.SessionRepository, error) {
	r := &sessionRepository{db: db}
	if err := r.ensureSchema(); err != nil {
		return nil, fmt.Errorf("failed to ensure session schema: %w", err)
	}
	return r, nil
}

func (r *sessionRepository) ensureSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id           TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL,
			session_date TIMESTAMPTZ NOT NULL,
			doc          JSONB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_user_date ON sessions (user_id, session_date DESC)
	`
	_, err := r.db.Exec(schema)
	return err
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	doc, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
	}

	query := `
		INSERT INTO sessions (id, user_id, session_date, doc)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, session.ID, session.UserID, session.Date, doc); err != nil {
		return fmt.Errorf("failed to insert session %s: %w", session.ID, err)
	}
	return nil
}

func (r *sessionRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Session, error) {
	query := `
		SELECT doc FROM sessions
		WHERE user_id = $1
		ORDER BY session_date DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for %s: %w", userID, err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var session domain.Session
		if err := json.Unmarshal(doc, &session); err != nil {
			return nil, fmt.Errorf("failed to decode session: %w", err)
		}
		sessions = append(sessions, &session)
	}
	return sessions, rows.Err()
}

func (r *sessionRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM sessions WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count sessions for %s: %w", userID, err)
	}
	return count, nil
}
