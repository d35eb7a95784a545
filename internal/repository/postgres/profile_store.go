package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
	"github.com/RomainBraquet/surfai-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

// profileStore persists each profile as a single JSONB document keyed by
// user id. The schema is a flat document table on purpose: the profile is
// read and written wholesale by the tiered repository, never field by
// field.
type profileStore struct {
	db *sqlx.DB
}

func NewProfileStore(db *sqlx.DB) (repository.ProfileStore, error) {
	s := &profileStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("failed to ensure profile schema: %w", err)
	}
	return s, nil
}

func (s *profileStore) ensureSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			user_id    TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *profileStore) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var doc []byte
	query := `SELECT doc FROM profiles WHERE user_id = $1`
	err := s.db.QueryRowContext(ctx, query, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", id, err)
	}
	return &profile, nil
}

func (s *profileStore) Upsert(ctx context.Context, profile *domain.Profile) error {
	doc, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile %s: %w", profile.ID, err)
	}

	query := `
		INSERT INTO profiles (user_id, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at
	`
	_, err = s.db.ExecContext(ctx, query, profile.ID, doc, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert profile %s: %w", profile.ID, err)
	}
	return nil
}

func (s *profileStore) CountWhere(ctx context.Context, table string, filter map[string]string) (int, error) {
	query, args, err := buildCountQuery(table, filter)
	if err != nil {
		return 0, err
	}

	var count int
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

// buildCountQuery interpolates only the whitelisted table name; filter
// keys and values are both bound as parameters, never spliced into the
// SQL text.
func buildCountQuery(table string, filter map[string]string) (string, []interface{}, error) {
	if table != "profiles" && table != "sessions" {
		return "", nil, fmt.Errorf("unknown table %q", table)
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE 1=1`, table)
	args := make([]interface{}, 0, 2*len(filter))

	for key, value := range filter {
		query += fmt.Sprintf(" AND doc->>$%d = $%d", len(args)+1, len(args)+2)
		args = append(args, key, value)
	}
	return query, args, nil
}
