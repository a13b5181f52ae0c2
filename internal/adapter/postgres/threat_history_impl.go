package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/safebrowse-service/internal/entity"
)

// ThreatHistoryRepoImpl provides a concrete implementation for the ThreatHistoryRepository interface using PostgreSQL.
type ThreatHistoryRepoImpl struct {
	db *pgxpool.Pool
}

// NewThreatHistoryRepo creates a new instance of ThreatHistoryRepoImpl.
func NewThreatHistoryRepo(db *pgxpool.Pool) *ThreatHistoryRepoImpl {
	return &ThreatHistoryRepoImpl{db: db}
}

// EnsureSchema creates the threat_matches table if it does not exist yet.
// The checker runs as a one-shot job, so there is no separate migration step.
func (r *ThreatHistoryRepoImpl) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS threat_matches (
			id BIGSERIAL PRIMARY KEY,
			url TEXT NOT NULL,
			threat_type TEXT NOT NULL,
			detected_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := r.db.Exec(ctx, query)
	return err
}

// SaveMatches stores one row per reported match.
func (r *ThreatHistoryRepoImpl) SaveMatches(ctx context.Context, matches []entity.ThreatMatch, detectedAt time.Time) error {
	query := `
		INSERT INTO threat_matches (url, threat_type, detected_at)
		VALUES ($1, $2, $3);
	`
	for _, m := range matches {
		if _, err := r.db.Exec(ctx, query, m.URL, string(m.ThreatType), detectedAt); err != nil {
			return err
		}
	}
	return nil
}
