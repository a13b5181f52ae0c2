package repository

import (
	"context"
	"time"

	"github.com/user/safebrowse-service/internal/entity"
)

// ThreatHistoryRepository defines the interface for persisting reported matches.
type ThreatHistoryRepository interface {
	// SaveMatches stores one record per match with the given detection time.
	SaveMatches(ctx context.Context, matches []entity.ThreatMatch, detectedAt time.Time) error
}
