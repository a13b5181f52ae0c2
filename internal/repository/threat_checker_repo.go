package repository

import (
	"context"

	"github.com/user/safebrowse-service/internal/entity"
)

// ThreatCheckerRepository defines the contract for the threat-matching API call.
type ThreatCheckerRepository interface {
	// FindThreats checks one batch of URLs and returns the reported matches.
	// A nil error with no matches is a clean scan. A non-nil error means the
	// check could not be completed; callers degrade it to "no matches".
	FindThreats(ctx context.Context, urls []string) ([]entity.ThreatMatch, error)
}
