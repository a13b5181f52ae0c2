package repository

import (
	"context"
	"time"
)

// CheckedURLRepository defines the interface for deduplication of recently checked URLs.
type CheckedURLRepository interface {
	// MarkChecked marks a URL as checked with a specific expiry time.
	MarkChecked(ctx context.Context, url string, expiry time.Duration) error
	// IsChecked reports whether a URL has been checked recently.
	IsChecked(ctx context.Context, url string) (bool, error)
}
