package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/user/safebrowse-service/pkg/utils"
)

const checkedURLPrefix = "checked:"

// CheckedURLRepoImpl provides a concrete implementation for the CheckedURLRepository interface using Redis.
type CheckedURLRepoImpl struct {
	client *redis.Client
}

// NewCheckedURLRepo creates a new instance of CheckedURLRepoImpl.
func NewCheckedURLRepo(client *redis.Client) *CheckedURLRepoImpl {
	return &CheckedURLRepoImpl{client: client}
}

// generateKey creates a consistent Redis key for a given URL by hashing it.
func (r *CheckedURLRepoImpl) generateKey(url string) string {
	return fmt.Sprintf("%s%s", checkedURLPrefix, utils.HashURL(url))
}

// MarkChecked marks a URL as checked by setting a key in Redis with a specific expiry time.
func (r *CheckedURLRepoImpl) MarkChecked(ctx context.Context, url string, expiry time.Duration) error {
	key := r.generateKey(url)
	// SETEX is atomic and sets the key with an expiry.
	return r.client.SetEx(ctx, key, "1", expiry).Err()
}

// IsChecked reports whether a URL has been checked recently by checking for the existence of its key.
func (r *CheckedURLRepoImpl) IsChecked(ctx context.Context, url string) (bool, error) {
	key := r.generateKey(url)
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return val == 1, nil
}
