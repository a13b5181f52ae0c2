package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashURL creates a SHA256 hash of a URL string.
// This is useful for creating consistent, safe keys for Redis.
func HashURL(rawURL string) string {
	h := sha256.New()
	h.Write([]byte(rawURL))
	return hex.EncodeToString(h.Sum(nil))
}

// NormalizeURL turns a bare domain into a fully qualified URL by
// prefixing "http://". Entries that already carry an http:// or
// https:// scheme are returned unchanged.
func NormalizeURL(entry string) string {
	if strings.HasPrefix(entry, "http://") || strings.HasPrefix(entry, "https://") {
		return entry
	}
	return "http://" + entry
}
