// Package cache provides the fetch cache used by the HTTP collection source.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-value cache with per-entry TTL
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a collection URL
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "textsieve:v1:" + hex.EncodeToString(hash[:])
}
