// Package cache stores decoded corpora so repeated evaluations skip parsing.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey derives a file-safe cache key from an identity string
func CacheKey(identity string) string {
	hash := sha256.Sum256([]byte(identity))
	return "precedence-v1-" + hex.EncodeToString(hash[:])
}
