// Package cache memoizes translation results so repeated submissions of
// the same text do not trigger repeated network calls.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration)
	Clear()
}

// Key generates a cache key from raw submission text
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "suggestbox:v1:" + hex.EncodeToString(hash[:])
}
