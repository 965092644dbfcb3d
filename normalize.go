package routecheck

import (
	"fmt"
	"strings"
)

// DefaultNormalizeCacheSize bounds the normalization memo cache.
const DefaultNormalizeCacheSize = 2000

// Normalizer produces canonical strings for path templates.
// Normalization is pure: the same (path, level, preserveConstraints)
// triple always yields the same output, which is what makes the memo
// cache sound.
type Normalizer struct {
	cache *Cache[string, string]
}

// NewNormalizer returns a Normalizer with a memo cache of the given
// capacity; zero or negative sizes fall back to the default.
func NewNormalizer(cacheSize int) *Normalizer {
	if cacheSize <= 0 {
		cacheSize = DefaultNormalizeCacheSize
	}
	return &Normalizer{cache: NewCache[string, string](cacheSize)}
}

// Normalize canonicalizes a path template.
//
// Level 0 only ensures a leading slash and bypasses the cache. Level 1
// and above replace every dynamic segment with its canonical token, so
// "/users/:id" and "/users/:userId" normalize identically. Constraint
// text never survives normalization regardless of preserveConstraints;
// the flag participates in the cache key only.
func (n *Normalizer) Normalize(rawPath string, level int, preserveConstraints bool) string {
	if level <= 0 {
		return ensureLeadingSlash(rawPath)
	}

	key := fmt.Sprintf("%s|%d|%t", rawPath, level, preserveConstraints)
	if cached, ok := n.cache.Get(key); ok {
		return cached
	}

	segments := ParseSegments(rawPath)
	if len(segments) == 0 {
		n.cache.Set(key, "/")
		return "/"
	}

	parts := make([]string, len(segments))
	for i, segment := range segments {
		parts[i] = segment.Normalized
	}

	normalized := "/" + strings.Join(parts, "/")
	n.cache.Set(key, normalized)
	return normalized
}

// CacheStats exposes the memo cache counters for diagnostics.
func (n *Normalizer) CacheStats() CacheStats {
	return n.cache.Stats()
}

func ensureLeadingSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
