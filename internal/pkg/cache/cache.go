package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"
)

// Store is the key-value backend behind the facade. Implementations must
// treat a missing key as (nil, false, nil), not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// Facade wraps a Store with fail-open semantics: a broken or unreachable
// backend degrades to direct computation and never surfaces as an error.
type Facade struct {
	store Store
}

func NewFacade(store Store) *Facade {
	return &Facade{store: store}
}

// GetOrCompute returns the cached value under key if present and unexpired,
// otherwise invokes compute, stores the result with the given TTL and returns
// it. Store failures on either path are absorbed.
func GetOrCompute[T any](ctx context.Context, f *Facade, key string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	raw, found, err := f.store.Get(ctx, key)
	if err != nil {
		slog.Warn("cache get failed, computing directly", "key", key, "error", err)
	} else if found {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		slog.Warn("cache entry not decodable, computing directly", "key", key)
	}

	value, err := compute(ctx)
	if err != nil {
		return zero, err
	}

	if raw, err := json.Marshal(value); err == nil {
		if err := f.store.Set(ctx, key, raw, ttl); err != nil {
			slog.Warn("cache set failed", "key", key, "error", err)
		}
	}

	return value, nil
}

// Invalidate removes all entries under prefix. Best-effort: failures are
// logged, never returned, since stale entries age out with their TTL anyway.
func (f *Facade) Invalidate(ctx context.Context, prefix string) {
	if err := f.store.DeleteByPrefix(ctx, prefix); err != nil {
		slog.Warn("cache invalidation failed", "prefix", prefix, "error", err)
	}
}

// Key builds a deterministic cache key from a prefix and filter parameters.
// Nil/empty params collapse to the bare prefix; otherwise the sorted params
// are hashed so equivalent filters share an entry.
func Key(prefix string, params map[string]string) string {
	filtered := make(map[string]string, len(params))
	for k, v := range params {
		if v != "" {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return prefix
	}

	keys := make([]string, 0, len(filtered))
	for k := range filtered {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(filtered[k])
		sb.WriteByte('&')
	}

	sum := md5.Sum([]byte(sb.String()))
	return prefix + ":" + hex.EncodeToString(sum[:])[:8]
}
