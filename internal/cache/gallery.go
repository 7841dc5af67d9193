// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// gallery.go provides a Valkey-backed cache for public gallery responses.
// The public payload is rebuilt from the document and heat stores on every
// miss; caching it lets repeated storefront loads skip both queries.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// galleryKeyPrefix is the Valkey key prefix for cached gallery responses.
	galleryKeyPrefix = "gallery:"

	// DefaultGalleryTTL is how long a cached response stays valid. Writes
	// invalidate eagerly, so the TTL only bounds staleness after a missed
	// invalidation.
	DefaultGalleryTTL = 5 * time.Minute
)

// GalleryCache manages cached public gallery responses in Valkey.
type GalleryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGalleryCache creates a new gallery cache backed by the given Valkey client.
func NewGalleryCache(client *redis.Client, ttl time.Duration) *GalleryCache {
	if ttl == 0 {
		ttl = DefaultGalleryTTL
	}
	return &GalleryCache{client: client, ttl: ttl}
}

// Get retrieves a cached response body. Returns false on miss.
func (gc *GalleryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := gc.client.Get(ctx, galleryKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("gallery cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("gallery cache hit", "key", key)
	return val, true
}

// Set stores a response body under a key with the configured TTL.
func (gc *GalleryCache) Set(ctx context.Context, key string, body []byte) {
	if err := gc.client.Set(ctx, galleryKeyPrefix+key, body, gc.ttl).Err(); err != nil {
		slog.Warn("gallery cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached gallery response by scanning for the
// prefix. Called after any catalog save or heat increment, since both
// change what every listing returns.
func (gc *GalleryCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := gc.client.Scan(ctx, cursor, galleryKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("gallery cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := gc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("gallery cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Debug("gallery cache cleared", "deleted", deleted)
	}
}

// PayloadKey returns the cache key for the full storefront payload.
func PayloadKey() string {
	return "_payload"
}
