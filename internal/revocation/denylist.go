package revocation

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Denylist records logged-out token IDs until their natural expiry. Without
// a Redis URL it is disabled and logout falls back to client-side discard.
type Denylist struct {
	client *redis.Client
}

func New(redisURL string) *Denylist {
	if redisURL == "" {
		return &Denylist{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, token revocation disabled: %v", err)
		return &Denylist{}
	}

	return &Denylist{client: redis.NewClient(opts)}
}

func (d *Denylist) Enabled() bool {
	return d != nil && d.client != nil
}

func (d *Denylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if !d.Enabled() || jti == "" || ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, key(jti), "1", ttl).Err()
}

func (d *Denylist) IsRevoked(ctx context.Context, jti string) bool {
	if !d.Enabled() || jti == "" {
		return false
	}

	n, err := d.client.Exists(ctx, key(jti)).Result()
	if err != nil {
		// Redis being down must not lock every user out.
		log.Printf("revocation check failed: %v", err)
		return false
	}
	return n > 0
}

func key(jti string) string {
	return "revoked:" + jti
}
