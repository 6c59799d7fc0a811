// Package redis provides Redis-backed storage for the relay snapshot.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

// defaultSnapshotKey is used when no key is configured.
const defaultSnapshotKey = "transferwatch:state"

// client wraps a go-redis connection and the key the snapshot lives under.
type client struct {
	conn        *redis.Client
	snapshotKey string
}

// Option configures the client.
type Option func(*client)

// WithSnapshotKey sets the key holding the snapshot document.
// Default: "transferwatch:state".
func WithSnapshotKey(key string) Option {
	return func(c *client) {
		c.snapshotKey = key
	}
}

// Close releases the underlying connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and verifies the connection with PING.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		conn.Close()
		return nil, err
	}

	c := &client{
		conn:        conn,
		snapshotKey: defaultSnapshotKey,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
