package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/transferwatch/internal/statepersist"

	"github.com/redis/go-redis/v9"
)

// corruptKey returns the key an undecodable snapshot is moved to.
//
// Format: "<key>:corrupt"
func corruptKey(key string) string {
	return fmt.Sprintf("%s:corrupt", key)
}

// SaveSnapshot stores state as one JSON document with SET and no expiration.
// SET replaces the value atomically, so readers never see a partial document.
func (c *client) SaveSnapshot(ctx context.Context, state statepersist.DurableState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	return c.conn.Set(ctx, c.snapshotKey, data, 0).Err()
}

// LoadSnapshot reads the snapshot document.
//
// A missing key yields statepersist.ErrNoSnapshot and a value that cannot be
// decoded yields statepersist.ErrCorruptSnapshot.
func (c *client) LoadSnapshot(ctx context.Context) (statepersist.DurableState, error) {
	data, err := c.conn.Get(ctx, c.snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = statepersist.ErrNoSnapshot
		}

		return statepersist.DurableState{}, err
	}

	var state statepersist.DurableState
	if err := json.Unmarshal(data, &state); err != nil {
		return statepersist.DurableState{}, fmt.Errorf("%w: key %s: %w", statepersist.ErrCorruptSnapshot, c.snapshotKey, err)
	}

	return state, nil
}

// QuarantineSnapshot renames the snapshot key to corruptKey(key), replacing
// an older quarantined value. A missing key is not an error.
func (c *client) QuarantineSnapshot(ctx context.Context) error {
	err := c.conn.Rename(ctx, c.snapshotKey, corruptKey(c.snapshotKey)).Err()
	if err != nil && !isNoSuchKey(err) {
		return fmt.Errorf("quarantining snapshot: %w", err)
	}

	return nil
}

// isNoSuchKey reports whether err is the RENAME reply for a missing source key.
func isNoSuchKey(err error) bool {
	return strings.Contains(err.Error(), "no such key")
}

// Compile-time assertion to ensure client implements the Storage interface.
var _ statepersist.Storage = new(client)
