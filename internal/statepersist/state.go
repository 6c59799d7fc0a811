package statepersist

import (
	"context"
	"errors"
)

var (
	// ErrNoSnapshot is returned by Storage.LoadSnapshot when nothing has been
	// saved yet. It marks a fresh install, not a failure.
	ErrNoSnapshot = errors.New("no snapshot found")

	// ErrCorruptSnapshot is returned by Storage.LoadSnapshot when a snapshot
	// exists but cannot be decoded. The document stays in place until
	// Storage.QuarantineSnapshot is called.
	ErrCorruptSnapshot = errors.New("snapshot is corrupt")
)

// WatchDescriptor is the durable form of a transfer watch. Addresses are
// kept as the 0x-prefixed hex text they were registered with; the live
// cancellation handle is never persisted.
type WatchDescriptor struct {
	Owner        int64  `json:"owner"`
	ToAddress    string `json:"toAddress"`
	TokenAddress string `json:"tokenAddress"`
	ToAlias      string `json:"toAlias,omitempty"`
}

// DurableState is the single document written to storage. It holds the
// allow-list and every watch in registry order.
type DurableState struct {
	AllowList []int64           `json:"allowList"`
	Watches   []WatchDescriptor `json:"watches"`
}

// Storage reads and writes the snapshot document.
type Storage interface {
	// SaveSnapshot replaces the stored document with state. A reader must
	// observe either the previous document or the new one, never a mix.
	SaveSnapshot(ctx context.Context, state DurableState) error

	// LoadSnapshot returns the stored document.
	//
	// It returns ErrNoSnapshot when nothing was saved and ErrCorruptSnapshot
	// when the document cannot be decoded. Loading never moves the document.
	LoadSnapshot(ctx context.Context) (DurableState, error)

	// QuarantineSnapshot moves the stored document aside so the next save
	// does not overwrite it. A missing document is not an error.
	QuarantineSnapshot(ctx context.Context) error
}
