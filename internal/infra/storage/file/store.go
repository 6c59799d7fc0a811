// Package file stores the relay snapshot as a single JSON document on the
// local filesystem.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gabapcia/transferwatch/internal/statepersist"
)

// Suffixes of the sibling files kept next to the snapshot.
const (
	tmpSuffix     = ".tmp"
	corruptSuffix = ".corrupt"
)

// store implements statepersist.Storage over one file. Writes go to a
// temporary sibling that is fsynced and renamed into place, so a reader
// sees either the previous document or the new one.
type store struct {
	mu   sync.Mutex
	path string
}

// Compile-time assertion to ensure store implements the Storage interface.
var _ statepersist.Storage = (*store)(nil)

// NewStore returns a Storage writing to path. The parent directory must exist.
func NewStore(path string) *store {
	return &store{
		path: path,
	}
}

// SaveSnapshot implements statepersist.Storage.
func (s *store) SaveSnapshot(_ context.Context, state statepersist.DurableState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	tmpPath := s.path + tmpSuffix

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating temporary snapshot file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temporary snapshot file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("syncing temporary snapshot file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temporary snapshot file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming snapshot file into place: %w", err)
	}

	// Make the rename itself durable.
	if dir, err := os.Open(filepath.Dir(s.path)); err == nil {
		_ = dir.Sync()
		dir.Close()
	}

	return nil
}

// LoadSnapshot implements statepersist.Storage.
func (s *store) LoadSnapshot(_ context.Context) (statepersist.DurableState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return statepersist.DurableState{}, statepersist.ErrNoSnapshot
		}
		return statepersist.DurableState{}, err
	}

	var state statepersist.DurableState
	if err := json.Unmarshal(data, &state); err != nil {
		return statepersist.DurableState{}, fmt.Errorf("%w: %s: %w", statepersist.ErrCorruptSnapshot, s.path, err)
	}

	return state, nil
}

// QuarantineSnapshot implements statepersist.Storage.
//
// The document is moved to "<path>.corrupt", replacing an older one.
func (s *store) QuarantineSnapshot(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Rename(s.path, s.path+corruptSuffix); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("quarantining snapshot: %w", err)
	}

	return nil
}
