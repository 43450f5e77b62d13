package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"teamboard/internal/board"
	"teamboard/internal/model"
)

// FileStore keeps the snapshot in a single JSON file. It is the server-side
// stand-in for the browser local-storage adapter: synchronous, whole-state,
// dates round-tripping as RFC 3339 strings.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (*model.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() (*model.AppState, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return board.SeedState(time.Now()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	var state model.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}
	return &state, nil
}

func (s *FileStore) Save(_ context.Context, state *model.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.load()
	if err != nil {
		return err
	}
	if state.Version != stored.Version {
		return ErrStaleState
	}
	state.Version = stored.Version + 1

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	// Write-then-rename so a crash mid-write never truncates the stored state.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
