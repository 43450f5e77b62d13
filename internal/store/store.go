package store

import (
	"context"
	"errors"

	"teamboard/internal/model"
)

// ErrStaleState is returned when a snapshot being saved was derived from an
// older version than the one currently stored, i.e. another session wrote in
// between.
var ErrStaleState = errors.New("state snapshot is stale")

// Store persists the whole AppState as one unit. Load returns a seeded
// default when nothing is stored yet. Save applies an optimistic version
// check: the snapshot's Version must equal the stored version, and the
// stored copy is written with Version+1 (mirrored back onto the snapshot).
type Store interface {
	Load(ctx context.Context) (*model.AppState, error)
	Save(ctx context.Context, state *model.AppState) error
}
