package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"teamboard/internal/board"
	"teamboard/internal/model"
	"teamboard/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T) *store.FileStore {
	t.Helper()
	return store.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
}

func TestFileStore_LoadSeedsMissingFile(t *testing.T) {
	// Arrange
	fs := newFileStore(t)

	// Act
	state, err := fs.Load(context.Background())

	// Assert: a fresh store starts with the default board
	require.NoError(t, err)
	assert.Len(t, state.Columns, 5)
	assert.NotNil(t, state.FindColumn(model.ColumnFollowUp))
	assert.Empty(t, state.Tasks)
	assert.Zero(t, state.Version)
}

func TestFileStore_SaveThenLoadRoundTrips(t *testing.T) {
	// Arrange
	fs := newFileStore(t)
	ctx := context.Background()
	state, err := fs.Load(ctx)
	require.NoError(t, err)

	created := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	state.Tasks = append(state.Tasks, board.NewTask("Write report", model.ColumnToday, created))
	taskID := state.Tasks[0].ID

	// Act
	require.NoError(t, fs.Save(ctx, state))
	loaded, err := fs.Load(ctx)

	// Assert
	require.NoError(t, err)
	task := loaded.FindTask(taskID)
	require.NotNil(t, task)
	assert.Equal(t, "Write report", task.Title)
	assert.True(t, task.CreatedAt.Equal(created))
	assert.Equal(t, int64(1), loaded.Version)
}

func TestFileStore_SaveRejectsStaleVersion(t *testing.T) {
	// Arrange: two clients load the same snapshot
	fs := newFileStore(t)
	ctx := context.Background()
	first, err := fs.Load(ctx)
	require.NoError(t, err)
	second := first.Clone()

	// Act: the first save wins, the second carries an outdated version
	require.NoError(t, fs.Save(ctx, first))
	err = fs.Save(ctx, second)

	// Assert
	assert.ErrorIs(t, err, store.ErrStaleState)
}

func TestFileStore_SequentialSavesBumpVersion(t *testing.T) {
	// Arrange
	fs := newFileStore(t)
	ctx := context.Background()
	state, err := fs.Load(ctx)
	require.NoError(t, err)

	// Act
	require.NoError(t, fs.Save(ctx, state))
	require.NoError(t, fs.Save(ctx, state))

	// Assert: Save mirrors the stored version back into the snapshot
	loaded, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded.Version)
}
