package board_test

import (
	"testing"
	"time"

	"teamboard/internal/board"
	"teamboard/internal/model"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

// testState builds a seeded board with Alice as a team member in the
// follow-up column and one unplaced task in Today.
func testState(now time.Time) *model.AppState {
	state := board.SeedState(now)
	state.Categories = append(state.Categories, model.Category{
		ID:           "cat-alice",
		ColumnID:     model.ColumnFollowUp,
		Name:         "Alice",
		PersonName:   "Alice",
		IsPerson:     true,
		IsTeamMember: true,
		Order:        1,
	})
	state.Tasks = append(state.Tasks, model.Task{
		ID:        "t1",
		Title:     "Prepare report",
		Priority:  model.PriorityMedium,
		Status:    model.StatusToday,
		ColumnID:  model.ColumnToday,
		CreatedAt: now.Add(-90 * time.Minute),
		UpdatedAt: now.Add(-90 * time.Minute),
	})
	return state
}

func TestMoveTask_AssignToExistingPerson(t *testing.T) {
	// Arrange
	now := time.Now()
	state := testState(now)

	// Act
	next, ok := board.MoveTask(state, "t1", model.ColumnFollowUp, nil, board.SetTo("Alice"), now)

	// Assert
	assert.True(t, ok)
	task := next.FindTask("t1")
	assert.Equal(t, model.ColumnFollowUp, task.ColumnID)
	assert.Equal(t, "cat-alice", *task.CategoryID)
	assert.Equal(t, "Alice", *task.AssignedTo)
	assert.Equal(t, "cat-alice", *task.AssignedToID)
	assert.Equal(t, model.StatusTodo, task.Status)
}

func TestMoveTask_AssignOverridesCallerColumn(t *testing.T) {
	// Arrange
	now := time.Now()
	state := testState(now)

	// Act: the caller asks for Later, but Alice's category wins
	next, ok := board.MoveTask(state, "t1", model.ColumnLater, nil, board.SetTo("alice"), now)

	// Assert
	assert.True(t, ok)
	task := next.FindTask("t1")
	assert.Equal(t, model.ColumnFollowUp, task.ColumnID)
	assert.Equal(t, "cat-alice", *task.CategoryID)
}

func TestMoveTask_AssignUnknownPersonKeepsCallerColumn(t *testing.T) {
	// Arrange
	now := time.Now()
	state := testState(now)

	// Act
	next, ok := board.MoveTask(state, "t1", model.ColumnLater, nil, board.SetTo("Zed"), now)

	// Assert
	assert.True(t, ok)
	task := next.FindTask("t1")
	assert.Equal(t, model.ColumnLater, task.ColumnID)
	assert.Nil(t, task.CategoryID)
	assert.Equal(t, "Zed", *task.AssignedTo)
	assert.Nil(t, task.AssignedToID)
}

func TestMoveTask_UnassignFromFollowUpRelocates(t *testing.T) {
	// Arrange
	now := time.Now()
	state := testState(now)
	task := state.FindTask("t1")
	task.ColumnID = model.ColumnFollowUp
	task.CategoryID = strPtr("cat-alice")
	task.AssignedTo = strPtr("Alice")
	task.AssignedToID = strPtr("cat-alice")

	// Act
	next, ok := board.MoveTask(state, "t1", model.ColumnUncategorized, nil, board.Clear(), now)

	// Assert
	assert.True(t, ok)
	moved := next.FindTask("t1")
	assert.Equal(t, model.ColumnUncategorized, moved.ColumnID)
	assert.Nil(t, moved.CategoryID)
	assert.Nil(t, moved.AssignedTo)
	assert.Nil(t, moved.AssignedToID)
	assert.Equal(t, model.StatusTodo, moved.Status)
}

func TestMoveTask_UnassignByCategoryMembershipRelocates(t *testing.T) {
	// Arrange: column id says Today, but the category belongs to follow-up
	now := time.Now()
	state := testState(now)
	task := state.FindTask("t1")
	task.ColumnID = model.ColumnToday
	task.CategoryID = strPtr("cat-alice")
	task.AssignedTo = strPtr("Alice")

	// Act
	next, _ := board.MoveTask(state, "t1", model.ColumnLater, nil, board.Clear(), now)

	// Assert
	moved := next.FindTask("t1")
	assert.Equal(t, model.ColumnUncategorized, moved.ColumnID)
}

func TestMoveTask_UnassignOutsideFollowUpKeepsColumn(t *testing.T) {
	// Arrange
	now := time.Now()
	state := testState(now)
	task := state.FindTask("t1")
	task.AssignedTo = strPtr("Zed")

	// Act: the caller-supplied Later column must NOT be applied
	next, _ := board.MoveTask(state, "t1", model.ColumnLater, nil, board.Clear(), now)

	// Assert
	moved := next.FindTask("t1")
	assert.Equal(t, model.ColumnToday, moved.ColumnID)
	assert.Nil(t, moved.AssignedTo)
}

func TestMoveTask_DropOnDone(t *testing.T) {
	// Arrange: created 90 minutes ago, so both durations round up
	now := time.Now()
	state := testState(now)

	// Act
	next, ok := board.MoveTask(state, "t1", model.ColumnDone, nil, board.NoChange(), now)

	// Assert
	assert.True(t, ok)
	task := next.FindTask("t1")
	assert.Equal(t, model.StatusDone, task.Status)
	assert.NotNil(t, task.CompletedAt)
	assert.WithinDuration(t, now, *task.CompletedAt, time.Second)
	assert.Equal(t, 2, *task.DurationHours)
	assert.Equal(t, 1, *task.DurationDays)
	assert.GreaterOrEqual(t, *task.DurationDays, 0)
}

func TestMoveTask_CompletedAtSetOnce(t *testing.T) {
	// Arrange
	now := time.Now()
	state := testState(now)
	next, _ := board.MoveTask(state, "t1", model.ColumnDone, nil, board.NoChange(), now)
	first := *next.FindTask("t1").CompletedAt

	// Act: drop on done again, later
	again, _ := board.MoveTask(next, "t1", model.ColumnDone, nil, board.NoChange(), now.Add(time.Hour))

	// Assert
	assert.Equal(t, first, *again.FindTask("t1").CompletedAt)
}

func TestMoveTask_TodayAndLaterStatuses(t *testing.T) {
	now := time.Now()
	state := testState(now)

	next, _ := board.MoveTask(state, "t1", model.ColumnLater, nil, board.NoChange(), now)
	assert.Equal(t, model.StatusLater, next.FindTask("t1").Status)

	next, _ = board.MoveTask(next, "t1", model.ColumnToday, nil, board.NoChange(), now)
	assert.Equal(t, model.StatusToday, next.FindTask("t1").Status)
}

func TestMoveTask_ExplicitCategoryTarget(t *testing.T) {
	// Arrange
	now := time.Now()
	state := testState(now)
	state.Categories = append(state.Categories, model.Category{
		ID:       "cat-comms",
		ColumnID: model.ColumnToday,
		Name:     "Comms",
	})

	// Act
	next, _ := board.MoveTask(state, "t1", model.ColumnToday, strPtr("cat-comms"), board.NoChange(), now)

	// Assert
	task := next.FindTask("t1")
	assert.Equal(t, model.ColumnToday, task.ColumnID)
	assert.Equal(t, "cat-comms", *task.CategoryID)
}

func TestMoveTask_UnknownTaskIsNoop(t *testing.T) {
	// Arrange
	now := time.Now()
	state := testState(now)

	// Act
	next, ok := board.MoveTask(state, "missing", model.ColumnDone, nil, board.NoChange(), now)

	// Assert
	assert.False(t, ok)
	assert.Same(t, state, next)
}

func TestMoveTask_RefreshesUpdatedAt(t *testing.T) {
	// Arrange
	now := time.Now()
	state := testState(now)

	// Act
	next, _ := board.MoveTask(state, "t1", model.ColumnLater, nil, board.NoChange(), now)

	// Assert
	assert.Equal(t, now, next.FindTask("t1").UpdatedAt)
}

func TestMoveTask_DoesNotMutateInput(t *testing.T) {
	// Arrange
	now := time.Now()
	state := testState(now)

	// Act
	_, _ = board.MoveTask(state, "t1", model.ColumnDone, nil, board.SetTo("Alice"), now)

	// Assert: the input snapshot is untouched
	task := state.FindTask("t1")
	assert.Equal(t, model.ColumnToday, task.ColumnID)
	assert.Nil(t, task.AssignedTo)
	assert.Nil(t, task.CompletedAt)
}

func TestMoveTask_AssignThenUnassignScenario(t *testing.T) {
	// Arrange
	now := time.Now()
	state := testState(now)

	// Act
	assigned, _ := board.MoveTask(state, "t1", model.ColumnFollowUp, nil, board.SetTo("Alice"), now)
	unassigned, _ := board.MoveTask(assigned, "t1", model.ColumnUncategorized, nil, board.Clear(), now)

	// Assert
	task := unassigned.FindTask("t1")
	assert.Equal(t, model.ColumnUncategorized, task.ColumnID)
	assert.Nil(t, task.CategoryID)
	assert.Nil(t, task.AssignedTo)
	assert.Equal(t, model.StatusTodo, task.Status)
}
