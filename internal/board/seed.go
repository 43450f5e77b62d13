package board

import (
	"time"

	"github.com/google/uuid"

	"teamboard/internal/model"
)

// SeedState is the default snapshot a fresh install starts from: the four
// board columns plus the uncategorized inbox.
func SeedState(now time.Time) *model.AppState {
	return &model.AppState{
		Version: 0,
		Columns: []model.Column{
			{ID: model.ColumnToday, Title: "Today", Position: 0},
			{ID: model.ColumnFollowUp, Title: "Follow Up", Position: 1, AllowsDynamicCategories: true},
			{ID: model.ColumnLater, Title: "Later", Position: 2},
			{ID: model.ColumnDone, Title: "Done", Position: 3},
			{ID: model.ColumnUncategorized, Title: "Uncategorized", Position: 4},
		},
		Settings: model.Settings{
			Theme:            "light",
			WeekStart:        "monday",
			ShowDoneColumn:   true,
			DefaultColumnID:  model.ColumnUncategorized,
			FollowUpColumnID: model.ColumnFollowUp,
		},
	}
}

// NewTask builds a task placed in the given column with defaults applied.
func NewTask(title, columnID string, now time.Time) model.Task {
	task := model.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Priority:  model.PriorityMedium,
		ColumnID:  columnID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyStatus(&task, now)
	return task
}
