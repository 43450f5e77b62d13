package board

import (
	"strings"
	"time"

	"teamboard/internal/model"
)

// MoveTask computes the next snapshot after a task is dropped on a new
// location, optionally changing its assignee at the same time. It returns
// the new snapshot and whether the task was found; an unknown task id leaves
// the snapshot untouched.
//
// The rules, in order:
//   - Assigning to a person forces the task into that person's category in
//     the follow-up column, overriding the caller-supplied column. If no
//     category matches the name, the caller's column is kept and no category
//     is set.
//   - Unassigning clears the assignee and category. A task that was inside
//     the follow-up column (by column id or by category membership) is
//     relocated to the uncategorized column; any other task keeps its
//     current column, not the caller-supplied one.
//   - Otherwise the caller's column, and category when supplied, are applied
//     directly.
//
// Status is derived from the final column after those rules have run, and
// updatedAt is always refreshed.
func MoveTask(state *model.AppState, taskID, targetColumnID string, targetCategoryID *string, change AssigneeChange, now time.Time) (*model.AppState, bool) {
	if state.FindTask(taskID) == nil {
		return state, false
	}

	next := state.Clone()
	task := next.FindTask(taskID)

	switch {
	case change.IsSet():
		task.AssignedTo = strPtr(change.Name())
		if cat := FindPersonCategory(next, change.Name()); cat != nil {
			task.CategoryID = strPtr(cat.ID)
			task.AssignedToID = strPtr(cat.ID)
			task.ColumnID = model.ColumnFollowUp
		} else {
			task.CategoryID = nil
			task.AssignedToID = nil
			task.ColumnID = targetColumnID
		}

	case change.IsClear():
		inFollowUp := task.ColumnID == model.ColumnFollowUp
		if !inFollowUp && task.CategoryID != nil {
			if cat := next.FindCategory(*task.CategoryID); cat != nil && cat.ColumnID == model.ColumnFollowUp {
				inFollowUp = true
			}
		}
		task.AssignedTo = nil
		task.AssignedToID = nil
		task.CategoryID = nil
		if inFollowUp {
			task.ColumnID = model.ColumnUncategorized
		}

	default:
		task.ColumnID = targetColumnID
		if targetCategoryID != nil {
			task.CategoryID = strPtr(*targetCategoryID)
		}
	}

	applyStatus(task, now)
	task.UpdatedAt = now
	return next, true
}

// applyStatus derives status from the task's final column and stamps
// completion bookkeeping the first time the task lands in the done column.
func applyStatus(task *model.Task, now time.Time) {
	switch task.ColumnID {
	case model.ColumnDone:
		task.Status = model.StatusDone
		if task.CompletedAt == nil {
			completed := now
			task.CompletedAt = &completed
			elapsed := completed.Sub(task.CreatedAt)
			days := ceilDiv(elapsed, 24*time.Hour)
			hours := ceilDiv(elapsed, time.Hour)
			task.DurationDays = &days
			task.DurationHours = &hours
		}
	case model.ColumnToday:
		task.Status = model.StatusToday
	case model.ColumnLater:
		task.Status = model.StatusLater
	default:
		task.Status = model.StatusTodo
	}
}

func ceilDiv(d, unit time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + unit - 1) / unit)
}

// FindPersonCategory resolves a name to a person category in the follow-up
// column, matching personName (or name as fallback) case-insensitively.
func FindPersonCategory(state *model.AppState, name string) *model.Category {
	for i := range state.Categories {
		cat := &state.Categories[i]
		if !cat.IsPerson || cat.ColumnID != model.ColumnFollowUp {
			continue
		}
		if strings.EqualFold(cat.DisplayName(), name) {
			return cat
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }
