package board

import (
	"sort"
	"strings"

	"teamboard/internal/model"
)

// IsActive is the one predicate for "still in play": not done by status and
// not parked in the done column. List, calendar and client views all filter
// through this.
func IsActive(task model.Task) bool {
	return task.Status != model.StatusDone &&
		task.Status != model.StatusCompleted &&
		task.ColumnID != model.ColumnDone
}

// ColumnCategories returns the categories belonging to a column, sorted.
func ColumnCategories(state *model.AppState, columnID string) []model.Category {
	var out []model.Category
	for _, cat := range state.Categories {
		if cat.ColumnID == columnID {
			out = append(out, cat)
		}
	}
	return SortCategories(out)
}

// TasksInColumn returns the tasks shown in a column's flat view. A column
// without categories holds tasks directly, so a stray categoryId excludes a
// task from the flat view; a column with categories returns everything it
// contains and lets callers group by category.
func TasksInColumn(state *model.AppState, columnID string) []model.Task {
	hasCategories := false
	for _, cat := range state.Categories {
		if cat.ColumnID == columnID {
			hasCategories = true
			break
		}
	}
	var out []model.Task
	for _, task := range state.Tasks {
		if task.ColumnID != columnID {
			continue
		}
		if !hasCategories && task.CategoryID != nil {
			continue
		}
		out = append(out, task)
	}
	return out
}

// TasksInCategory returns tasks matching both the column and the category.
func TasksInCategory(state *model.AppState, columnID, categoryID string) []model.Task {
	var out []model.Task
	for _, task := range state.Tasks {
		if task.ColumnID == columnID && task.CategoryID != nil && *task.CategoryID == categoryID {
			out = append(out, task)
		}
	}
	return out
}

// OrphanedInColumn returns tasks whose categoryId matches none of the
// column's categories. They are surfaced in a catch-all bucket rather than
// silently hidden.
func OrphanedInColumn(state *model.AppState, columnID string) []model.Task {
	ids := make(map[string]bool)
	for _, cat := range state.Categories {
		if cat.ColumnID == columnID {
			ids[cat.ID] = true
		}
	}
	var out []model.Task
	for _, task := range state.Tasks {
		if task.ColumnID == columnID && task.CategoryID != nil && !ids[*task.CategoryID] {
			out = append(out, task)
		}
	}
	return out
}

// VisiblePersonCategories filters the follow-up column's person categories
// down to the ones worth showing: not archived, and holding at least one
// active task assigned to that person. Empty slots disappear until someone
// is assigned again.
func VisiblePersonCategories(state *model.AppState) []model.Category {
	var out []model.Category
	for _, cat := range state.Categories {
		if cat.ColumnID != model.ColumnFollowUp || !cat.IsPerson || cat.Archived {
			continue
		}
		if hasActiveAssignment(state, cat.DisplayName()) {
			out = append(out, cat)
		}
	}
	return SortCategories(out)
}

func hasActiveAssignment(state *model.AppState, personName string) bool {
	for _, task := range state.Tasks {
		if task.AssignedTo != nil && strings.EqualFold(*task.AssignedTo, personName) && IsActive(task) {
			return true
		}
	}
	return false
}

// SortCategories orders team members first, then by order, then by name.
func SortCategories(categories []model.Category) []model.Category {
	out := append([]model.Category(nil), categories...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsTeamMember != out[j].IsTeamMember {
			return out[i].IsTeamMember
		}
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].DisplayName() < out[j].DisplayName()
	})
	return out
}
