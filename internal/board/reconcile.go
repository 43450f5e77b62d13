package board

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"teamboard/internal/model"
)

// Palette for newly created person categories.
var personColors = []string{
	"#f97316", "#eab308", "#22c55e", "#06b6d4", "#3b82f6", "#8b5cf6", "#ec4899",
}

// Reconcile removes duplicate person categories: for every distinct
// case-insensitive person name at most one category survives. Preference
// order within a duplicate group: the preferred category when it is a team
// member, then any team-member variant, then the preferred category, then
// the first occurrence. Non-person categories pass through untouched, and
// relative order is preserved. The pass is idempotent.
func Reconcile(categories []model.Category, preferID string) []model.Category {
	winners := make(map[string]string)
	for _, cat := range categories {
		if !cat.IsPerson {
			continue
		}
		key := strings.ToLower(cat.DisplayName())
		currentID, seen := winners[key]
		if !seen {
			winners[key] = cat.ID
			continue
		}
		current := findByID(categories, currentID)
		switch {
		case cat.ID == preferID && cat.IsTeamMember:
			winners[key] = cat.ID
		case current.ID == preferID && current.IsTeamMember:
			// keep current
		case cat.IsTeamMember && !current.IsTeamMember:
			winners[key] = cat.ID
		case cat.ID == preferID && !current.IsTeamMember:
			winners[key] = cat.ID
		}
	}

	out := make([]model.Category, 0, len(categories))
	for _, cat := range categories {
		if !cat.IsPerson {
			out = append(out, cat)
			continue
		}
		if winners[strings.ToLower(cat.DisplayName())] == cat.ID {
			out = append(out, cat)
		}
	}
	return out
}

func findByID(categories []model.Category, id string) model.Category {
	for _, cat := range categories {
		if cat.ID == id {
			return cat
		}
	}
	return model.Category{}
}

// EnsurePersonCategory returns a snapshot guaranteed to contain exactly one
// person category for the given name in the follow-up column. An existing
// match (any case, archived included) is reused; otherwise a new non-team
// category is created, colored from the palette and ordered after everything
// already present so it sorts last among non-team entries.
func EnsurePersonCategory(state *model.AppState, name string) (*model.AppState, model.Category) {
	if existing := FindPersonCategory(state, name); existing != nil {
		return state, *existing
	}

	maxOrder := 0
	for _, cat := range state.Categories {
		if cat.ColumnID == model.ColumnFollowUp && cat.Order > maxOrder {
			maxOrder = cat.Order
		}
	}

	created := model.Category{
		ID:         uuid.NewString(),
		ColumnID:   model.ColumnFollowUp,
		Name:       name,
		PersonName: name,
		IsPerson:   true,
		Color:      personColors[rand.Intn(len(personColors))],
		Order:      maxOrder + 1,
	}

	next := state.Clone()
	next.Categories = append(next.Categories, created)
	return next, created
}

// SetTeamMember flips the team-member flag on a category and re-runs
// deduplication, preferring the category just toggled. Tasks pointing at a
// category removed by the dedup are repointed at the surviving one for the
// same person. Returns false when the category id is unknown.
func SetTeamMember(state *model.AppState, categoryID string, isTeamMember bool) (*model.AppState, bool) {
	if state.FindCategory(categoryID) == nil {
		return state, false
	}

	next := state.Clone()
	next.FindCategory(categoryID).IsTeamMember = isTeamMember
	next.Categories = Reconcile(next.Categories, categoryID)
	repointTasks(next)
	return next, true
}

// repointTasks fixes task references left behind by a dedup: a task whose
// category vanished is moved to the surviving category of the same person,
// when one exists.
func repointTasks(state *model.AppState) {
	for i := range state.Tasks {
		task := &state.Tasks[i]
		if task.CategoryID == nil || state.FindCategory(*task.CategoryID) != nil {
			continue
		}
		if task.AssignedTo == nil {
			task.CategoryID = nil
			continue
		}
		if cat := FindPersonCategory(state, *task.AssignedTo); cat != nil {
			task.CategoryID = strPtr(cat.ID)
			task.AssignedToID = strPtr(cat.ID)
		} else {
			task.CategoryID = nil
			task.AssignedToID = nil
		}
	}
}

// RemovePersonCategory deletes a category. Tasks assigned to that person are
// bulk-deleted when deleteTasks is set, otherwise unassigned in place.
// Returns false when the category id is unknown.
func RemovePersonCategory(state *model.AppState, categoryID string, deleteTasks bool, now time.Time) (*model.AppState, bool) {
	target := state.FindCategory(categoryID)
	if target == nil {
		return state, false
	}
	personName := target.DisplayName()

	next := state.Clone()
	kept := next.Categories[:0:0]
	for _, cat := range next.Categories {
		if cat.ID != categoryID {
			kept = append(kept, cat)
		}
	}
	next.Categories = kept

	if deleteTasks {
		remaining := next.Tasks[:0:0]
		for _, task := range next.Tasks {
			if task.AssignedTo != nil && strings.EqualFold(*task.AssignedTo, personName) {
				continue
			}
			remaining = append(remaining, task)
		}
		next.Tasks = remaining
		return next, true
	}

	for i := range next.Tasks {
		task := &next.Tasks[i]
		if task.AssignedTo != nil && strings.EqualFold(*task.AssignedTo, personName) {
			task.AssignedTo = nil
			task.AssignedToID = nil
			task.CategoryID = nil
			task.UpdatedAt = now
		}
	}
	return next, true
}
