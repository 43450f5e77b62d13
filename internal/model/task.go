package model

import (
	"time"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Task statuses. Status is derived from placement: moving a task into a
// column rewrites its status, it is not set independently in the normal flow.
const (
	StatusTodo          = "todo"
	StatusInProgress    = "in-progress"
	StatusBlocked       = "blocked"
	StatusDone          = "done"
	StatusUncategorized = "uncategorized"
	StatusToday         = "today"
	StatusDelegated     = "delegated"
	StatusLater         = "later"
	StatusCompleted     = "completed"
	StatusMonday        = "monday"
	StatusTuesday       = "tuesday"
	StatusWednesday     = "wednesday"
	StatusThursday      = "thursday"
	StatusFriday        = "friday"
	StatusSaturday      = "saturday"
	StatusSunday        = "sunday"
)

type Task struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `gorm:"not null;default:medium" json:"priority"`
	Status      string `gorm:"not null;default:todo" json:"status"`

	ColumnID   string  `gorm:"index" json:"columnId"`
	CategoryID *string `gorm:"index" json:"categoryId,omitempty"`

	// AssignedTo is the display name; AssignedToID is the stable id of the
	// person category it resolved to. Both are set and cleared together.
	AssignedTo   *string `json:"assignedTo,omitempty"`
	AssignedToID *string `gorm:"index" json:"assignedToId,omitempty"`

	ProjectID *string    `gorm:"index" json:"projectId,omitempty"`
	Client    string     `json:"client,omitempty"`
	Tags      StringList `gorm:"type:text" json:"tags,omitempty"`

	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	DurationDays  *int       `json:"durationDays,omitempty"`
	DurationHours *int       `json:"durationHours,omitempty"`
}
