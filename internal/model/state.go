package model

import "time"

type Settings struct {
	Theme            string `json:"theme,omitempty"`
	WeekStart        string `json:"weekStart,omitempty"`
	ShowDoneColumn   bool   `json:"showDoneColumn,omitempty"`
	DefaultColumnID  string `json:"defaultColumnId,omitempty"`
	FollowUpColumnID string `json:"followUpColumnId,omitempty"`
}

type UserStats struct {
	TasksCompleted int        `json:"tasksCompleted"`
	CurrentStreak  int        `json:"currentStreak"`
	LongestStreak  int        `json:"longestStreak"`
	LastCompleted  *time.Time `json:"lastCompleted,omitempty"`
}

type Achievement struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

// AppState is the aggregate root. It is always read and written as a whole:
// every mutation produces a new snapshot which is then persisted. Version
// increases monotonically on save and lets the stores reject stale
// overwrites from a concurrent session.
type AppState struct {
	Version         int64               `json:"version"`
	Columns         []Column            `json:"columns"`
	Categories      []Category          `json:"categories"`
	Tasks           []Task              `json:"tasks"`
	Projects        []Project           `json:"projects"`
	Achievements    []Achievement       `json:"achievements,omitempty"`
	UserStats       UserStats           `json:"userStats"`
	Settings        Settings            `json:"settings"`
	TeamMembers     []TeamMemberDetails `json:"teamMemberDetails,omitempty"`
	RoleGrowthGoals []RoleGrowthGoal    `json:"roleGrowthGoals,omitempty"`
}

// Clone deep-copies the snapshot so transition functions can stay pure.
func (s *AppState) Clone() *AppState {
	out := *s
	out.Columns = append([]Column(nil), s.Columns...)
	out.Categories = append([]Category(nil), s.Categories...)
	out.Tasks = append([]Task(nil), s.Tasks...)
	out.Projects = append([]Project(nil), s.Projects...)
	out.Achievements = append([]Achievement(nil), s.Achievements...)
	out.TeamMembers = append([]TeamMemberDetails(nil), s.TeamMembers...)
	out.RoleGrowthGoals = append([]RoleGrowthGoal(nil), s.RoleGrowthGoals...)
	return &out
}

// FindTask returns a pointer into the snapshot's task slice, or nil.
func (s *AppState) FindTask(id string) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// FindColumn returns a pointer into the snapshot's column slice, or nil.
func (s *AppState) FindColumn(id string) *Column {
	for i := range s.Columns {
		if s.Columns[i].ID == id {
			return &s.Columns[i]
		}
	}
	return nil
}

// FindCategory returns a pointer into the snapshot's category slice, or nil.
func (s *AppState) FindCategory(id string) *Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}
