package model

import "time"

// Check-in ratings and types accepted by the integration surface.
const (
	RatingExcellent = "excellent"
	RatingGood      = "good"
	RatingFair      = "fair"
	RatingPoor      = "poor"

	CheckInMorale      = "morale"
	CheckInPerformance = "performance"
)

// Goal statuses.
const (
	GoalNotStarted = "not-started"
	GoalInProgress = "in-progress"
	GoalCompleted  = "completed"
	GoalOnHold     = "on-hold"
)

// TeamMemberDetails holds the qualitative record kept per team member:
// current morale/performance, check-in history, 1:1 notes, red flags and
// growth goals. The JSON-array fields are stored as serialized text columns.
type TeamMemberDetails struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Role string `json:"role,omitempty"`

	Morale      string `json:"morale,omitempty"`
	Performance string `json:"performance,omitempty"`

	CheckIns  CheckIns  `gorm:"type:text" json:"checkIns,omitempty"`
	OneOnOnes OneOnOnes `gorm:"type:text" json:"oneOnOnes,omitempty"`
	RedFlags  RedFlags  `gorm:"type:text" json:"redFlags,omitempty"`
	Goals     Goals     `gorm:"type:text" json:"goals,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CheckIn struct {
	ID     string    `json:"id"`
	Type   string    `json:"type"`
	Rating string    `json:"rating"`
	Notes  string    `json:"notes,omitempty"`
	Date   time.Time `json:"date"`
}

type OneOnOne struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	DiscussionNotes string    `json:"discussionNotes"`
	FollowUps       string    `json:"followUps,omitempty"`
	Decisions       string    `json:"decisions,omitempty"`
}

// RedFlag is the structured form; legacy records were plain strings and are
// normalized on read.
type RedFlag struct {
	ID         string     `json:"id"`
	Flag       string     `json:"flag"`
	AddedAt    time.Time  `json:"addedAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

type Goal struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Status      string      `json:"status"`
	Notes       string      `json:"notes,omitempty"`
	Milestones  []Milestone `json:"milestones,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
}

// RoleGrowthGoal is a per-role template rating scale shown in the team view.
type RoleGrowthGoal struct {
	ID     string `json:"id"`
	Role   string `json:"role"`
	Goal   string `json:"goal"`
	Rating int    `json:"rating,omitempty"`
}
