package model

import "time"

type Project struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description,omitempty"`
	Client      string     `json:"client,omitempty"`
	Status      string     `gorm:"default:active" json:"status"`
	Milestones  Milestones `gorm:"type:text" json:"milestones,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Milestone struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Completed   bool       `json:"completed,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
