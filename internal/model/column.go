package model

// Well-known column ids seeded into every new board.
const (
	ColumnToday         = "col-today"
	ColumnFollowUp      = "col-followup"
	ColumnLater         = "col-later"
	ColumnDone          = "col-done"
	ColumnUncategorized = "col-uncategorized"
)

type Column struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Position int    `gorm:"not null" json:"position"`

	// AllowsDynamicCategories marks the follow-up column, whose categories
	// are person entries managed by the assignment machinery.
	AllowsDynamicCategories bool `json:"allowsDynamicCategories,omitempty"`
}

type Category struct {
	ID       string `gorm:"primaryKey" json:"id"`
	ColumnID string `gorm:"index;not null" json:"columnId"`
	Name     string `gorm:"not null" json:"name"`
	Color    string `json:"color,omitempty"`
	Order    int    `json:"order"`

	IsPerson     bool   `json:"isPerson,omitempty"`
	PersonName   string `json:"personName,omitempty"`
	IsTeamMember bool   `json:"isTeamMember,omitempty"`
	Archived     bool   `json:"archived,omitempty"`
}

// DisplayName is the name a person category is matched against: PersonName
// when present, falling back to Name for categories created before the
// PersonName field existed.
func (c Category) DisplayName() string {
	if c.PersonName != "" {
		return c.PersonName
	}
	return c.Name
}
