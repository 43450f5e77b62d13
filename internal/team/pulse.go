package team

import (
	"time"

	"teamboard/internal/model"
)

// PulseEntry is the per-member summary returned by the team-pulse endpoint.
type PulseEntry struct {
	Name                  string     `json:"name"`
	Morale                string     `json:"morale,omitempty"`
	Performance           string     `json:"performance,omitempty"`
	RedFlags              int        `json:"redFlags"`
	DaysSinceLastOneOnOne *int       `json:"daysSinceLastOneOnOne,omitempty"`
	LastUpdated           *time.Time `json:"lastUpdated,omitempty"`
}

// Pulse summarizes every member's current standing.
func Pulse(members []model.TeamMemberDetails, now time.Time) []PulseEntry {
	out := make([]PulseEntry, 0, len(members))
	for _, m := range members {
		entry := PulseEntry{
			Name:        m.Name,
			Morale:      m.Morale,
			Performance: m.Performance,
			RedFlags:    OpenRedFlags(m),
		}
		if !m.UpdatedAt.IsZero() {
			updated := m.UpdatedAt
			entry.LastUpdated = &updated
		}
		if last := lastOneOnOne(m); last != nil {
			days := int(now.Sub(*last).Hours() / 24)
			if days < 0 {
				days = 0
			}
			entry.DaysSinceLastOneOnOne = &days
		}
		out = append(out, entry)
	}
	return out
}

func lastOneOnOne(m model.TeamMemberDetails) *time.Time {
	var last *time.Time
	for i := range m.OneOnOnes {
		d := m.OneOnOnes[i].Date
		if last == nil || d.After(*last) {
			last = &d
		}
	}
	return last
}
