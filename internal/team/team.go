package team

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"teamboard/internal/model"
)

var (
	ErrGoalNotFound  = errors.New("goal not found")
	ErrInvalidRating = errors.New("invalid rating")
	ErrInvalidType   = errors.New("invalid check-in type")
)

func validRating(r string) bool {
	switch r {
	case model.RatingExcellent, model.RatingGood, model.RatingFair, model.RatingPoor:
		return true
	}
	return false
}

// AppendCheckIn records a morale or performance check-in and updates the
// member's current rating of that type.
func AppendCheckIn(member *model.TeamMemberDetails, checkType, rating, notes string, date time.Time) error {
	if checkType != model.CheckInMorale && checkType != model.CheckInPerformance {
		return ErrInvalidType
	}
	if !validRating(rating) {
		return ErrInvalidRating
	}

	member.CheckIns = append(member.CheckIns, model.CheckIn{
		ID:     uuid.NewString(),
		Type:   checkType,
		Rating: rating,
		Notes:  notes,
		Date:   date,
	})
	if checkType == model.CheckInMorale {
		member.Morale = rating
	} else {
		member.Performance = rating
	}
	member.UpdatedAt = date
	return nil
}

// AppendOneOnOne records a 1:1 entry and, when morale or performance ratings
// accompany it, derived check-ins as well.
func AppendOneOnOne(member *model.TeamMemberDetails, date time.Time, discussionNotes, followUps, decisions, morale, performance string) error {
	if morale != "" && !validRating(morale) {
		return ErrInvalidRating
	}
	if performance != "" && !validRating(performance) {
		return ErrInvalidRating
	}

	member.OneOnOnes = append(member.OneOnOnes, model.OneOnOne{
		ID:              uuid.NewString(),
		Date:            date,
		DiscussionNotes: discussionNotes,
		FollowUps:       followUps,
		Decisions:       decisions,
	})
	if morale != "" {
		if err := AppendCheckIn(member, model.CheckInMorale, morale, "From 1:1", date); err != nil {
			return err
		}
	}
	if performance != "" {
		if err := AppendCheckIn(member, model.CheckInPerformance, performance, "From 1:1", date); err != nil {
			return err
		}
	}
	member.UpdatedAt = date
	return nil
}

// AddRedFlag appends an open red flag. Adding a flag already present (open,
// same text, any case) is a no-op.
func AddRedFlag(member *model.TeamMemberDetails, flag string, now time.Time) {
	for _, existing := range member.RedFlags {
		if existing.ResolvedAt == nil && strings.EqualFold(existing.Flag, flag) {
			return
		}
	}
	member.RedFlags = append(member.RedFlags, model.RedFlag{
		ID:      uuid.NewString(),
		Flag:    flag,
		AddedAt: now,
	})
	member.UpdatedAt = now
}

// RemoveRedFlag resolves the first open flag matching the text. Returns
// false when no open flag matches.
func RemoveRedFlag(member *model.TeamMemberDetails, flag string, now time.Time) bool {
	for i := range member.RedFlags {
		if member.RedFlags[i].ResolvedAt == nil && strings.EqualFold(member.RedFlags[i].Flag, flag) {
			resolved := now
			member.RedFlags[i].ResolvedAt = &resolved
			member.UpdatedAt = now
			return true
		}
	}
	return false
}

// OpenRedFlags counts flags not yet resolved.
func OpenRedFlags(member model.TeamMemberDetails) int {
	n := 0
	for _, f := range member.RedFlags {
		if f.ResolvedAt == nil {
			n++
		}
	}
	return n
}

// GoalPatch carries the updatable fields of a goal; nil means unchanged.
type GoalPatch struct {
	Status     *string
	Notes      *string
	Milestones []model.Milestone
}

// PatchGoal updates one goal by id. The first transition into the completed
// status stamps completedAt; later updates leave the stamp alone.
func PatchGoal(member *model.TeamMemberDetails, goalID string, patch GoalPatch, now time.Time) error {
	for i := range member.Goals {
		goal := &member.Goals[i]
		if goal.ID != goalID {
			continue
		}
		if patch.Status != nil {
			if *patch.Status == model.GoalCompleted && goal.Status != model.GoalCompleted && goal.CompletedAt == nil {
				completed := now
				goal.CompletedAt = &completed
			}
			goal.Status = *patch.Status
		}
		if patch.Notes != nil {
			goal.Notes = *patch.Notes
		}
		if patch.Milestones != nil {
			goal.Milestones = patch.Milestones
		}
		member.UpdatedAt = now
		return nil
	}
	return ErrGoalNotFound
}
