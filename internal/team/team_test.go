package team_test

import (
	"encoding/json"
	"testing"
	"time"

	"teamboard/internal/model"
	"teamboard/internal/team"

	"github.com/stretchr/testify/assert"
)

func TestAppendCheckIn_UpdatesCurrentRating(t *testing.T) {
	// Arrange
	member := &model.TeamMemberDetails{Name: "Sam", Morale: model.RatingGood}
	now := time.Now()

	// Act
	err := team.AppendCheckIn(member, model.CheckInMorale, model.RatingPoor, "rough week", now)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, model.RatingPoor, member.Morale)
	assert.Len(t, member.CheckIns, 1)
	assert.Equal(t, "rough week", member.CheckIns[0].Notes)
	assert.Equal(t, now, member.UpdatedAt)
}

func TestAppendCheckIn_RejectsBadInput(t *testing.T) {
	member := &model.TeamMemberDetails{Name: "Sam"}
	now := time.Now()

	assert.ErrorIs(t, team.AppendCheckIn(member, "vibes", model.RatingGood, "", now), team.ErrInvalidType)
	assert.ErrorIs(t, team.AppendCheckIn(member, model.CheckInMorale, "stellar", "", now), team.ErrInvalidRating)
	assert.Empty(t, member.CheckIns)
}

func TestAppendOneOnOne_DerivesCheckIns(t *testing.T) {
	// Arrange
	member := &model.TeamMemberDetails{Name: "Sam"}
	now := time.Now()

	// Act
	err := team.AppendOneOnOne(member, now, "roadmap", "send doc", "ship friday", model.RatingGood, model.RatingExcellent)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, member.OneOnOnes, 1)
	assert.Equal(t, "roadmap", member.OneOnOnes[0].DiscussionNotes)
	assert.Len(t, member.CheckIns, 2)
	assert.Equal(t, "From 1:1", member.CheckIns[0].Notes)
	assert.Equal(t, model.RatingGood, member.Morale)
	assert.Equal(t, model.RatingExcellent, member.Performance)
}

func TestAppendOneOnOne_RatingsOptional(t *testing.T) {
	member := &model.TeamMemberDetails{Name: "Sam"}

	err := team.AppendOneOnOne(member, time.Now(), "quick sync", "", "", "", "")

	assert.NoError(t, err)
	assert.Len(t, member.OneOnOnes, 1)
	assert.Empty(t, member.CheckIns)
}

func TestAddRedFlag_DuplicateOpenFlagIgnored(t *testing.T) {
	// Arrange
	member := &model.TeamMemberDetails{Name: "Sam"}
	now := time.Now()

	// Act
	team.AddRedFlag(member, "Missed standups", now)
	team.AddRedFlag(member, "missed standups", now)

	// Assert
	assert.Len(t, member.RedFlags, 1)
	assert.Equal(t, 1, team.OpenRedFlags(*member))
}

func TestRemoveRedFlag_ResolvesAndAllowsReadd(t *testing.T) {
	// Arrange
	member := &model.TeamMemberDetails{Name: "Sam"}
	now := time.Now()
	team.AddRedFlag(member, "Missed standups", now)

	// Act
	removed := team.RemoveRedFlag(member, "MISSED STANDUPS", now)
	team.AddRedFlag(member, "Missed standups", now)

	// Assert: resolving keeps the history and a fresh flag can be opened
	assert.True(t, removed)
	assert.Len(t, member.RedFlags, 2)
	assert.NotNil(t, member.RedFlags[0].ResolvedAt)
	assert.Equal(t, 1, team.OpenRedFlags(*member))
}

func TestRemoveRedFlag_NoOpenMatch(t *testing.T) {
	member := &model.TeamMemberDetails{Name: "Sam"}

	assert.False(t, team.RemoveRedFlag(member, "anything", time.Now()))
}

func TestPatchGoal_StampsCompletedAtOnce(t *testing.T) {
	// Arrange
	member := &model.TeamMemberDetails{
		Name: "Sam",
		Goals: model.Goals{
			{ID: "g1", Title: "Lead a project", Status: model.GoalInProgress},
		},
	}
	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)
	completed := model.GoalCompleted

	// Act
	err := team.PatchGoal(member, "g1", team.GoalPatch{Status: &completed}, first)
	again := team.PatchGoal(member, "g1", team.GoalPatch{Status: &completed}, second)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, again)
	assert.Equal(t, model.GoalCompleted, member.Goals[0].Status)
	assert.Equal(t, first, *member.Goals[0].CompletedAt)
}

func TestPatchGoal_PartialUpdate(t *testing.T) {
	// Arrange
	member := &model.TeamMemberDetails{
		Name: "Sam",
		Goals: model.Goals{
			{ID: "g1", Title: "Lead a project", Status: model.GoalInProgress, Notes: "old"},
		},
	}
	notes := "kickoff done"

	// Act
	err := team.PatchGoal(member, "g1", team.GoalPatch{Notes: &notes}, time.Now())

	// Assert: untouched fields keep their values
	assert.NoError(t, err)
	assert.Equal(t, "kickoff done", member.Goals[0].Notes)
	assert.Equal(t, model.GoalInProgress, member.Goals[0].Status)
	assert.Nil(t, member.Goals[0].CompletedAt)
}

func TestPatchGoal_UnknownGoal(t *testing.T) {
	member := &model.TeamMemberDetails{Name: "Sam"}

	err := team.PatchGoal(member, "missing", team.GoalPatch{}, time.Now())

	assert.ErrorIs(t, err, team.ErrGoalNotFound)
}

func TestPulse(t *testing.T) {
	// Arrange
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	lastSync := now.AddDate(0, 0, -9)
	sam := model.TeamMemberDetails{
		Name:        "Sam",
		Morale:      model.RatingGood,
		Performance: model.RatingExcellent,
		OneOnOnes:   model.OneOnOnes{{ID: "o1", Date: lastSync}},
		UpdatedAt:   lastSync,
	}
	team.AddRedFlag(&sam, "Missed standups", lastSync)
	robin := model.TeamMemberDetails{Name: "Robin"}

	// Act
	entries := team.Pulse([]model.TeamMemberDetails{sam, robin}, now)

	// Assert
	assert.Len(t, entries, 2)
	assert.Equal(t, "Sam", entries[0].Name)
	assert.Equal(t, 1, entries[0].RedFlags)
	assert.Equal(t, 9, *entries[0].DaysSinceLastOneOnOne)
	assert.NotNil(t, entries[0].LastUpdated)

	assert.Equal(t, "Robin", entries[1].Name)
	assert.Zero(t, entries[1].RedFlags)
	assert.Nil(t, entries[1].DaysSinceLastOneOnOne)
	assert.Nil(t, entries[1].LastUpdated)
}

func TestRedFlags_DecodesLegacyStringArray(t *testing.T) {
	// Older snapshots stored red flags as bare strings
	var flags model.RedFlags

	err := json.Unmarshal([]byte(`["Missed standups","Burnout risk"]`), &flags)

	assert.NoError(t, err)
	assert.Len(t, flags, 2)
	assert.Equal(t, "Missed standups", flags[0].Flag)
	assert.Nil(t, flags[0].ResolvedAt)
}
