package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"teamboard/internal/model"
	"teamboard/internal/repository"
	"teamboard/internal/team"

	"github.com/gin-gonic/gin"
)

// TeamHandler serves the external integration surface: five endpoints
// consumed by automation clients, guarded by the shared API key. Responses
// use the {ok, data} / {ok, error} envelope those clients expect.
type TeamHandler struct {
	memberRepo repository.MemberRepositoryInterface
}

func NewTeamHandler(memberRepo repository.MemberRepositoryInterface) *TeamHandler {
	return &TeamHandler{memberRepo: memberRepo}
}

type CheckInRequest struct {
	Name   string `json:"name" binding:"required"`
	Type   string `json:"type" binding:"required,oneof=morale performance"`
	Rating string `json:"rating" binding:"required,oneof=excellent good fair poor"`
	Notes  string `json:"notes"`
	Date   string `json:"date"`
}

type OneOnOneRequest struct {
	Name            string `json:"name" binding:"required"`
	Date            string `json:"date"`
	DiscussionNotes string `json:"discussionNotes" binding:"required"`
	FollowUps       string `json:"followUps"`
	Decisions       string `json:"decisions"`
	Morale          string `json:"morale" binding:"omitempty,oneof=excellent good fair poor"`
	Performance     string `json:"performance" binding:"omitempty,oneof=excellent good fair poor"`
}

type RedFlagRequest struct {
	Name string `json:"name" binding:"required"`
	Flag string `json:"flag" binding:"required"`
}

type UpdateGoalRequest struct {
	Name       string            `json:"name" binding:"required"`
	GoalID     string            `json:"goalId" binding:"required"`
	Status     *string           `json:"status" binding:"omitempty,oneof=not-started in-progress completed on-hold"`
	Notes      *string           `json:"notes"`
	Milestones []model.Milestone `json:"milestones"`
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"ok": false, "error": msg})
}

// member resolves the named member or writes the 404 envelope and returns nil.
func (h *TeamHandler) member(c *gin.Context, name string) *model.TeamMemberDetails {
	member, err := h.memberRepo.GetByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			fail(c, http.StatusNotFound, "team member not found: "+name)
		} else {
			fail(c, http.StatusInternalServerError, "failed to load team member")
		}
		return nil
	}
	return member
}

// parseDate accepts RFC 3339 or a bare YYYY-MM-DD value; empty means now.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want RFC 3339 or YYYY-MM-DD", raw)
}

// LogCheckIn appends a morale or performance check-in and updates the
// member's current rating.
func (h *TeamHandler) LogCheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name, type (morale|performance) and rating (excellent|good|fair|poor) are required")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	member := h.member(c, req.Name)
	if member == nil {
		return
	}

	if err := team.AppendCheckIn(member, req.Type, req.Rating, req.Notes, date); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.memberRepo.Update(c.Request.Context(), member); err != nil {
		fail(c, http.StatusInternalServerError, "failed to save check-in")
		return
	}
	ok(c, member)
}

// LogOneOnOne appends a 1:1 record, with optional derived check-ins.
func (h *TeamHandler) LogOneOnOne(c *gin.Context) {
	var req OneOnOneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name and discussionNotes are required")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	member := h.member(c, req.Name)
	if member == nil {
		return
	}

	if err := team.AppendOneOnOne(member, date, req.DiscussionNotes, req.FollowUps, req.Decisions, req.Morale, req.Performance); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.memberRepo.Update(c.Request.Context(), member); err != nil {
		fail(c, http.StatusInternalServerError, "failed to save 1:1")
		return
	}
	ok(c, member)
}

// AddRedFlag appends an open red flag to the member.
func (h *TeamHandler) AddRedFlag(c *gin.Context) {
	var req RedFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name and flag are required")
		return
	}

	member := h.member(c, req.Name)
	if member == nil {
		return
	}

	team.AddRedFlag(member, req.Flag, time.Now())
	if err := h.memberRepo.Update(c.Request.Context(), member); err != nil {
		fail(c, http.StatusInternalServerError, "failed to save red flag")
		return
	}
	ok(c, member)
}

// RemoveRedFlag resolves an open red flag by its text.
func (h *TeamHandler) RemoveRedFlag(c *gin.Context) {
	var req RedFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name and flag are required")
		return
	}

	member := h.member(c, req.Name)
	if member == nil {
		return
	}

	if !team.RemoveRedFlag(member, req.Flag, time.Now()) {
		fail(c, http.StatusNotFound, "open red flag not found: "+req.Flag)
		return
	}
	if err := h.memberRepo.Update(c.Request.Context(), member); err != nil {
		fail(c, http.StatusInternalServerError, "failed to save red flag")
		return
	}
	ok(c, member)
}

// UpdateGoal patches one goal by id.
func (h *TeamHandler) UpdateGoal(c *gin.Context) {
	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name and goalId are required")
		return
	}

	member := h.member(c, req.Name)
	if member == nil {
		return
	}

	patch := team.GoalPatch{
		Status:     req.Status,
		Notes:      req.Notes,
		Milestones: req.Milestones,
	}
	if err := team.PatchGoal(member, req.GoalID, patch, time.Now()); err != nil {
		if errors.Is(err, team.ErrGoalNotFound) {
			fail(c, http.StatusNotFound, "goal not found: "+req.GoalID)
		} else {
			fail(c, http.StatusBadRequest, err.Error())
		}
		return
	}
	if err := h.memberRepo.Update(c.Request.Context(), member); err != nil {
		fail(c, http.StatusInternalServerError, "failed to save goal")
		return
	}
	ok(c, member)
}

// TeamPulse summarizes every member's standing.
func (h *TeamHandler) TeamPulse(c *gin.Context) {
	members, err := h.memberRepo.GetAll(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load team members")
		return
	}
	ok(c, team.Pulse(members, time.Now()))
}
