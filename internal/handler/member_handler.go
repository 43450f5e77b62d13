package handler

import (
	"errors"
	"net/http"
	"time"

	"teamboard/internal/model"
	"teamboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler serves the UI's team member CRUD; the integration surface
// lives in TeamHandler.
type MemberHandler struct {
	memberRepo repository.MemberRepositoryInterface
}

func NewMemberHandler(memberRepo repository.MemberRepositoryInterface) *MemberHandler {
	return &MemberHandler{memberRepo: memberRepo}
}

type MemberRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role"`
}

type GoalRequest struct {
	Title      string            `json:"title" binding:"required"`
	Status     string            `json:"status" binding:"omitempty,oneof=not-started in-progress completed on-hold"`
	Notes      string            `json:"notes"`
	Milestones []model.Milestone `json:"milestones"`
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	existing, err := h.memberRepo.GetByName(c.Request.Context(), req.Name)
	if err != nil && !errors.Is(err, repository.ErrMemberNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check member"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Member already exists"})
		return
	}

	now := time.Now()
	member := &model.TeamMemberDetails{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Role:      req.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.memberRepo.Create(c.Request.Context(), member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *MemberHandler) GetAll(c *gin.Context) {
	members, err := h.memberRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve members"})
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) GetByID(c *gin.Context) {
	member, err := h.memberRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve member"})
		}
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Update(c *gin.Context) {
	member, err := h.memberRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve member"})
		}
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	member.Name = req.Name
	member.Role = req.Role
	member.UpdatedAt = time.Now()
	if err := h.memberRepo.Update(c.Request.Context(), member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.memberRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted"})
}

// AddGoal appends a growth goal to a member.
func (h *MemberHandler) AddGoal(c *gin.Context) {
	member, err := h.memberRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve member"})
		}
		return
	}

	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	now := time.Now()
	goal := model.Goal{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Status:     req.Status,
		Notes:      req.Notes,
		Milestones: req.Milestones,
		CreatedAt:  now,
	}
	if goal.Status == "" {
		goal.Status = model.GoalNotStarted
	}
	for i := range goal.Milestones {
		if goal.Milestones[i].ID == "" {
			goal.Milestones[i].ID = uuid.NewString()
		}
	}

	member.Goals = append(member.Goals, goal)
	member.UpdatedAt = now
	if err := h.memberRepo.Update(c.Request.Context(), member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}
	c.JSON(http.StatusCreated, goal)
}
