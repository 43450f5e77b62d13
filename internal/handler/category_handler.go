package handler

import (
	"errors"
	"net/http"
	"time"

	"teamboard/internal/board"
	"teamboard/internal/model"
	"teamboard/internal/repository"
	"teamboard/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	categoryRepo *repository.CategoryRepository
	store        store.Store
}

func NewCategoryHandler(categoryRepo *repository.CategoryRepository, st store.Store) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo, store: st}
}

type CategoryRequest struct {
	ColumnID string `json:"columnId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Color    string `json:"color"`
	Order    int    `json:"order"`
	Archived bool   `json:"archived"`
}

type PersonCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type TeamMemberToggleRequest struct {
	IsTeamMember bool `json:"isTeamMember"`
}

// Create adds a generic (non-person) category to a column.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	category := &model.Category{
		ID:       uuid.NewString(),
		ColumnID: req.ColumnID,
		Name:     req.Name,
		Color:    req.Color,
		Order:    req.Order,
	}
	if err := h.categoryRepo.Create(c.Request.Context(), category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// GetByColumn lists a column's categories, sorted team-members-first.
func (h *CategoryHandler) GetByColumn(c *gin.Context) {
	categories, err := h.categoryRepo.GetByColumnID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}
	c.JSON(http.StatusOK, board.SortCategories(categories))
}

// Update edits a category (rename, recolor, archive).
func (h *CategoryHandler) Update(c *gin.Context) {
	category, err := h.categoryRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	category.Name = req.Name
	category.Color = req.Color
	category.Order = req.Order
	category.Archived = req.Archived
	if category.IsPerson {
		category.PersonName = req.Name
	}

	if err := h.categoryRepo.Update(c.Request.Context(), category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// EnsurePerson adds a person category to the follow-up column, reusing an
// existing one for the same name regardless of case.
func (h *CategoryHandler) EnsurePerson(c *gin.Context) {
	var req PersonCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	state, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load state"})
		return
	}

	next, category := board.EnsurePersonCategory(state, req.Name)
	if next != state {
		if h.saveState(c, next) {
			return
		}
	}
	c.JSON(http.StatusOK, category)
}

// SetTeamMember toggles the team-member flag and reconciles duplicates.
func (h *CategoryHandler) SetTeamMember(c *gin.Context) {
	var req TeamMemberToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	state, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load state"})
		return
	}

	next, ok := board.SetTeamMember(state, c.Param("id"), req.IsTeamMember)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if h.saveState(c, next) {
		return
	}

	category := next.FindCategory(c.Param("id"))
	if category == nil {
		// The toggle merged this category into another variant for the same
		// person; report the survivor.
		if orig := state.FindCategory(c.Param("id")); orig != nil {
			category = board.FindPersonCategory(next, orig.DisplayName())
		}
	}
	c.JSON(http.StatusOK, category)
}

// Delete removes a category. For person categories the tasks query parameter
// chooses what happens to that person's tasks: "delete" removes them,
// anything else unassigns them in place.
func (h *CategoryHandler) Delete(c *gin.Context) {
	state, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load state"})
		return
	}

	deleteTasks := c.Query("tasks") == "delete"
	next, ok := board.RemovePersonCategory(state, c.Param("id"), deleteTasks, time.Now())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if h.saveState(c, next) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// VisiblePersons lists the follow-up column's person categories that should
// be shown: unarchived, with at least one active assignment.
func (h *CategoryHandler) VisiblePersons(c *gin.Context) {
	state, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load state"})
		return
	}
	c.JSON(http.StatusOK, board.VisiblePersonCategories(state))
}

// saveState persists the snapshot and writes the error response itself;
// callers bail out when it reports true.
func (h *CategoryHandler) saveState(c *gin.Context, state *model.AppState) bool {
	if err := h.store.Save(c.Request.Context(), state); err != nil {
		if errors.Is(err, store.ErrStaleState) {
			c.JSON(http.StatusConflict, gin.H{"error": "State changed concurrently, reload and retry"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save state"})
		}
		return true
	}
	return false
}
