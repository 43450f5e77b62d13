package handler

import (
	"net/http"

	"teamboard/internal/board"
	"teamboard/internal/model"
	"teamboard/internal/repository"
	"teamboard/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ColumnHandler struct {
	columnRepo *repository.ColumnRepository
	store      store.Store
}

func NewColumnHandler(columnRepo *repository.ColumnRepository, st store.Store) *ColumnHandler {
	return &ColumnHandler{columnRepo: columnRepo, store: st}
}

type ColumnRequest struct {
	Title    string `json:"title" binding:"required"`
	Position *int   `json:"position"`
}

type ColumnReorderRequest struct {
	Columns []struct {
		ID       string `json:"id" binding:"required"`
		Position int    `json:"position"`
	} `json:"columns" binding:"required"`
}

// CategoryGroup is one category's slice of a column's task listing.
type CategoryGroup struct {
	Category model.Category `json:"category"`
	Tasks    []model.Task   `json:"tasks"`
	Count    int            `json:"count"`
}

// ColumnTasksResponse groups a column's tasks: direct children, per-category
// groups, and tasks whose category no longer exists in the column.
type ColumnTasksResponse struct {
	ColumnID string          `json:"columnId"`
	Tasks    []model.Task    `json:"tasks"`
	Groups   []CategoryGroup `json:"groups,omitempty"`
	Orphaned []model.Task    `json:"orphaned,omitempty"`
	Total    int             `json:"total"`
}

func (h *ColumnHandler) Create(c *gin.Context) {
	var req ColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	position := 0
	if req.Position != nil {
		position = *req.Position
	} else {
		max, err := h.columnRepo.GetMaxPosition(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine position"})
			return
		}
		position = max + 1
	}

	column := &model.Column{
		ID:       uuid.NewString(),
		Title:    req.Title,
		Position: position,
	}
	if err := h.columnRepo.Create(c.Request.Context(), column); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create column"})
		return
	}
	c.JSON(http.StatusCreated, column)
}

func (h *ColumnHandler) GetAll(c *gin.Context) {
	columns, err := h.columnRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}
	c.JSON(http.StatusOK, columns)
}

func (h *ColumnHandler) GetByID(c *gin.Context) {
	column, err := h.columnRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
		return
	}
	if column == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}
	c.JSON(http.StatusOK, column)
}

func (h *ColumnHandler) Update(c *gin.Context) {
	column, err := h.columnRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
		return
	}
	if column == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	var req ColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	column.Title = req.Title
	if req.Position != nil {
		column.Position = *req.Position
	}
	if err := h.columnRepo.Update(c.Request.Context(), column); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update column"})
		return
	}
	c.JSON(http.StatusOK, column)
}

func (h *ColumnHandler) Delete(c *gin.Context) {
	if err := h.columnRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if err == repository.ErrColumnNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete column"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Column deleted"})
}

func (h *ColumnHandler) Reorder(c *gin.Context) {
	var req ColumnReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	columns := make([]model.Column, 0, len(req.Columns))
	for _, col := range req.Columns {
		columns = append(columns, model.Column{ID: col.ID, Position: col.Position})
	}
	if err := h.columnRepo.Reorder(c.Request.Context(), columns); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder columns"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Columns reordered"})
}

// GetTasks returns the column's occupancy view from the current snapshot.
func (h *ColumnHandler) GetTasks(c *gin.Context) {
	state, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load state"})
		return
	}

	columnID := c.Param("id")
	if state.FindColumn(columnID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	resp := ColumnTasksResponse{
		ColumnID: columnID,
		Tasks:    board.TasksInColumn(state, columnID),
		Orphaned: board.OrphanedInColumn(state, columnID),
	}
	for _, category := range board.ColumnCategories(state, columnID) {
		tasks := board.TasksInCategory(state, columnID, category.ID)
		resp.Groups = append(resp.Groups, CategoryGroup{
			Category: category,
			Tasks:    tasks,
			Count:    len(tasks),
		})
	}

	for _, task := range state.Tasks {
		if task.ColumnID == columnID {
			resp.Total++
		}
	}

	c.JSON(http.StatusOK, resp)
}
