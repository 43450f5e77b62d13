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
)

type TaskHandler struct {
	taskRepo   *repository.TaskRepository
	columnRepo *repository.ColumnRepository
	store      store.Store
}

func NewTaskHandler(taskRepo *repository.TaskRepository, columnRepo *repository.ColumnRepository, st store.Store) *TaskHandler {
	return &TaskHandler{
		taskRepo:   taskRepo,
		columnRepo: columnRepo,
		store:      st,
	}
}

// TaskRequest is the create/update payload.
type TaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	ColumnID    string   `json:"columnId"`
	CategoryID  *string  `json:"categoryId"`
	ProjectID   *string  `json:"projectId"`
	Client      string   `json:"client"`
	Tags        []string `json:"tags"`
}

// TaskMoveRequest carries a drag/drop gesture. Assignee is tri-state: absent
// means no assignment change, empty string means explicit unassign, anything
// else assigns to that person.
type TaskMoveRequest struct {
	ColumnID   string  `json:"columnId" binding:"required"`
	CategoryID *string `json:"categoryId"`
	Assignee   *string `json:"assignee"`
}

// Create adds a new task to a column.
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	columnID := req.ColumnID
	if columnID == "" {
		columnID = model.ColumnUncategorized
	}

	column, err := h.columnRepo.GetByID(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve column"})
		return
	}
	if column == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
		return
	}

	task := board.NewTask(req.Title, columnID, time.Now())
	task.Description = req.Description
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	task.CategoryID = req.CategoryID
	task.ProjectID = req.ProjectID
	task.Client = req.Client
	task.Tags = req.Tags

	if err := h.taskRepo.Create(c.Request.Context(), &task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetAll lists tasks, optionally filtered by column, category or assignee.
func (h *TaskHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		tasks []model.Task
		err   error
	)
	switch {
	case c.Query("columnId") != "":
		tasks, err = h.taskRepo.GetByColumnID(ctx, c.Query("columnId"))
	case c.Query("categoryId") != "":
		tasks, err = h.taskRepo.GetByCategoryID(ctx, c.Query("categoryId"))
	case c.Query("assignee") != "":
		tasks, err = h.taskRepo.GetByAssignee(ctx, c.Query("assignee"))
	default:
		tasks, err = h.taskRepo.GetAll(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	if c.Query("active") == "true" {
		active := tasks[:0:0]
		for _, task := range tasks {
			if board.IsActive(task) {
				active = append(active, task)
			}
		}
		tasks = active
	}

	c.JSON(http.StatusOK, tasks)
}

// GetByID returns a single task.
func (h *TaskHandler) GetByID(c *gin.Context) {
	task, err := h.taskRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}
	c.JSON(http.StatusOK, task)
}

// Update edits a task's editable fields.
func (h *TaskHandler) Update(c *gin.Context) {
	task, err := h.taskRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task.Title = req.Title
	task.Description = req.Description
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	task.ProjectID = req.ProjectID
	task.Client = req.Client
	task.Tags = req.Tags
	task.UpdatedAt = time.Now()

	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// Delete removes a task.
func (h *TaskHandler) Delete(c *gin.Context) {
	err := h.taskRepo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// Move applies a drag/drop gesture through the placement engine: the whole
// snapshot is loaded, the transition computed, and the result saved back.
func (h *TaskHandler) Move(c *gin.Context) {
	var req TaskMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	state, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load state"})
		return
	}

	next, ok := board.MoveTask(state, c.Param("id"), req.ColumnID, req.CategoryID, board.FromOptional(req.Assignee), time.Now())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if err := h.store.Save(c.Request.Context(), next); err != nil {
		if errors.Is(err, store.ErrStaleState) {
			c.JSON(http.StatusConflict, gin.H{"error": "State changed concurrently, reload and retry"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save state"})
		return
	}

	c.JSON(http.StatusOK, next.FindTask(c.Param("id")))
}
