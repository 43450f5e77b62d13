package handler

import (
	"errors"
	"net/http"

	"teamboard/internal/model"
	"teamboard/internal/store"

	"github.com/gin-gonic/gin"
)

// StateHandler serves the whole-snapshot surface the UI persists through:
// it always reads and writes AppState as one unit.
type StateHandler struct {
	store store.Store
}

func NewStateHandler(st store.Store) *StateHandler {
	return &StateHandler{store: st}
}

// Get returns the current snapshot, seeding a default one on first use.
func (h *StateHandler) Get(c *gin.Context) {
	state, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load state"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// Put replaces the snapshot. The payload's version must match what was
// loaded; a mismatch means another session saved in between and yields 409.
func (h *StateHandler) Put(c *gin.Context) {
	var state model.AppState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid state payload"})
		return
	}

	if err := h.store.Save(c.Request.Context(), &state); err != nil {
		if errors.Is(err, store.ErrStaleState) {
			c.JSON(http.StatusConflict, gin.H{"error": "State changed concurrently, reload and retry"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save state"})
		return
	}
	c.JSON(http.StatusOK, state)
}
