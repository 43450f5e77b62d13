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

type ProjectHandler struct {
	projectRepo *repository.ProjectRepository
}

func NewProjectHandler(projectRepo *repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{projectRepo: projectRepo}
}

type ProjectRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Client      string            `json:"client"`
	Status      string            `json:"status"`
	Milestones  []model.Milestone `json:"milestones"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	now := time.Now()
	project := &model.Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Client:      req.Client,
		Status:      req.Status,
		Milestones:  req.Milestones,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if project.Status == "" {
		project.Status = "active"
	}
	for i := range project.Milestones {
		if project.Milestones[i].ID == "" {
			project.Milestones[i].ID = uuid.NewString()
		}
	}

	if err := h.projectRepo.Create(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) GetAll(c *gin.Context) {
	projects, err := h.projectRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetByID(c *gin.Context) {
	project, err := h.projectRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	project, err := h.projectRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project.Name = req.Name
	project.Description = req.Description
	project.Client = req.Client
	if req.Status != "" {
		project.Status = req.Status
	}
	if req.Milestones != nil {
		for i := range req.Milestones {
			if req.Milestones[i].ID == "" {
				req.Milestones[i].ID = uuid.NewString()
			}
		}
		project.Milestones = req.Milestones
	}
	project.UpdatedAt = time.Now()

	if err := h.projectRepo.Update(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
