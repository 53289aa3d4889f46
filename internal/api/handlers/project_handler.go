package handlers

import (
	"net/http"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/models"
	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Project Handler
// ============================================

type ProjectHandler struct {
	projectService service.ProjectService
	loc            *time.Location
}

// List - List projects
// GET /projects?search=&status=
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context(), c.Query("search"), c.Query("status"))
	if err != nil {
		respondError(c, err, "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get - Get a project by ID
// GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create - Create a new project
// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := models.ParseDate(req.StartDate, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate: " + err.Error()})
		return
	}
	end, err := models.ParseDate(req.EndDate, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate: " + err.Error()})
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), service.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		Color:       req.Color,
		Progress:    req.Progress,
	})
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, project)
}
