package handlers

import (
	"net/http"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/models"
	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Task Handler
// ============================================

type TaskHandler struct {
	taskService service.TaskService
	loc         *time.Location
}

func taskFilter(c *gin.Context) service.TaskFilter {
	return service.TaskFilter{
		Search:    c.Query("search"),
		Priority:  c.Query("priority"),
		ProjectID: c.Query("projectId"),
	}
}

// List - GET /tasks?search=&priority=&projectId=
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.List(c.Request.Context(), taskFilter(c))
	if err != nil {
		respondError(c, err, "Failed to fetch tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Board - GET /tasks/board, same filters as List grouped into columns
func (h *TaskHandler) Board(c *gin.Context) {
	columns, err := h.taskService.Board(c.Request.Context(), taskFilter(c))
	if err != nil {
		respondError(c, err, "Failed to fetch task board")
		return
	}
	c.JSON(http.StatusOK, columns)
}

// Create - POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := models.ParseDate(req.DueDate, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueDate: " + err.Error()})
			return
		}
		dueDate = &d
	}

	task, err := h.taskService.Create(c.Request.Context(), service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		DueDate:     dueDate,
	})
	if err != nil {
		respondError(c, err, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, task)
}
