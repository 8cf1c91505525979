package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tasksync/internal/domain"
	"tasksync/internal/errors"
	"tasksync/internal/remote"
	"tasksync/internal/validation"
)

var taskValidator = validation.NewTaskValidator()
var taskMapper = domain.NewTaskMapper()

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleListTasks(c *gin.Context) {
	dbTasks, err := s.repo.ListTasks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	wireTasks := make([]remote.Task, 0, len(dbTasks))
	for _, dbTask := range dbTasks {
		wireTasks = append(wireTasks, remote.FromDomain(taskMapper.FromDatabase(*dbTask)))
	}
	c.JSON(http.StatusOK, remote.TaskList{Tasks: wireTasks})
}

func (s *Server) handlePutTask(c *gin.Context) {
	id, err := parseTaskID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var wireTask remote.Task
	if err := c.ShouldBindJSON(&wireTask); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if wireTask.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID does not match URL"})
		return
	}

	task, err := wireTask.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}
	if err := taskValidator.ValidateTask(task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dbTask := taskMapper.ToDatabase(task)
	if err := s.repo.PutTask(c.Request.Context(), &dbTask); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store task"})
		return
	}
	c.JSON(http.StatusOK, wireTask)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id, err := parseTaskID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	if err := s.repo.DeleteTask(c.Request.Context(), id); err != nil {
		if errors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func (s *Server) handleCompleteTask(c *gin.Context) {
	id, err := parseTaskID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	if err := s.repo.MarkCompleted(c.Request.Context(), id); err != nil {
		if errors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task completed successfully"})
}

func parseTaskID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("id", c.Param("id"), "must be a positive integer")
	}
	return id, nil
}
