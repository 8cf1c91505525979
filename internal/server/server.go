package server

import (
	"github.com/gin-gonic/gin"

	"tasksync/internal/repository/sqlite"
)

// Server hosts the remote task API over HTTP. It implements the wire surface
// the remote client speaks, backed by its own sqlite database.
type Server struct {
	repo   sqlite.Repository
	router *gin.Engine
}

// New creates a new task API server backed by the given repository.
func New(repo sqlite.Repository) *Server {
	s := &Server{
		repo:   repo,
		router: gin.Default(),
	}
	s.registerRoutes()
	return s
}

// Router returns the HTTP handler, exposed for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server on the given address and blocks.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/tasks", s.handleListTasks)
	s.router.PUT("/tasks/:id", s.handlePutTask)
	s.router.DELETE("/tasks/:id", s.handleDeleteTask)
	s.router.POST("/tasks/:id/complete", s.handleCompleteTask)
}
