package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"donlouis-club-backend/internal/http/middleware"
)

// Server wraps the gin engine in an http.Server so shutdown can drain
// in-flight requests.
type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and creates a new Server instance
// listening on addr.
func NewServer(addr string, handler *Handler) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())
	handler.RegisterRoutes(router)

	return &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: router,
		},
	}
}

// Start serves until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
