// Package httpapi serves a service.Service as a JSON API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskpad/internal/logging"
	"taskpad/internal/service"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server routes HTTP requests to a service.
type Server struct {
	svc    service.Service
	log    *slog.Logger
	engine *gin.Engine
}

// New builds the router over svc. A nil logger discards.
func New(svc service.Service, log *slog.Logger) *Server {
	if log == nil {
		log = logging.Discard()
	}
	// debug mode prints the route table to stdout
	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{svc: svc, log: log, engine: gin.New()}
	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.engine.Group("/tasks")
	r.POST("", s.create)
	r.GET("", s.list)
	r.GET("/active", s.active)
	r.GET("/completed", s.completed)
	r.GET("/:id", s.get)
	r.PUT("/:id", s.update)
	r.POST("/:id/toggle", s.toggle)
	r.DELETE("/:id", s.delete)
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is done, then shuts down.
// ready, if set, receives the bound address before the first request.
func (s *Server) ListenAndServe(ctx context.Context, addr string, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{Handler: s.engine, ReadHeaderTimeout: readHeaderTimeout}
	if ready != nil {
		ready(ln.Addr())
	}
	s.log.Debug("http server started", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Debug("http server stopped")
	return nil
}

// requestLogger logs each request and hands the logger to the service
// through the request context.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Request = c.Request.WithContext(logging.WithLogger(c.Request.Context(), s.log))

		c.Next()

		s.log.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
