package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/gemarc/feedback/pkg/domain"
	"github.com/gemarc/feedback/pkg/service"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feedback.go -pkg mocks -skip-ensure -fmt goimports . FeedbackService

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	feedback FeedbackService
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// FeedbackService is the feedback logic used by handlers
type FeedbackService interface {
	Submit(ctx context.Context, fb *domain.Feedback) error
	Get(ctx context.Context, id int64) (*domain.Feedback, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error)
	Stats(ctx context.Context, filter domain.FeedbackFilter) (domain.SentimentStats, error)
	CreateEvent(ctx context.Context, ev *domain.Event) error
	Events(ctx context.Context) ([]*domain.Event, error)
	Reclassify(ctx context.Context) (service.ReclassifyResult, error)
	Digest(ctx context.Context, eventID int64) (string, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, feedback FeedbackService, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		feedback: feedback,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("gemarc-feedback", "gemarc", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /sentiment", s.sentimentHandler)

		r.HandleFunc("POST /feedback", s.submitFeedbackHandler)
		r.HandleFunc("GET /feedback", s.listFeedbackHandler)
		r.HandleFunc("GET /feedback/stats", s.feedbackStatsHandler)
		r.HandleFunc("GET /feedback/{id}", s.getFeedbackHandler)
		r.HandleFunc("DELETE /feedback/{id}", s.deleteFeedbackHandler)

		r.HandleFunc("GET /events", s.listEventsHandler)
		r.HandleFunc("POST /events", s.createEventHandler)
		r.HandleFunc("GET /events/{id}/digest", s.eventDigestHandler)

		r.HandleFunc("POST /admin/reclassify", s.reclassifyHandler)
	})
}
