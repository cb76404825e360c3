package ui

import (
	"context"
	"net/http"
	"time"

	"aitrends/app"
	"aitrends/internal"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Server exposes the trends analysis over HTTP
type Server struct {
	router   *gin.Engine
	analyzer *app.TrendsAnalyzer
	logger   *internal.Logger
}

// NewServer creates a web server around an already-constructed analyzer
func NewServer(analyzer *app.TrendsAnalyzer) *Server {
	router := gin.Default()
	router.Use(RequestID())

	s := &Server{
		router:   router,
		analyzer: analyzer,
		logger:   internal.DefaultLogger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "records": s.analyzer.RecordCount()})
	})

	api := s.router.Group("/api")
	api.GET("/salary-stats", s.handleSalaryStats())
	api.GET("/technology-popularity", s.handleTechnologyPopularity())
	api.GET("/report", s.handleReport())
}

// Handler returns the underlying HTTP handler, used by tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("[Server] listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
