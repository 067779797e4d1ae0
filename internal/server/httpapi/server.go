// Package httpapi exposes the awardee CRUD operations over HTTP. Every route
// sits behind a bearer-token check; handler failures become JSON error
// envelopes, never process exits.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/awarddeck/internal/logging"
	"github.com/dmitrijs2005/awarddeck/internal/server/auth"
	"github.com/dmitrijs2005/awarddeck/internal/server/awardees"
	"github.com/labstack/echo/v4"
)

type Server struct {
	address        string
	service        *awardees.Service
	verifier       *auth.Verifier
	logger         logging.Logger
	maxUploadBytes int64
	echo           *echo.Echo
}

func NewServer(address string, service *awardees.Service, verifier *auth.Verifier, maxUploadBytes int64, logger logging.Logger) *Server {
	s := &Server{
		address:        address,
		service:        service,
		verifier:       verifier,
		logger:         logger.With("module", "httpapi"),
		maxUploadBytes: maxUploadBytes,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(s.bearerAuth)

	e.GET("/health", s.health)
	e.GET("/awardees", s.listAwardees)
	e.POST("/awardees", s.upsertAwardee)
	e.POST("/awardees/batch", s.upsertBatch)
	e.DELETE("/awardees/:id", s.deleteAwardee)
	e.POST("/upload-photo", s.uploadPhoto)
	e.GET("/custom-categories", s.getCategories)
	e.POST("/custom-categories", s.saveCategories)

	s.echo = e
	return s
}

// Handler exposes the configured router for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
