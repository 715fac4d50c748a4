package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/JaimeStill/drinkchain/internal/config"
	"github.com/JaimeStill/drinkchain/internal/infrastructure"
)

// Server owns the infrastructure, the mounted modules and the HTTP listener
// for one process.
type Server struct {
	cfg     *config.Config
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    *httpServer
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"env", cfg.Env(),
		"storage", cfg.Storage.Provider,
		"max_body", humanize.IBytes(uint64(cfg.API.MaxBodySizeBytes())),
		"modules", router.Prefixes(),
	)

	return &Server{
		cfg:     cfg,
		infra:   infra,
		modules: modules,
		http:    newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

// Run starts every system, serves until ctx is done, then shuts down within
// the configured shutdown timeout. If startup fails partway, the systems that
// did start are shut down before the error is returned.
func (s *Server) Run(ctx context.Context) error {
	if err := s.start(); err != nil {
		return errors.Join(fmt.Errorf("start: %w", err), s.shutdown())
	}

	<-ctx.Done()
	return s.shutdown()
}

func (s *Server) start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}
	if err := s.modules.Domain.Start(s.infra.Lifecycle); err != nil {
		return err
	}
	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	// The listener is already up; readiness flips once the hooks finish.
	go func() {
		if err := s.infra.Lifecycle.WaitForStartup(); err != nil {
			s.infra.Logger.Error("subsystems failed to start", "failed", s.infra.Lifecycle.Failed(), "error", err)
			return
		}
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

func (s *Server) shutdown() error {
	timeout := s.cfg.ShutdownTimeoutDuration()
	s.infra.Logger.Info("initiating shutdown", "timeout", timeout.String())

	start := time.Now()
	if err := s.infra.Lifecycle.Shutdown(timeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.infra.Logger.Info("drinkchain stopped", "elapsed", time.Since(start).Round(time.Millisecond).String())
	return nil
}
