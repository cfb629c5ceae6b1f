package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/handler"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

type server struct {
	transports      []transport
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = config.DefaultShutdownTimeout
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s.transports = append(s.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.transports) == 0 {
		return nil, errNoTransports
	}

	return s, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT, then shuts every
// transport down.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, t := range s.transports {
		if err := t.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s shutdown: %w", t.name(), err))
		}
	}
	return errors.Join(errs...)
}

// run serves all transports until ctx is done or one of them fails.
func (s *server) run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, t := range s.transports {
		s.logger.Info().Msgf("Launching %s server", t.name())
		g.Go(t.serve)
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
