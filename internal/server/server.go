package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/expense-tracker/internal/config"
	"github.com/MKhiriev/expense-tracker/internal/handler"
	"github.com/MKhiriev/expense-tracker/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(cfg.RequestTimeout), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer launches every created server and blocks until ctx is cancelled,
// a stop signal (SIGTERM, SIGINT, SIGQUIT) arrives or one server fails. All
// servers are then shut down gracefully within the shutdown timeout.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	for _, srv := range s.servers() {
		group.Go(func() error {
			return srv.RunServer(groupCtx)
		})
	}

	// listen for stop signals
	group.Go(func() error {
		<-groupCtx.Done()
		s.logger.Info().Msg("stopping servers...")

		shutdownCtx, cancel := s.shutdownContext()
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// Shutdown stops every created server, collecting all errors.
func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, srv := range s.servers() {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *server) servers() []Server {
	var servers []Server
	if s.httpServer != nil {
		servers = append(servers, s.httpServer)
	}
	if s.gRPCServer != nil {
		servers = append(servers, s.gRPCServer)
	}
	return servers
}

func (s *server) shutdownContext() (context.Context, context.CancelFunc) {
	if s.shutdownTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.shutdownTimeout)
}
