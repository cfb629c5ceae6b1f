package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-auth-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

const healthRefreshInterval = 5 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	address string
	server  *grpc.Server

	watchCtx  context.Context
	stopWatch context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryInterceptors()...))
	handler.Register(server)

	watchCtx, stopWatch := context.WithCancel(context.Background())

	return &grpcServer{
		handler:   handler,
		address:   cfg.GRPCAddress,
		server:    server,
		watchCtx:  watchCtx,
		stopWatch: stopWatch,
		logger:    logger,
	}
}

func (g *grpcServer) name() string { return "gRPC" }

func (g *grpcServer) serve() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}
	return g.serveListener(listener)
}

func (g *grpcServer) serveListener(listener net.Listener) error {
	go g.handler.WatchHealth(g.watchCtx, healthRefreshInterval)

	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(listener); err != nil && err != grpc.ErrServerStopped {
		return err
	}
	return nil
}

func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopWatch()
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
