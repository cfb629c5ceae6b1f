// Package grpc implements the gRPC transport. It exposes the standard
// grpc.health.v1.Health service backed by the application health report.
package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// ServiceName is the name under which the application status is published
// besides the overall ("") status.
const ServiceName = "go-auth-keeper"

const traceIDMetadataKey = "x-trace-id"

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// health publishes serving status to grpc.health.v1 clients.
	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the gRPC services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// UnaryInterceptors returns the interceptors the server must be built with.
func (h *Handler) UnaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{h.withLogging}
}

// RefreshStatus copies the current health report into the gRPC health
// server and returns the published status.
func (h *Handler) RefreshStatus(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if h.services == nil || h.services.HealthService == nil {
		return status
	}

	if report := h.services.HealthService.Check(ctx); report.Status != models.HealthStatusHealthy {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)

	return status
}

// WatchHealth refreshes the published status every interval until ctx is
// done.
func (h *Handler) WatchHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.RefreshStatus(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.RefreshStatus(ctx)
		}
	}
}

// Shutdown marks every service NOT_SERVING so clients drain before the
// server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// withLogging attaches a trace-scoped logger to the call context and logs
// the call outcome.
func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := uuid.NewString()
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 && values[0] != "" {
			traceID = values[0]
		}
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := next(ctx, req)

	event := l.Info()
	if err != nil {
		event = l.Error().Err(err)
	}
	event.Str("method", info.FullMethod).Dur("duration", time.Since(start)).Send()

	return resp, err
}
