package handler

import (
	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-auth-keeper/internal/handler/http"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

// Handlers holds one handler per enabled transport. A nil field means the
// transport has no address configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds the HTTP handler when cfg.HTTPAddress is set and the gRPC
// health handler when cfg.GRPCAddress is set.
func NewHandlers(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, metrics, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoTransportHandlers
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Msg("transport handlers ready")

	return handlers, nil
}
