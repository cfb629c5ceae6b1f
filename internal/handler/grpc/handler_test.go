package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func startBufServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryInterceptors()...))
	h.Register(srv)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHandler_HealthReflectsReport(t *testing.T) {
	tests := []struct {
		name   string
		report string
		want   healthpb.HealthCheckResponse_ServingStatus
	}{
		{"healthy", models.HealthStatusHealthy, healthpb.HealthCheckResponse_SERVING},
		{"unhealthy", models.HealthStatusUnhealthy, healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			healthSvc := mock.NewMockHealthService(ctrl)
			healthSvc.EXPECT().Check(gomock.Any()).Return(models.HealthCheckResponse{Status: tt.report})

			h := NewHandler(&service.Services{HealthService: healthSvc}, logger.Nop())
			client := startBufServer(t, h)

			assert.Equal(t, tt.want, h.RefreshStatus(context.Background()))

			resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.GetStatus())
		})
	}
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startBufServer(t, h)

	h.Shutdown()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestHandler_WatchHealthStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	healthSvc := mock.NewMockHealthService(ctrl)
	healthSvc.EXPECT().Check(gomock.Any()).Return(models.HealthCheckResponse{Status: models.HealthStatusHealthy}).AnyTimes()

	h := NewHandler(&service.Services{HealthService: healthSvc}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.WatchHealth(ctx, 10*time.Millisecond)
		close(done)
	}()
	cancel()
	<-done
}
