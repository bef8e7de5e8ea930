package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/expense-tracker/internal/logger"
	"github.com/MKhiriev/expense-tracker/internal/service"
)

// ServiceName is the name reported by the health service in addition to the
// overall ("") server status.
const ServiceName = "expense-tracker"

// Handler is the root gRPC transport handler.
//
// It currently exposes the standard gRPC health checking protocol, so that
// load balancers and orchestrators can probe the server over gRPC. A handler
// instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. Both the server and [ServiceName] start as SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	healthServer := health.NewServer()
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   healthServer,
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown marks every service NOT_SERVING. Later status updates are ignored.
func (h *Handler) Shutdown() {
	h.logger.Debug().Msg("gRPC health status set to NOT_SERVING")
	h.health.Shutdown()
}
