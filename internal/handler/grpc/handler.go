package grpc

import (
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Names of the upstream services reported through grpc.health.v1.
const (
	ClientsAPIService = "clients-api"
	PriceAPIService   = "price-api"
)

// Handler serves the standard gRPC health service. The overall status ("")
// is always SERVING; each upstream has its own named status that the health
// check flips.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler reports every upstream as SERVING until a check says otherwise.
func NewHandler(logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus(ClientsAPIService, healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(PriceAPIService, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: hs,
		logger: logger,
	}
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// SetServing updates the status of one upstream service.
func (h *Handler) SetServing(service string, serving bool) {
	status := healthpb.HealthCheckResponse_SERVING
	if !serving {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.health.SetServingStatus(service, status)
}

// Shutdown reports NOT_SERVING for everything and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
