package server

import (
	"github.com/gocommerce/catalog/pkg/config"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// RegistrationFunc registers a grpc service with the server.
type RegistrationFunc func(*grpc.Server)

// NewGRPCServer creates a new traced gRPC server with the standard health service,
// optional reflection and the given service registrations.
// A zero MaxRecvMsgSize keeps the grpc default of 4 MiB.
func NewGRPCServer(cfg config.GrpcServerConfig, registerFunc ...RegistrationFunc) *grpc.Server {
	opts := []grpc.ServerOption{grpc.StatsHandler(otelgrpc.NewServerHandler())}
	if cfg.MaxRecvMsgSize > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(cfg.MaxRecvMsgSize))
	}
	grpcServer := grpc.NewServer(opts...)

	healthpb.RegisterHealthServer(grpcServer, health.NewServer())

	if cfg.ReflectionEnabled {
		reflection.Register(grpcServer)
	}

	for _, regFunc := range registerFunc {
		regFunc(grpcServer)
	}

	return grpcServer
}
