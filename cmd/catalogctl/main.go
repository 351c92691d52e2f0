// Package main is a command line client for the catalog gRPC API.
//
// Usage:
//
//	catalogctl [-addr host:port] <create|list|get|update|delete> [flags]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/gocommerce/catalog/pkg/api/gen/go/product/v1"
	"github.com/gocommerce/catalog/pkg/client/grpc/interceptors"
	"github.com/gocommerce/catalog/pkg/config"
	"github.com/gocommerce/catalog/pkg/config/configloader"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const serviceName = "catalogctl"

const (
	defaultAddr    = "localhost:50051"
	defaultTimeout = 10 * time.Second
)

// clientConfig is loaded from CATALOGCTL_* variables; every field has a default.
type clientConfig struct {
	Catalog config.GrpcClientConfig `koanf:"catalog"`
}

func (c *clientConfig) Validate() error {
	if c.Catalog.Addr == "" {
		c.Catalog.Addr = defaultAddr
	}
	if c.Catalog.Timeout <= 0 {
		c.Catalog.Timeout = defaultTimeout
	}
	c.Catalog.Resilience.ApplyDefaults()
	return c.Catalog.Validate()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		log.Printf("catalogctl: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := configloader.Load[*clientConfig](serviceName)
	if err != nil {
		return err
	}

	global := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	addr := global.String("addr", cfg.Catalog.Addr, "catalog gRPC address")
	if err := global.Parse(args); err != nil {
		return err
	}

	conn, err := grpc.NewClient(
		*addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(
			interceptors.UnaryClientTimeoutInterceptor(cfg.Catalog.Timeout),
			interceptors.NewRetryInterceptor(cfg.Catalog.Resilience.Retry),
			interceptors.NewCircuitBreaker("catalog-cb", cfg.Catalog.Resilience.CircuitBreaker),
		),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return fmt.Errorf("failed to create gRPC client connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	return execute(ctx, pb.NewProductServiceClient(conn), global.Args(), os.Stdout)
}
