// Package app wires the catalog service from its configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gocommerce/catalog/internal/config"
	"github.com/gocommerce/catalog/internal/imagestore"
	"github.com/gocommerce/catalog/internal/service"
	"github.com/gocommerce/catalog/internal/store"
	grpcImpl "github.com/gocommerce/catalog/internal/transport/grpc"
	"github.com/gocommerce/catalog/internal/transport/rest"
	"github.com/gocommerce/catalog/internal/validation"
	pb "github.com/gocommerce/catalog/pkg/api/gen/go/product/v1"
	"github.com/gocommerce/catalog/pkg/bootstrap"
	pkgconfig "github.com/gocommerce/catalog/pkg/config"
	"github.com/gocommerce/catalog/pkg/messaging"
	"github.com/gocommerce/catalog/pkg/nats"
	"github.com/gocommerce/catalog/pkg/server"
	"google.golang.org/grpc"
)

// closeFunc releases one infrastructure client.
type closeFunc func(ctx context.Context) error

// Infrastructure holds the collaborators of the product service and the clients behind them.
type Infrastructure struct {
	Store     store.ProductStore
	Images    imagestore.ImageStore
	Publisher messaging.Publisher
	closers   []closeFunc
}

// Close releases the clients in reverse order of creation.
func (i *Infrastructure) Close(ctx context.Context) error {
	var errs []error
	for idx := len(i.closers) - 1; idx >= 0; idx-- {
		if err := i.closers[idx](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SetupInfrastructure connects the product store, the image store and, when enabled, NATS.
// An unreachable image store is only reported; the service starts anyway.
func SetupInfrastructure(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	infra := &Infrastructure{Publisher: messaging.NopPublisher{}}

	productStore, closeStore, err := NewProductStore(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	infra.Store = productStore
	infra.closers = append(infra.closers, closeStore)

	images, err := newImageStore(ctx, cfg.Images, logger)
	if err != nil {
		_ = infra.Close(ctx)
		return nil, err
	}
	infra.Images = images

	if cfg.NATS.Enabled {
		publisher, closeNats, err := newPublisher(ctx, cfg.NATS)
		if err != nil {
			_ = infra.Close(ctx)
			return nil, err
		}
		infra.Publisher = publisher
		infra.closers = append(infra.closers, closeNats)
		logger.Info("Publishing product events to NATS", slog.String("stream", nats.ProductsStream))
	}
	return infra, nil
}

// NewProductStore opens the store selected by cfg.Driver and prepares its schema.
func NewProductStore(ctx context.Context, cfg pkgconfig.DatabaseConfig, logger *slog.Logger) (store.ProductStore, closeFunc, error) {
	switch cfg.Driver {
	case pkgconfig.DriverPostgres:
		if cfg.Migrate {
			if err := store.Migrate(cfg.URL); err != nil {
				return nil, nil, err
			}
			logger.Info("Database migrations applied")
		}
		dbPool, err := bootstrap.NewDbPool(ctx, cfg.URL, cfg.Timeout)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Successfully connected to PostgreSQL!")
		return store.NewPgStore(dbPool), func(context.Context) error {
			dbPool.Close()
			return nil
		}, nil
	case pkgconfig.DriverMongo:
		client, err := bootstrap.NewMongoClient(ctx, cfg.URL, cfg.Timeout)
		if err != nil {
			return nil, nil, err
		}
		mongoStore := store.NewMongoStore(client.Database(cfg.Name).Collection(cfg.Collection))
		indexCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
		if err := mongoStore.EnsureIndexes(indexCtx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		logger.Info("Successfully connected to MongoDB!", slog.String("collection", cfg.Collection))
		return mongoStore, client.Disconnect, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func newImageStore(ctx context.Context, cfg pkgconfig.ImagesConfig, logger *slog.Logger) (*imagestore.MinioStore, error) {
	client, err := bootstrap.NewMinioClient(cfg)
	if err != nil {
		return nil, err
	}
	images := imagestore.NewMinioStore(client, cfg.Bucket, cfg.Folder, cfg.PublicURL)

	checkCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := images.Ping(checkCtx); err != nil {
		logger.Warn("Image storage is unreachable, uploads will fail until it answers", slog.Any("error", err))
		return images, nil
	}
	if err := images.EnsureBucket(checkCtx); err != nil {
		logger.Warn("Image bucket is not ready", slog.Any("error", err))
	}
	return images, nil
}

func newPublisher(ctx context.Context, cfg pkgconfig.NATSConfig) (*nats.NatsPublisher, closeFunc, error) {
	nc, err := nats.NewClient(cfg.Url, "catalog", cfg.Timeout)
	if err != nil {
		return nil, nil, err
	}
	js, err := nats.NewJetStreamContext(nc)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}
	publisher := nats.NewNatsPublisher(js)
	streamCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := publisher.EnsureStream(streamCtx); err != nil {
		nc.Close()
		return nil, nil, err
	}
	return publisher, func(context.Context) error {
		return nc.Drain()
	}, nil
}

type Dependencies struct {
	ProductService service.ProductService
	Metrics        http.Handler
	Logger         *slog.Logger
}

func SetupDependencies(infra *Infrastructure, metrics http.Handler, logger *slog.Logger) *Dependencies {
	pService := service.NewService(infra.Store, infra.Images,
		service.WithPublisher(infra.Publisher),
		service.WithLogger(logger),
	)

	return &Dependencies{
		ProductService: pService,
		Metrics:        metrics,
		Logger:         logger,
	}
}

// SetupHttpHandler builds the router with the REST routes and, when present, /metrics.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	productHandler := rest.NewHandler(deps.ProductService, deps.Logger)
	productHandler.RegisterRoutes(mux)
	if deps.Metrics != nil {
		mux.Method(http.MethodGet, "/metrics", deps.Metrics)
	}
}

// SetupHttpServer creates and configures an HTTP server for the catalog.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)
	return server.NewHTTPServer(cfg.HTTPServer, "catalog-http", mux)
}

// minGrpcRecvMsgSize fits the largest accepted image plus the other request fields.
const minGrpcRecvMsgSize = validation.MaxImageSize + 1<<20

// SetupGrpcServer initializes the gRPC server of the catalog.
// The receive limit is raised to minGrpcRecvMsgSize when configured lower.
func SetupGrpcServer(deps *Dependencies, cfg pkgconfig.GrpcServerConfig) *grpc.Server {
	cfg.MaxRecvMsgSize = max(cfg.MaxRecvMsgSize, minGrpcRecvMsgSize)
	productRegisterFunc := func(s *grpc.Server) {
		pb.RegisterProductServiceServer(s, grpcImpl.NewServer(deps.ProductService, deps.Logger))
	}
	return server.NewGRPCServer(cfg, productRegisterFunc)
}
