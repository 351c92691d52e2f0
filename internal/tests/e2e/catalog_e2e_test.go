// Package e2e runs the catalog against real MongoDB and MinIO containers started with testcontainers-go.
// The HTTP API is served by an httptest.Server and the gRPC API over an in-memory listener,
// both wired exactly as the service process wires them.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gocommerce/catalog/internal/app"
	"github.com/gocommerce/catalog/internal/imagestore"
	"github.com/gocommerce/catalog/internal/service"
	"github.com/gocommerce/catalog/internal/store"
	pb "github.com/gocommerce/catalog/pkg/api/gen/go/product/v1"
	"github.com/gocommerce/catalog/pkg/bootstrap"
	"github.com/gocommerce/catalog/pkg/config"
	"github.com/gocommerce/catalog/pkg/messaging"
	"github.com/gocommerce/catalog/pkg/web"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	tcminio "github.com/testcontainers/testcontainers-go/modules/minio"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

// skipE2ETests is the environment variable that can be set to skip E2E tests.
const skipE2ETests = "CATALOG_SKIP_E2E_TESTS"

const (
	productURL = "/api/v1/products"
	bucket     = "catalog"
	adminID    = "123e4567-e89b-42d3-a456-426614174000"
)

// 1x1 transparent PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

// CatalogE2ESuite drives both APIs of the catalog against real storage.
type CatalogE2ESuite struct {
	suite.Suite
	mongoContainer *mongodb.MongoDBContainer
	minioContainer *tcminio.MinioContainer
	mongoClient    *mongo.Client
	collection     *mongo.Collection
	minioClient    *minio.Client
	publicURL      string

	server     *httptest.Server
	grpcServer *grpc.Server
	grpcConn   *grpc.ClientConn
	client     pb.ProductServiceClient

	logger *slog.Logger
	ctx    context.Context
}

func (s *CatalogE2ESuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	var err error

	// 1. MongoDB holds the products
	s.mongoContainer, err = mongodb.Run(s.ctx, "mongo:7")
	require.NoError(s.T(), err, "Failed to run MongoDB container")
	mongoURL, err := s.mongoContainer.ConnectionString(s.ctx)
	require.NoError(s.T(), err)
	s.mongoClient, err = bootstrap.NewMongoClient(s.ctx, mongoURL, 30*time.Second)
	require.NoError(s.T(), err, "Failed to connect to MongoDB")
	s.collection = s.mongoClient.Database("catalog").Collection("products")
	productStore := store.NewMongoStore(s.collection)
	require.NoError(s.T(), productStore.EnsureIndexes(s.ctx))

	// 2. MinIO holds the images
	s.minioContainer, err = tcminio.Run(s.ctx,
		"minio/minio:RELEASE.2024-01-16T16-07-38Z",
		tcminio.WithUsername("catalog"),
		tcminio.WithPassword("catalog-secret"),
	)
	require.NoError(s.T(), err, "Failed to run MinIO container")
	endpoint, err := s.minioContainer.ConnectionString(s.ctx)
	require.NoError(s.T(), err)
	s.publicURL = "http://" + endpoint
	s.minioClient, err = bootstrap.NewMinioClient(config.ImagesConfig{
		Endpoint:  endpoint,
		AccessKey: s.minioContainer.Username,
		SecretKey: s.minioContainer.Password,
	})
	require.NoError(s.T(), err)
	images := imagestore.NewMinioStore(s.minioClient, bucket, "catalog/products", s.publicURL)
	require.NoError(s.T(), images.EnsureBucket(s.ctx))

	// 3. Wire the application
	infra := &app.Infrastructure{Store: productStore, Images: images, Publisher: messaging.NopPublisher{}}
	deps := app.SetupDependencies(infra, nil, s.logger)
	s.server = httptest.NewServer(app.SetupHttpHandler(deps))

	lis := bufconn.Listen(1024 * 1024)
	s.grpcServer = app.SetupGrpcServer(deps, config.GrpcServerConfig{})
	go func() {
		_ = s.grpcServer.Serve(lis)
	}()
	s.grpcConn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(s.T(), err)
	s.client = pb.NewProductServiceClient(s.grpcConn)
	s.logger.Info("E2E catalog started", "url", s.server.URL)
}

func (s *CatalogE2ESuite) TearDownSuite() {
	if s.grpcConn != nil {
		_ = s.grpcConn.Close()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.server != nil {
		s.server.Close()
	}
	if s.mongoClient != nil {
		_ = s.mongoClient.Disconnect(s.ctx)
	}
	if s.mongoContainer != nil {
		if err := s.mongoContainer.Terminate(s.ctx); err != nil {
			s.logger.Warn("Failed to terminate E2E MongoDB container", "error", err)
		}
	}
	if s.minioContainer != nil {
		if err := s.minioContainer.Terminate(s.ctx); err != nil {
			s.logger.Warn("Failed to terminate E2E MinIO container", "error", err)
		}
	}
}

// SetupTest removes every product and every stored image.
func (s *CatalogE2ESuite) SetupTest() {
	_, err := s.collection.DeleteMany(s.ctx, bson.D{})
	require.NoError(s.T(), err)
	for _, key := range s.objectKeys() {
		require.NoError(s.T(), s.minioClient.RemoveObject(s.ctx, bucket, key, minio.RemoveObjectOptions{}))
	}
}

func TestCatalogE2E(t *testing.T) {
	if os.Getenv(skipE2ETests) == "1" {
		t.Skip("Skipping E2E tests based on " + skipE2ETests + " env var")
	}
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(CatalogE2ESuite))
}

func (s *CatalogE2ESuite) TestProductLifecycle() {
	// create over HTTP
	created, status := s.createOverHTTP("Widget", "widget.png")
	s.Require().Equal(http.StatusCreated, status)
	firstKey := s.keyOf(created.ImageURL)
	s.Equal([]string{firstKey}, s.objectKeys())

	// read over gRPC
	found, err := s.client.GetProductById(s.ctx, &pb.GetProductByIdRequest{Id: created.ID})
	s.Require().NoError(err)
	s.Require().True(found.Success)
	s.Equal("Widget", found.Product.Name)
	s.Equal(created.CreatedAt, found.Product.CreatedAt)

	// replace the image over gRPC
	name := "Gadget"
	updated, err := s.client.UpdateProduct(s.ctx, &pb.UpdateProductRequest{
		Id:            created.ID,
		AdminId:       adminID,
		Name:          &name,
		Image:         pngPixel,
		ImageFileName: "gadget.png",
	})
	s.Require().NoError(err)
	s.Require().True(updated.Success, updated.Message)
	s.Equal("Gadget", updated.Product.Name)
	s.Greater(updated.Product.UpdatedAt, found.Product.UpdatedAt)
	s.Equal([]string{s.keyOf(updated.Product.ImageUrl)}, s.objectKeys(), "the superseded image is removed")

	// soft delete over HTTP
	s.Equal(http.StatusNoContent, s.deleteOverHTTP(created.ID))
	s.Equal(http.StatusConflict, s.deleteOverHTTP(created.ID))

	deleted, err := s.client.GetProductById(s.ctx, &pb.GetProductByIdRequest{Id: created.ID})
	s.Require().NoError(err)
	s.Require().True(deleted.Success)
	s.False(deleted.Product.IsActive)

	inactive, err := s.client.GetProducts(s.ctx, &pb.GetProductsRequest{IsActive: ptr(false)})
	s.Require().NoError(err)
	s.Require().Equal(int32(1), inactive.Total)
	s.Equal(created.ID, inactive.Products[0].Id)
}

func (s *CatalogE2ESuite) TestNameIsReusableAfterDelete() {
	first, status := s.createOverHTTP("Widget", "widget.png")
	s.Require().Equal(http.StatusCreated, status)

	_, status = s.createOverHTTP("  Widget ", "widget.png")
	s.Equal(http.StatusConflict, status)
	s.Len(s.objectKeys(), 1, "a rejected duplicate leaves no image behind")

	s.Require().Equal(http.StatusNoContent, s.deleteOverHTTP(first.ID))
	second, status := s.createOverHTTP("Widget", "widget.png")
	s.Require().Equal(http.StatusCreated, status)
	s.NotEqual(first.ID, second.ID)
}

func (s *CatalogE2ESuite) TestInvalidCreateUploadsNothing() {
	res, err := s.client.CreateProduct(s.ctx, &pb.CreateProductRequest{
		Name:          "Widget",
		Description:   "A generic widget item",
		Price:         -1,
		Category:      "Tools",
		Image:         pngPixel,
		ImageFileName: "widget.png",
		AdminId:       adminID,
	})

	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal("InvalidArgument", res.Code)
	s.Empty(s.objectKeys())
}

func (s *CatalogE2ESuite) TestSearchTreatsPatternsLiterally() {
	_, status := s.createOverHTTP("Mug 50% off", "mug.png")
	s.Require().Equal(http.StatusCreated, status)
	_, status = s.createOverHTTP("Mug 500", "mug.png")
	s.Require().Equal(http.StatusCreated, status)

	res, err := s.client.GetProducts(s.ctx, &pb.GetProductsRequest{SearchName: ptr("50%")})

	s.Require().NoError(err)
	s.Require().Equal(int32(1), res.Total)
	s.Equal("Mug 50% off", res.Products[0].Name)
}

// --------------------------------------------------------------------------
// ------------------------------- helpers ----------------------------------
// --------------------------------------------------------------------------

func (s *CatalogE2ESuite) createOverHTTP(name, fileName string) (service.ProductDto, int) {
	s.T().Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fields := map[string]string{
		"name":        name,
		"description": "A product created by the end to end suite",
		"price":       "19.99",
		"category":    "Tools",
	}
	for k, v := range fields {
		s.Require().NoError(mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("image", fileName)
	s.Require().NoError(err)
	_, err = part.Write(pngPixel)
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req, err := http.NewRequestWithContext(s.ctx, http.MethodPost, s.server.URL+productURL, body)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(web.XAdminId, adminID)

	res, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer func() { _ = res.Body.Close() }()

	var dto service.ProductDto
	if res.StatusCode == http.StatusCreated {
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&dto))
	} else {
		_, _ = io.Copy(io.Discard, res.Body)
	}
	return dto, res.StatusCode
}

func (s *CatalogE2ESuite) deleteOverHTTP(id string) int {
	s.T().Helper()
	req, err := http.NewRequestWithContext(s.ctx, http.MethodDelete, s.server.URL+productURL+"/"+id, nil)
	s.Require().NoError(err)
	req.Header.Set(web.XAdminId, adminID)
	res, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	_ = res.Body.Close()
	return res.StatusCode
}

// keyOf extracts the object key from a public image URL.
func (s *CatalogE2ESuite) keyOf(url string) string {
	prefix := s.publicURL + "/" + bucket + "/"
	s.Require().True(strings.HasPrefix(url, prefix), url)
	return strings.TrimPrefix(url, prefix)
}

func (s *CatalogE2ESuite) objectKeys() []string {
	var keys []string
	for obj := range s.minioClient.ListObjects(s.ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		s.Require().NoError(obj.Err)
		keys = append(keys, obj.Key)
	}
	return keys
}

func ptr[T any](v T) *T {
	return &v
}
