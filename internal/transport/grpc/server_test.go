package grpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"testing"

	perrors "github.com/gocommerce/catalog/internal/errors"
	"github.com/gocommerce/catalog/internal/service"
	pb "github.com/gocommerce/catalog/pkg/api/gen/go/product/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/reflect/protoregistry"
)

const (
	productID = "0f8fad5b-d9cb-469f-a165-70867728950e"
	adminID   = "123e4567-e89b-42d3-a456-426614174000"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, dto service.CreateProductDto) (*service.ProductDto, error) {
	args := m.Called(ctx, dto)
	var product *service.ProductDto
	if args.Get(0) != nil {
		product = args.Get(0).(*service.ProductDto)
	}
	return product, args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, filter service.ListFilterDto) ([]service.ProductDto, error) {
	args := m.Called(ctx, filter)
	var products []service.ProductDto
	if args.Get(0) != nil {
		products = args.Get(0).([]service.ProductDto)
	}
	return products, args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*service.ProductDto, error) {
	args := m.Called(ctx, id)
	var product *service.ProductDto
	if args.Get(0) != nil {
		product = args.Get(0).(*service.ProductDto)
	}
	return product, args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, dto service.UpdateProductDto) (*service.ProductDto, error) {
	args := m.Called(ctx, dto)
	var product *service.ProductDto
	if args.Get(0) != nil {
		product = args.Get(0).(*service.ProductDto)
	}
	return product, args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id, adminID string) error {
	args := m.Called(ctx, id, adminID)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleProduct() *service.ProductDto {
	return &service.ProductDto{
		ID:          productID,
		Name:        "Widget",
		Description: "A generic widget item",
		Price:       19.99,
		Category:    "Tools",
		ImageURL:    "http://images.local/products/w.jpg",
		IsActive:    true,
		CreatedAt:   "2025-03-14T09:26:53.589Z",
		UpdatedAt:   "2025-03-14T09:26:53.589Z",
	}
}

func TestServer_CreateProduct(t *testing.T) {
	ctx := context.Background()
	req := &pb.CreateProductRequest{
		Name:          "Widget",
		Description:   "A generic widget item",
		Price:         19.99,
		Category:      "Tools",
		Image:         []byte{0xff, 0xd8},
		ImageFileName: "w.jpg",
		AdminId:       adminID,
	}
	wantDto := service.CreateProductDto{
		Name:          "Widget",
		Description:   "A generic widget item",
		Price:         19.99,
		Category:      "Tools",
		Image:         []byte{0xff, 0xd8},
		ImageFileName: "w.jpg",
		AdminID:       adminID,
	}

	testCases := []struct {
		name        string
		mockProduct *service.ProductDto
		mockError   error
		wantSuccess bool
		wantCode    string
		wantMessage string
	}{
		{
			name:        "success",
			mockProduct: sampleProduct(),
			wantSuccess: true,
			wantMessage: "Product created successfully",
		},
		{
			name:        "duplicate name",
			mockError:   fmt.Errorf("%w: an active product named %q already exists", perrors.ErrDuplicateName, "Widget"),
			wantCode:    "AlreadyExists",
			wantMessage: `product name already exists: an active product named "Widget" already exists`,
		},
		{
			name:        "collaborator details are hidden",
			mockError:   fmt.Errorf("%w: %w", perrors.ErrImageStore, errors.New("secret bucket name")),
			wantCode:    "Internal",
			wantMessage: "internal error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockSvc := new(MockProductService)
			server := NewServer(mockSvc, discardLogger())
			mockSvc.On("Create", mock.Anything, wantDto).Return(tc.mockProduct, tc.mockError)

			// when
			res, err := server.CreateProduct(ctx, req)

			// then
			require.NoError(t, err)
			assert.Equal(t, tc.wantSuccess, res.Success)
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantMessage, res.Message)
			if tc.wantSuccess {
				require.NotNil(t, res.Product)
				assert.Equal(t, productID, res.Product.Id)
				assert.Equal(t, "http://images.local/products/w.jpg", res.Product.ImageUrl)
				assert.Equal(t, "2025-03-14T09:26:53.589Z", res.Product.CreatedAt)
			} else {
				assert.Nil(t, res.Product)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestServer_GetProducts(t *testing.T) {
	ctx := context.Background()
	inactive := false
	category := "Tools"

	t.Run("success", func(t *testing.T) {
		// given
		mockSvc := new(MockProductService)
		server := NewServer(mockSvc, discardLogger())
		mockSvc.On("List", mock.Anything, service.ListFilterDto{Category: &category, IsActive: &inactive}).
			Return([]service.ProductDto{*sampleProduct(), *sampleProduct()}, nil)

		// when
		res, err := server.GetProducts(ctx, &pb.GetProductsRequest{Category: &category, IsActive: &inactive})

		// then
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, int32(2), res.Total)
		assert.Len(t, res.Products, 2)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty result is a success", func(t *testing.T) {
		mockSvc := new(MockProductService)
		server := NewServer(mockSvc, discardLogger())
		mockSvc.On("List", mock.Anything, service.ListFilterDto{}).Return([]service.ProductDto{}, nil)

		res, err := server.GetProducts(ctx, &pb.GetProductsRequest{})

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, int32(0), res.Total)
		assert.NotNil(t, res.Products)
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc := new(MockProductService)
		server := NewServer(mockSvc, discardLogger())
		mockSvc.On("List", mock.Anything, service.ListFilterDto{}).Return(nil, perrors.ErrStore)

		res, err := server.GetProducts(ctx, &pb.GetProductsRequest{})

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "Internal", res.Code)
		assert.Equal(t, "internal error", res.Message)
	})
}

func TestServer_GetProductById(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		mockProduct *service.ProductDto
		mockError   error
		wantCode    string
	}{
		{name: "success", mockProduct: sampleProduct()},
		{name: "not found", mockError: perrors.ErrProductNotFound, wantCode: "NotFound"},
		{name: "malformed id", mockError: fmt.Errorf("%w: product id is not valid", perrors.ErrValidation), wantCode: "InvalidArgument"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockSvc := new(MockProductService)
			server := NewServer(mockSvc, discardLogger())
			mockSvc.On("GetByID", mock.Anything, productID).Return(tc.mockProduct, tc.mockError)

			// when
			res, err := server.GetProductById(ctx, &pb.GetProductByIdRequest{Id: productID})

			// then
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode == "", res.Success)
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.mockProduct != nil, res.Product != nil)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestServer_UpdateProduct(t *testing.T) {
	// given
	ctx := context.Background()
	price := 42.5
	mockSvc := new(MockProductService)
	server := NewServer(mockSvc, discardLogger())
	updated := sampleProduct()
	updated.Price = price
	mockSvc.On("Update", mock.Anything, service.UpdateProductDto{ID: productID, AdminID: adminID, Price: &price}).
		Return(updated, nil)

	// when
	res, err := server.UpdateProduct(ctx, &pb.UpdateProductRequest{Id: productID, AdminId: adminID, Price: &price})

	// then
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 42.5, res.Product.Price)
	mockSvc.AssertExpectations(t)
}

func TestServer_DeleteProduct(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		mockError   error
		wantSuccess bool
		wantCode    string
	}{
		{name: "success", wantSuccess: true},
		{name: "already inactive", mockError: perrors.ErrAlreadyInactive, wantCode: "FailedPrecondition"},
		{name: "invalid admin", mockError: perrors.ErrInvalidAdminID, wantCode: "InvalidArgument"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := new(MockProductService)
			server := NewServer(mockSvc, discardLogger())
			mockSvc.On("Delete", mock.Anything, productID, adminID).Return(tc.mockError)

			res, err := server.DeleteProduct(ctx, &pb.DeleteProductRequest{Id: productID, AdminId: adminID})

			require.NoError(t, err)
			assert.Equal(t, tc.wantSuccess, res.Success)
			assert.Equal(t, tc.wantCode, res.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}

// TestServer_OverBufconn exercises the service descriptor, the proto codec and the client end to end.
func TestServer_OverBufconn(t *testing.T) {
	// given
	lis := bufconn.Listen(1024 * 1024)
	mockSvc := new(MockProductService)
	grpcServer := grpc.NewServer()
	pb.RegisterProductServiceServer(grpcServer, NewServer(mockSvc, discardLogger()))
	go func() {
		_ = grpcServer.Serve(lis)
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	client := pb.NewProductServiceClient(conn)

	name := "Gadget"
	mockSvc.On("Update", mock.Anything, service.UpdateProductDto{
		ID:            productID,
		AdminID:       adminID,
		Name:          &name,
		Image:         []byte{1, 2, 3},
		ImageFileName: "g.png",
	}).Return(sampleProduct(), nil)
	mockSvc.On("GetByID", mock.Anything, productID).Return(nil, perrors.ErrProductNotFound)
	inactive := false
	mockSvc.On("List", mock.Anything, service.ListFilterDto{IsActive: &inactive}).Return([]service.ProductDto{}, nil)

	// when
	updated, err := client.UpdateProduct(context.Background(), &pb.UpdateProductRequest{
		Id:            productID,
		AdminId:       adminID,
		Name:          &name,
		Image:         []byte{1, 2, 3},
		ImageFileName: "g.png",
	})

	// then
	require.NoError(t, err)
	assert.True(t, updated.Success)
	assert.Equal(t, "Widget", updated.Product.Name)

	// when
	missing, err := client.GetProductById(context.Background(), &pb.GetProductByIdRequest{Id: productID})

	// then
	require.NoError(t, err)
	assert.False(t, missing.Success)
	assert.Equal(t, "NotFound", missing.Code)
	assert.Nil(t, missing.Product)

	// when
	listed, err := client.GetProducts(context.Background(), &pb.GetProductsRequest{IsActive: &inactive})

	// then
	require.NoError(t, err)
	assert.True(t, listed.Success)
	mockSvc.AssertExpectations(t)
}

func TestServer_InvokeWithDefaultCodec(t *testing.T) {
	// given
	lis := bufconn.Listen(1024 * 1024)
	mockSvc := new(MockProductService)
	grpcServer := grpc.NewServer()
	pb.RegisterProductServiceServer(grpcServer, NewServer(mockSvc, discardLogger()))
	go func() {
		_ = grpcServer.Serve(lis)
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	mockSvc.On("GetByID", mock.Anything, productID).Return(sampleProduct(), nil)

	// when
	res := &pb.GetProductByIdResponse{}
	err = conn.Invoke(context.Background(), pb.ProductService_GetProductById_FullMethodName,
		&pb.GetProductByIdRequest{Id: productID}, res)

	// then
	require.NoError(t, err)
	assert.True(t, res.GetSuccess())
	assert.Equal(t, productID, res.GetProduct().GetId())
	assert.True(t, res.GetProduct().GetIsActive())
	mockSvc.AssertExpectations(t)
}

func TestProductServiceDescriptor_IsRegistered(t *testing.T) {
	fd, err := protoregistry.GlobalFiles.FindFileByPath(pb.ProductService_ServiceDesc.Metadata.(string))
	require.NoError(t, err)

	svc := fd.Services().ByName("ProductService")
	require.NotNil(t, svc)
	assert.Equal(t, pb.ProductService_ServiceDesc.ServiceName, string(svc.FullName()))
	assert.Equal(t, len(pb.ProductService_ServiceDesc.Methods), svc.Methods().Len())

	update := fd.Messages().ByName("UpdateProductRequest")
	require.NotNil(t, update)
	assert.True(t, update.Fields().ByName("price").HasPresence())
	assert.False(t, update.Fields().ByName("image").HasPresence())
}
