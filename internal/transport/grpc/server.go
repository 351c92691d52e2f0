// Package grpc provides the gRPC endpoint of the product catalog.
package grpc

import (
	"context"
	"log/slog"

	perrors "github.com/gocommerce/catalog/internal/errors"
	"github.com/gocommerce/catalog/internal/service"
	pb "github.com/gocommerce/catalog/pkg/api/gen/go/product/v1"
	"google.golang.org/grpc/codes"
)

const internalErrorMessage = "internal error"

// Server adapts ProductService to the RPC contract. Failures travel in the response body
// with success=false and a code, never as a transport error.
type Server struct {
	// Embed the unimplemented server for forward compatibility
	pb.UnimplementedProductServiceServer
	service service.ProductService
	logger  *slog.Logger
}

func NewServer(svc service.ProductService, logger *slog.Logger) *Server {
	return &Server{service: svc, logger: logger.With("component", "grpc-server")}
}

func (s *Server) CreateProduct(ctx context.Context, req *pb.CreateProductRequest) (*pb.CreateProductResponse, error) {
	s.logger.InfoContext(ctx, "received grpc request CreateProduct", "name", req.Name, "admin_id", req.AdminId)
	created, err := s.service.Create(ctx, service.CreateProductDto{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		Image:         req.Image,
		ImageFileName: req.ImageFileName,
		AdminID:       req.AdminId,
	})
	if err != nil {
		code, msg := s.failure(ctx, "CreateProduct", err)
		return &pb.CreateProductResponse{Success: false, Message: msg, Code: code}, nil
	}
	return &pb.CreateProductResponse{
		Success: true,
		Message: "Product created successfully",
		Product: toProto(created),
	}, nil
}

func (s *Server) GetProducts(ctx context.Context, req *pb.GetProductsRequest) (*pb.GetProductsResponse, error) {
	s.logger.InfoContext(ctx, "received grpc request GetProducts")
	found, err := s.service.List(ctx, service.ListFilterDto{
		Category: req.Category,
		IsActive: req.IsActive,
		Search:   req.SearchName,
	})
	if err != nil {
		code, msg := s.failure(ctx, "GetProducts", err)
		return &pb.GetProductsResponse{Success: false, Message: msg, Code: code, Products: []*pb.Product{}}, nil
	}

	products := make([]*pb.Product, 0, len(found))
	for i := range found {
		products = append(products, toProto(&found[i]))
	}
	return &pb.GetProductsResponse{
		Success:  true,
		Message:  "Products retrieved successfully",
		Products: products,
		Total:    int32(len(products)),
	}, nil
}

func (s *Server) GetProductById(ctx context.Context, req *pb.GetProductByIdRequest) (*pb.GetProductByIdResponse, error) {
	s.logger.InfoContext(ctx, "received grpc request GetProductById", "id", req.Id)
	found, err := s.service.GetByID(ctx, req.Id)
	if err != nil {
		code, msg := s.failure(ctx, "GetProductById", err)
		return &pb.GetProductByIdResponse{Success: false, Message: msg, Code: code}, nil
	}
	return &pb.GetProductByIdResponse{
		Success: true,
		Message: "Product found",
		Product: toProto(found),
	}, nil
}

func (s *Server) UpdateProduct(ctx context.Context, req *pb.UpdateProductRequest) (*pb.UpdateProductResponse, error) {
	s.logger.InfoContext(ctx, "received grpc request UpdateProduct", "id", req.Id, "admin_id", req.AdminId)
	updated, err := s.service.Update(ctx, service.UpdateProductDto{
		ID:            req.Id,
		AdminID:       req.AdminId,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		Image:         req.Image,
		ImageFileName: req.ImageFileName,
	})
	if err != nil {
		code, msg := s.failure(ctx, "UpdateProduct", err)
		return &pb.UpdateProductResponse{Success: false, Message: msg, Code: code}, nil
	}
	return &pb.UpdateProductResponse{
		Success: true,
		Message: "Product updated successfully",
		Product: toProto(updated),
	}, nil
}

func (s *Server) DeleteProduct(ctx context.Context, req *pb.DeleteProductRequest) (*pb.DeleteProductResponse, error) {
	s.logger.InfoContext(ctx, "received grpc request DeleteProduct", "id", req.Id, "admin_id", req.AdminId)
	if err := s.service.Delete(ctx, req.Id, req.AdminId); err != nil {
		code, msg := s.failure(ctx, "DeleteProduct", err)
		return &pb.DeleteProductResponse{Success: false, Message: msg, Code: code}, nil
	}
	return &pb.DeleteProductResponse{Success: true, Message: "Product deleted successfully"}, nil
}

// failure maps a service error to the response code and message. Collaborator details stay in the log.
func (s *Server) failure(ctx context.Context, method string, err error) (string, string) {
	code := perrors.Code(err)
	if code == codes.Internal {
		s.logger.ErrorContext(ctx, method+" failed", "error", err)
		return code.String(), internalErrorMessage
	}
	s.logger.WarnContext(ctx, method+" rejected", "code", code.String(), "error", err)
	return code.String(), err.Error()
}

func toProto(p *service.ProductDto) *pb.Product {
	return &pb.Product{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageUrl:    p.ImageURL,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
