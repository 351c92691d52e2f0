// Package service provides the implementation of product catalog business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gocommerce/catalog/internal/domain"
	perrors "github.com/gocommerce/catalog/internal/errors"
	"github.com/gocommerce/catalog/internal/imagestore"
	"github.com/gocommerce/catalog/internal/store"
	"github.com/gocommerce/catalog/internal/validation"
	"github.com/gocommerce/catalog/pkg/messaging"
	"github.com/gocommerce/catalog/pkg/messaging/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
)

// ProductService defines the methods for managing catalog products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// Create validates and stores a new product together with its image.
	// Returns ErrInvalidAdminID, ErrValidation, ErrDuplicateName, ErrImageStore or ErrStore.
	Create(ctx context.Context, product CreateProductDto) (*ProductDto, error)

	// List returns every product matching the filter, newest first.
	// Returns an empty slice if no products match.
	List(ctx context.Context, filter ListFilterDto) ([]ProductDto, error)

	// GetByID retrieves a single product, active or not.
	// Returns ErrProductNotFound if no product exists with the given ID.
	GetByID(ctx context.Context, id string) (*ProductDto, error)

	// Update changes the fields present in the request.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, product UpdateProductDto) (*ProductDto, error)

	// Delete soft-deletes a product.
	// Returns ErrAlreadyInactive if the product was already deleted.
	Delete(ctx context.Context, id, adminID string) error
}

// ProductDto is the wire representation of a product.
type ProductDto = domain.WireProduct

// CreateProductDto represents the data transfer object for creating a new product.
type CreateProductDto struct {
	Name          string
	Description   string
	Price         float64
	Category      string
	Image         []byte
	ImageFileName string
	AdminID       string
}

// UpdateProductDto represents a partial product change. Nil fields and an empty Image are left untouched.
type UpdateProductDto struct {
	ID            string
	AdminID       string
	Name          *string
	Description   *string
	Price         *float64
	Category      *string
	Image         []byte
	ImageFileName string
}

// ListFilterDto narrows a product listing. Nil fields do not filter.
type ListFilterDto struct {
	Category *string
	IsActive *bool
	Search   *string
}

// Service implements ProductService on top of a ProductStore and an ImageStore.
type Service struct {
	store     store.ProductStore
	images    imagestore.ImageStore
	publisher messaging.Publisher
	logger    *slog.Logger
	now       func() time.Time

	productsCreated metric.Int64Counter
	cleanupFailures metric.Int64Counter
}

// Option customizes a Service.
type Option func(*Service)

// WithPublisher sets the publisher product events go to. Events are dropped by default.
func WithPublisher(p messaging.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new instance of ProductService with the provided stores.
func NewService(productStore store.ProductStore, images imagestore.ImageStore, opts ...Option) *Service {
	s := &Service{
		store:     productStore,
		images:    images,
		publisher: messaging.NopPublisher{},
		logger:    slog.Default(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "product-service")

	meter := otel.Meter("catalog-service")
	var err error
	s.productsCreated, err = meter.Int64Counter("products_created", metric.WithDescription("Total number of created products"))
	if err != nil {
		panic(fmt.Sprintf("failed to create products_created counter: %v", err))
	}
	s.cleanupFailures, err = meter.Int64Counter("image_cleanup_failures", metric.WithDescription("Images that could not be deleted after a failed or superseding write"))
	if err != nil {
		panic(fmt.Sprintf("failed to create image_cleanup_failures counter: %v", err))
	}
	return s
}

// Create validates the request, uploads the image and stores the product.
// The uploaded image is removed again when the product never reaches the store.
func (s *Service) Create(ctx context.Context, dto CreateProductDto) (*ProductDto, error) {
	if err := checkAdmin(dto.AdminID); err != nil {
		return nil, err
	}
	for _, res := range []func() validation.Result{
		func() validation.Result { return validation.ValidateName(dto.Name) },
		func() validation.Result { return validation.ValidateDescription(dto.Description) },
		func() validation.Result { return validation.ValidatePrice(dto.Price) },
		func() validation.Result { return validation.ValidateCategory(dto.Category) },
		func() validation.Result { return validation.ValidateImage(dto.Image, dto.ImageFileName) },
	} {
		if err := invalid(res()); err != nil {
			return nil, err
		}
	}

	name := validation.SanitizeText(dto.Name)
	if err := s.checkNameAvailable(ctx, name, ""); err != nil {
		return nil, err
	}

	img, err := s.images.Upload(ctx, dto.Image, dto.ImageFileName)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to upload image: %w", perrors.ErrImageStore, err)
	}

	product := domain.NewProduct(domain.ProductData{
		Name:        name,
		Description: validation.SanitizeText(dto.Description),
		Price:       dto.Price,
		Category:    validation.SanitizeText(dto.Category),
		ImageURL:    img.URL,
		ImageID:     img.ID,
	}, s.now())
	if errs := product.Validate(); len(errs) > 0 {
		s.discardImage(ctx, img.ID, "create rejected")
		return nil, fmt.Errorf("%w: %s", perrors.ErrValidation, strings.Join(errs, "; "))
	}

	if err := s.store.Insert(ctx, product.ToRecord()); err != nil {
		s.discardImage(ctx, img.ID, "create not persisted")
		if errors.Is(err, perrors.ErrDuplicateName) {
			return nil, duplicateName(name)
		}
		return nil, fmt.Errorf("%w: %w", perrors.ErrStore, err)
	}

	s.productsCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("category", product.Category)))
	s.logger.InfoContext(ctx, "Product created", "id", product.ID, "name", product.Name, "admin_id", dto.AdminID)
	s.publish(ctx, events.NewProductCreated(s.event(product, dto.AdminID)))

	wire := product.ToWire()
	return &wire, nil
}

// List returns the products matching the sanitized filter, newest first.
func (s *Service) List(ctx context.Context, filter ListFilterDto) ([]ProductDto, error) {
	records, err := s.store.Find(ctx, store.Filter{
		Category: sanitized(filter.Category),
		IsActive: filter.IsActive,
		Search:   sanitized(filter.Search),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", perrors.ErrStore, err)
	}

	products := make([]ProductDto, len(records))
	for i, r := range records {
		products[i] = domain.FromRecord(r).ToWire()
	}
	return products, nil
}

// GetByID retrieves a product by its ID, including soft-deleted ones.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) GetByID(ctx context.Context, id string) (*ProductDto, error) {
	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	wire := product.ToWire()
	return &wire, nil
}

// Update applies the present fields of the request to an existing product.
// A new image replaces the old one, which is removed only after the product points at the new image.
func (s *Service) Update(ctx context.Context, dto UpdateProductDto) (*ProductDto, error) {
	if err := checkAdmin(dto.AdminID); err != nil {
		return nil, err
	}
	product, err := s.load(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	var updates domain.Updates
	if dto.Name != nil {
		if err := invalid(validation.ValidateName(*dto.Name)); err != nil {
			return nil, err
		}
		name := validation.SanitizeText(*dto.Name)
		if name != product.Name && product.IsActive {
			if err := s.checkNameAvailable(ctx, name, product.ID); err != nil {
				return nil, err
			}
		}
		updates.Name = &name
	}
	if dto.Description != nil {
		if err := invalid(validation.ValidateDescription(*dto.Description)); err != nil {
			return nil, err
		}
		description := validation.SanitizeText(*dto.Description)
		updates.Description = &description
	}
	if dto.Price != nil {
		if err := invalid(validation.ValidatePrice(*dto.Price)); err != nil {
			return nil, err
		}
		updates.Price = dto.Price
	}
	if dto.Category != nil {
		if err := invalid(validation.ValidateCategory(*dto.Category)); err != nil {
			return nil, err
		}
		category := validation.SanitizeText(*dto.Category)
		updates.Category = &category
	}

	var uploaded *imagestore.Image
	if len(dto.Image) > 0 {
		if err := invalid(validation.ValidateImage(dto.Image, dto.ImageFileName)); err != nil {
			return nil, err
		}
		img, err := s.images.Upload(ctx, dto.Image, dto.ImageFileName)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to upload image: %w", perrors.ErrImageStore, err)
		}
		uploaded = &img
		updates.ImageURL = &img.URL
		updates.ImageID = &img.ID
	}

	previousImageID := product.ImageID
	product.ApplyUpdates(updates, s.now())
	if errs := product.Validate(); len(errs) > 0 {
		if uploaded != nil {
			s.discardImage(ctx, uploaded.ID, "update rejected")
		}
		return nil, fmt.Errorf("%w: %s", perrors.ErrValidation, strings.Join(errs, "; "))
	}

	if err := s.store.Update(ctx, product.ToRecord()); err != nil {
		if uploaded != nil {
			s.discardImage(ctx, uploaded.ID, "update not persisted")
		}
		switch {
		case errors.Is(err, perrors.ErrDuplicateName):
			return nil, duplicateName(product.Name)
		case errors.Is(err, perrors.ErrProductNotFound):
			return nil, fmt.Errorf("%w: %s", perrors.ErrProductNotFound, product.ID)
		}
		return nil, fmt.Errorf("%w: %w", perrors.ErrStore, err)
	}
	if uploaded != nil && previousImageID != "" {
		s.discardImage(ctx, previousImageID, "image replaced")
	}

	s.logger.InfoContext(ctx, "Product updated", "id", product.ID, "admin_id", dto.AdminID)
	s.publish(ctx, events.NewProductUpdated(s.event(product, dto.AdminID)))

	wire := product.ToWire()
	return &wire, nil
}

// Delete soft-deletes a product, writing only its activity flag and update time.
// Returns ErrAlreadyInactive if the product is already inactive; its update time is then left as is.
func (s *Service) Delete(ctx context.Context, id, adminID string) error {
	if err := checkAdmin(adminID); err != nil {
		return err
	}
	product, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !product.IsActive {
		return fmt.Errorf("%w: %s", perrors.ErrAlreadyInactive, id)
	}

	product.SoftDelete(s.now())
	if err := s.store.Deactivate(ctx, product.ID, product.UpdatedAt); err != nil {
		if errors.Is(err, perrors.ErrAlreadyInactive) {
			return fmt.Errorf("%w: %s", perrors.ErrAlreadyInactive, id)
		}
		return fmt.Errorf("%w: %w", perrors.ErrStore, err)
	}

	s.logger.InfoContext(ctx, "Product deactivated", "id", product.ID, "admin_id", adminID)
	s.publish(ctx, events.NewProductDeleted(s.event(product, adminID)))
	return nil
}

// load checks the ID syntax and fetches the product.
func (s *Service) load(ctx context.Context, id string) (*domain.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	record, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: %s", perrors.ErrProductNotFound, id)
		}
		return nil, fmt.Errorf("%w: %w", perrors.ErrStore, err)
	}
	return domain.FromRecord(*record), nil
}

// checkNameAvailable fails when an active product other than excludeID already uses name.
func (s *Service) checkNameAvailable(ctx context.Context, name, excludeID string) error {
	_, err := s.store.FindActiveByName(ctx, name, excludeID)
	switch {
	case err == nil:
		return duplicateName(name)
	case errors.Is(err, perrors.ErrProductNotFound):
		return nil
	default:
		return fmt.Errorf("%w: %w", perrors.ErrStore, err)
	}
}

// discardImage deletes an image nothing refers to anymore. Failures are logged and counted only.
func (s *Service) discardImage(ctx context.Context, imageID, reason string) {
	if err := s.images.Delete(ctx, imageID); err != nil {
		s.cleanupFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
		s.logger.WarnContext(ctx, "Failed to delete image", "image_id", imageID, "reason", reason, "error", err)
	}
}

func (s *Service) event(p *domain.Product, adminID string) events.ProductEvent {
	return events.ProductEvent{
		ProductID:  p.ID,
		Name:       p.Name,
		Category:   p.Category,
		IsActive:   p.IsActive,
		AdminID:    adminID,
		OccurredAt: p.UpdatedAt,
	}
}

func (s *Service) publish(ctx context.Context, event events.ProductEvent) {
	carrier := make(propagation.MapCarrier)
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	if len(carrier) > 0 {
		event.Carrier = carrier
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish product event", "subject", event.Subject(), "error", err)
	}
}

func checkAdmin(adminID string) error {
	if res := validation.ValidateAdminID(adminID); !res.Valid {
		return fmt.Errorf("%w: %s", perrors.ErrInvalidAdminID, res.Message)
	}
	return nil
}

func checkID(id string) error {
	if !validation.IsValidUUID(id) {
		return fmt.Errorf("%w: product id is not valid", perrors.ErrValidation)
	}
	return nil
}

func invalid(res validation.Result) error {
	if res.Valid {
		return nil
	}
	return fmt.Errorf("%w: %s", perrors.ErrValidation, res.Message)
}

func duplicateName(name string) error {
	return fmt.Errorf("%w: an active product named %q already exists", perrors.ErrDuplicateName, name)
}

// sanitized returns nil for absent or blank filter values.
func sanitized(v *string) *string {
	if v == nil {
		return nil
	}
	clean := validation.SanitizeText(*v)
	if clean == "" {
		return nil
	}
	return &clean
}
