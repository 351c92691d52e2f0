// Package rest provides HTTP handlers for the product catalog.
package rest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	perrors "github.com/gocommerce/catalog/internal/errors"
	"github.com/gocommerce/catalog/internal/service"
	"github.com/gocommerce/catalog/internal/validation"
	"github.com/gocommerce/catalog/pkg/web"
	"google.golang.org/grpc/codes"
)

// maxFormMemory bounds the multipart form kept in memory; the image dominates it.
const maxFormMemory = validation.MaxImageSize + 1<<20

type Handler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

// createForm holds the multipart fields of a create request before they are converted.
type createForm struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Price       string `validate:"required,numeric"`
	Category    string `validate:"required"`
}

// NewHandler creates a new instance of the catalog HTTP API with the provided service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes of the catalog.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetByID)
			r.Patch("/", h.Update)
			r.Delete("/", h.Delete)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// List returns the products matching the category, isActive and search query parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	isActive, ok := web.ParseOptionalBool(r, w, h.logger, "isActive")
	if !ok {
		return
	}
	filter := service.ListFilterDto{
		Category: web.OptionalQuery(r, "category"),
		IsActive: isActive,
		Search:   web.OptionalQuery(r, "search"),
	}
	h.logger.DebugContext(r.Context(), "Received request to list products")

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, r, "list products", err)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, map[string]any{"products": list, "total": len(list)})
}

// GetByID returns a single product, soft-deleted ones included.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	found, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, "get product", err)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, found)
}

// Create handles a multipart form with name, description, price, category and an image file.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.checkAdmin(w, r) || !h.parseForm(w, r) {
		return
	}
	form := createForm{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Category:    r.FormValue("category"),
	}
	if err := h.validate.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			h.logger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, h.logger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return
		}
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil {
		web.RespondCodeError(w, h.logger, codes.InvalidArgument, fmt.Sprintf("Invalid price: %s", form.Price))
		return
	}

	image, fileName, ok := h.readImage(w, r)
	if !ok {
		return
	}

	created, err := h.service.Create(r.Context(), service.CreateProductDto{
		Name:          form.Name,
		Description:   form.Description,
		Price:         price,
		Category:      form.Category,
		Image:         image,
		ImageFileName: fileName,
		AdminID:       web.AdminID(r),
	})
	if err != nil {
		h.respondServiceError(w, r, "create product", err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product created successfully", "id", created.ID, "name", created.Name)
	web.RespondJSON(w, h.logger, http.StatusCreated, created)
}

// Update applies the form fields that are present; absent fields keep their values.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	if !h.checkAdmin(w, r) || !h.parseForm(w, r) {
		return
	}
	dto := service.UpdateProductDto{
		ID:          chi.URLParam(r, "id"),
		AdminID:     web.AdminID(r),
		Name:        formValue(r, "name"),
		Description: formValue(r, "description"),
		Category:    formValue(r, "category"),
	}
	if raw := formValue(r, "price"); raw != nil {
		price, err := strconv.ParseFloat(*raw, 64)
		if err != nil {
			web.RespondCodeError(w, h.logger, codes.InvalidArgument, fmt.Sprintf("Invalid price: %s", *raw))
			return
		}
		dto.Price = &price
	}
	if r.MultipartForm != nil && len(r.MultipartForm.File["image"]) > 0 {
		image, fileName, ok := h.readImage(w, r)
		if !ok {
			return
		}
		dto.Image = image
		dto.ImageFileName = fileName
	}

	updated, err := h.service.Update(r.Context(), dto)
	if err != nil {
		h.respondServiceError(w, r, "update product", err)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
}

// Delete soft-deletes a product.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id, web.AdminID(r)); err != nil {
		h.respondServiceError(w, r, "delete product", err)
		return
	}
	h.logger.InfoContext(r.Context(), "Product deleted successfully", "id", id)
	web.RespondJSON(w, h.logger, http.StatusNoContent, nil)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	web.RespondJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// checkAdmin rejects writes without a valid admin id before the body is read.
func (h *Handler) checkAdmin(w http.ResponseWriter, r *http.Request) bool {
	if res := validation.ValidateAdminID(web.AdminID(r)); !res.Valid {
		web.RespondCodeError(w, h.logger, codes.InvalidArgument, res.Message)
		return false
	}
	return true
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormMemory)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		h.logger.WarnContext(r.Context(), "Error parsing multipart form", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid multipart form")
		return false
	}
	return true
}

// readImage reads the "image" file part. A missing part yields no bytes and leaves the verdict to the service.
func (h *Handler) readImage(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, "", true
	}
	if err != nil {
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid image")
		return nil, "", false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error reading image", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid image")
		return nil, "", false
	}
	return data, header.Filename, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	code := perrors.Code(err)
	if code == codes.Internal {
		h.logger.ErrorContext(r.Context(), "Failed to "+action, "error", err)
		web.RespondCodeError(w, h.logger, code, "internal error")
		return
	}
	h.logger.WarnContext(r.Context(), "Rejected "+action, "code", code.String(), "error", err)
	web.RespondCodeError(w, h.logger, code, err.Error())
}

// formValue returns the form field key, or nil when the request does not carry it.
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
