// Package errors provides custom error types for product-related operations.
package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
)

var (
	// ErrInvalidAdminID is returned when the admin identifier of a write operation is missing or malformed.
	ErrInvalidAdminID = errors.New("invalid admin id")
	// ErrValidation is returned when an input field violates a product rule.
	ErrValidation = errors.New("validation failed")
	// ErrProductNotFound is returned when no product exists with the given ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateName is returned when another active product already uses the name.
	ErrDuplicateName = errors.New("product name already exists")
	// ErrAlreadyInactive is returned when deleting a product that is already soft-deleted.
	ErrAlreadyInactive = errors.New("product is already inactive")
	// ErrImageStore is returned when the image store fails.
	ErrImageStore = errors.New("image store failure")
	// ErrStore is returned when the product store fails.
	ErrStore = errors.New("product store failure")
)

// Code returns the gRPC code that represents the kind of err.
// Errors outside the taxonomy are internal.
func Code(err error) codes.Code {
	switch {
	case errors.Is(err, ErrInvalidAdminID), errors.Is(err, ErrValidation):
		return codes.InvalidArgument
	case errors.Is(err, ErrProductNotFound):
		return codes.NotFound
	case errors.Is(err, ErrDuplicateName):
		return codes.AlreadyExists
	case errors.Is(err, ErrAlreadyInactive):
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}
