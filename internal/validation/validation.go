// Package validation holds the field rules applied to product input before it reaches storage.
// Every validator returns a Result instead of an error: invalid input is an expected outcome.
package validation

import (
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	MinNameLength        = 3
	MaxNameLength        = 100
	MinDescriptionLength = 10
	MaxDescriptionLength = 1000
	MinCategoryLength    = 3
	MaxCategoryLength    = 50

	// MaxPrice is the highest accepted product price.
	MaxPrice = 9999999.99
	// MaxImageSize is the upper bound for an uploaded image, 5 MiB.
	MaxImageSize = 5 << 20
)

// AllowedImageExtensions lists the accepted image file extensions, lower case.
var AllowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

var validate = validator.New()

// Result is the outcome of a single validation rule.
type Result struct {
	Valid   bool
	Message string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(format string, args ...any) Result {
	return Result{Valid: false, Message: fmt.Sprintf(format, args...)}
}

// ValidateName checks a product name: required, 3..100 characters after trimming, not digits only.
func ValidateName(name string) Result {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return invalid("name is required")
	}
	length := utf8.RuneCountInString(trimmed)
	if length < MinNameLength {
		return invalid("name must be at least %d characters long", MinNameLength)
	}
	if length > MaxNameLength {
		return invalid("name must not exceed %d characters", MaxNameLength)
	}
	if validate.Var(trimmed, "number") == nil {
		return invalid("name must not consist of digits only")
	}
	return valid()
}

// ValidateDescription checks a product description: required, 10..1000 characters after trimming.
func ValidateDescription(description string) Result {
	return checkLength("description", description, MinDescriptionLength, MaxDescriptionLength)
}

// ValidateCategory checks a product category: required, 3..50 characters after trimming.
func ValidateCategory(category string) Result {
	return checkLength("category", category, MinCategoryLength, MaxCategoryLength)
}

func checkLength(field, value string, minLen, maxLen int) Result {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return invalid("%s is required", field)
	}
	length := utf8.RuneCountInString(trimmed)
	if length < minLen {
		return invalid("%s must be at least %d characters long", field, minLen)
	}
	if length > maxLen {
		return invalid("%s must not exceed %d characters", field, maxLen)
	}
	return valid()
}

// ValidatePrice checks that the price is a number in (0, MaxPrice].
func ValidatePrice(price float64) Result {
	if math.IsNaN(price) {
		return invalid("price must be a number")
	}
	if price <= 0 {
		return invalid("price must be greater than 0")
	}
	if price > MaxPrice {
		return invalid("price must not exceed %.2f", MaxPrice)
	}
	return valid()
}

// ValidateImage checks the image payload size and, when a file name is given, its extension.
func ValidateImage(data []byte, fileName string) Result {
	if len(data) == 0 {
		return invalid("image is required")
	}
	if len(data) > MaxImageSize {
		return invalid("image must not exceed 5MB")
	}
	if fileName != "" {
		ext := strings.ToLower(filepath.Ext(fileName))
		if !slices.Contains(AllowedImageExtensions, ext) {
			return invalid("image extension not allowed, use one of: %s", strings.Join(AllowedImageExtensions, ", "))
		}
	}
	return valid()
}

// ValidateAdminID checks that the admin identifier is present and is a version 4 UUID.
func ValidateAdminID(adminID string) Result {
	if strings.TrimSpace(adminID) == "" {
		return invalid("admin id is required")
	}
	if !IsValidUUID(adminID) {
		return invalid("admin id is not valid")
	}
	return valid()
}

// IsValidUUID reports whether id is a canonical 8-4-4-4-12 version 4 UUID with the RFC 4122 variant.
// Case is ignored.
func IsValidUUID(id string) bool {
	// uuid.Parse also accepts the braced, urn and 32-digit forms; only the hyphenated one is allowed here.
	if len(id) != 36 {
		return false
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return parsed.Version() == 4 && parsed.Variant() == uuid.RFC4122
}

// SanitizeText trims the input, strips angle brackets and collapses whitespace runs into a single space.
// It is applied to every free-text field before storage or query use.
func SanitizeText(text string) string {
	stripped := strings.Map(func(r rune) rune {
		if r == '<' || r == '>' {
			return -1
		}
		return r
	}, strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(stripped))
	inSpace := false
	for _, r := range stripped {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteRune(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
