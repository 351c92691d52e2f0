// Package domain contains the product entity and its storage and wire representations.
package domain

import (
	"strings"
	"time"

	"github.com/gocommerce/catalog/internal/validation"
	"github.com/google/uuid"
)

// WireTimeLayout renders timestamps as ISO-8601 in UTC with millisecond precision.
const WireTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Product is the in-memory catalog entry. A request owns its instance exclusively.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	ImageID     string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductData is the input bag for NewProduct. Zero values are replaced by defaults.
type ProductData struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	ImageID     string
	// IsActive defaults to true when nil.
	IsActive  *bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Record is the durable representation of a product.
type Record struct {
	ID          string    `bson:"id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Price       float64   `bson:"price"`
	Category    string    `bson:"category"`
	ImageURL    string    `bson:"imageUrl"`
	ImageID     string    `bson:"imageId"`
	IsActive    bool      `bson:"isActive"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

// WireProduct is the external response shape. The image handle is never exposed.
type WireProduct struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// Updates holds a partial product change. Nil fields are left untouched.
type Updates struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	ImageURL    *string
	ImageID     *string
}

// NewProduct builds a product from data, generating the ID and timestamps when absent.
func NewProduct(data ProductData, now time.Time) *Product {
	p := &Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		ImageURL:    data.ImageURL,
		ImageID:     data.ImageID,
		IsActive:    true,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if data.IsActive != nil {
		p.IsActive = *data.IsActive
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	return p
}

// Validate re-checks the entity fields and returns every violated rule.
func (p *Product) Validate() []string {
	var errs []string

	if len([]rune(strings.TrimSpace(p.Name))) < validation.MinNameLength {
		errs = append(errs, "name must be at least 3 characters long")
	} else if res := validation.ValidateName(p.Name); !res.Valid {
		errs = append(errs, res.Message)
	}

	if len([]rune(strings.TrimSpace(p.Description))) < validation.MinDescriptionLength {
		errs = append(errs, "description must be at least 10 characters long")
	} else if res := validation.ValidateDescription(p.Description); !res.Valid {
		errs = append(errs, res.Message)
	}

	if res := validation.ValidatePrice(p.Price); !res.Valid {
		errs = append(errs, res.Message)
	}
	if res := validation.ValidateCategory(p.Category); !res.Valid {
		errs = append(errs, res.Message)
	}
	return errs
}

// ToRecord flattens the product into its durable representation.
func (p *Product) ToRecord() Record {
	return Record{
		ID:          p.ID,
		Name:        strings.TrimSpace(p.Name),
		Description: strings.TrimSpace(p.Description),
		Price:       p.Price,
		Category:    strings.TrimSpace(p.Category),
		ImageURL:    p.ImageURL,
		ImageID:     p.ImageID,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToWire flattens the product into the response shape.
func (p *Product) ToWire() WireProduct {
	return WireProduct{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
		CreatedAt:   FormatTime(p.CreatedAt),
		UpdatedAt:   FormatTime(p.UpdatedAt),
	}
}

// FromRecord reconstructs a product from a durable record, field by field.
func FromRecord(r Record) *Product {
	return &Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		ImageID:     r.ImageID,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ApplyUpdates overwrites the present fields and refreshes UpdatedAt, even when nothing changed.
func (p *Product) ApplyUpdates(u Updates, now time.Time) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.ImageID != nil {
		p.ImageID = *u.ImageID
	}
	p.touch(now)
}

// SoftDelete marks the product inactive and refreshes UpdatedAt.
func (p *Product) SoftDelete(now time.Time) {
	p.IsActive = false
	p.touch(now)
}

// touch moves UpdatedAt forward. Stores keep millisecond precision, so a refresh within the
// same millisecond as the stored value is pushed one millisecond past it.
func (p *Product) touch(now time.Time) {
	prev := p.UpdatedAt.Truncate(time.Millisecond)
	if !now.Truncate(time.Millisecond).After(prev) {
		now = prev.Add(time.Millisecond)
	}
	p.UpdatedAt = now
}

// FormatTime renders t in the wire timestamp format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(WireTimeLayout)
}
