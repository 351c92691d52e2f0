package events

import (
	"encoding/json"
	"time"

	"github.com/gocommerce/catalog/pkg/messaging"
)

// ProductEvent is emitted after a product was created, updated or soft-deleted.
type ProductEvent struct {
	subject string

	Carrier    map[string]string `json:"carrier,omitempty"`
	ProductID  string            `json:"product_id"`
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	IsActive   bool              `json:"is_active"`
	AdminID    string            `json:"admin_id"`
	OccurredAt time.Time         `json:"occurred_at"`
}

func NewProductCreated(e ProductEvent) ProductEvent {
	e.subject = messaging.ProductsCreatedSubject
	return e
}

func NewProductUpdated(e ProductEvent) ProductEvent {
	e.subject = messaging.ProductsUpdatedSubject
	return e
}

func NewProductDeleted(e ProductEvent) ProductEvent {
	e.subject = messaging.ProductsDeletedSubject
	return e
}

func (e ProductEvent) Subject() string {
	return e.subject
}

func (e ProductEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}
