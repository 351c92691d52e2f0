package nats

import (
	"context"
	"fmt"

	"github.com/gocommerce/catalog/pkg/messaging"
	"github.com/nats-io/nats.go/jetstream"
)

// ProductsStream captures every products.* subject.
const ProductsStream = "PRODUCTS"

type NatsPublisher struct {
	js jetstream.JetStream
}

func NewNatsPublisher(js jetstream.JetStream) *NatsPublisher {
	return &NatsPublisher{js: js}
}

// EnsureStream creates or updates the stream the product events are published to.
func (p *NatsPublisher) EnsureStream(ctx context.Context) error {
	_, err := p.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     ProductsStream,
		Subjects: []string{"products.>"},
	})
	if err != nil {
		return fmt.Errorf("failed to ensure stream %s: %w", ProductsStream, err)
	}
	return nil
}

func (p *NatsPublisher) Publish(ctx context.Context, event messaging.Event) error {
	data, err := event.Payload()
	if err != nil {
		return fmt.Errorf("failed to get event payload: %w", err)
	}
	if _, err = p.js.Publish(ctx, event.Subject(), data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Subject(), err)
	}
	return nil
}
