package messaging

import (
	"context"

	"github.com/feral-file/ff-economy/internal/store/schema"
)

// Publisher defines the interface for publishing economy events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishTransaction publishes a recorded transaction
	PublishTransaction(ctx context.Context, tx *schema.Transaction) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event.
// It is used when no broker is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishTransaction(ctx context.Context, tx *schema.Transaction) error {
	return nil
}

func (noopPublisher) Close() {}
