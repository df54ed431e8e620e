package port

import (
	"context"
	"petfoster-upload/internal/core/domain"
)

// EventPublisher is an interface to define an event publisher (kafka, nats, ...)
type EventPublisher interface {
	PublishUploadMerged(ctx context.Context, event domain.UploadMergedEvent) error
	Close() error
}
