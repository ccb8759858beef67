package messaging

import (
	"context"
	"fmt"

	"catalog-admin/domain/events"
	"catalog-admin/domain/ports"
	natspkg "catalog-admin/infrastructure/nats"
)

// NATSEventPublisher implements EventPublisherPort using JetStream
type NATSEventPublisher struct {
	publisher *natspkg.Publisher
}

// NewNATSEventPublisher สร้าง EventPublisherPort adapter สำหรับ NATS
func NewNATSEventPublisher(publisher *natspkg.Publisher) ports.EventPublisherPort {
	return &NATSEventPublisher{
		publisher: publisher,
	}
}

// Publish ส่ง domain event ผ่าน JetStream
func (p *NATSEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}

	switch e := event.(type) {
	case events.MediaCreatedEvent:
		return p.publisher.PublishMediaCreated(ctx, e.VideoID, e.RawLocation, e.OccurredAt())
	case *events.MediaCreatedEvent:
		return p.publisher.PublishMediaCreated(ctx, e.VideoID, e.RawLocation, e.OccurredAt())
	default:
		return fmt.Errorf("unsupported event type: %s", event.EventName())
	}
}
