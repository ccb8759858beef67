package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog-admin/pkg/logger"
)

// Publisher publishes domain events to JetStream
type Publisher struct {
	client *Client
}

// NewPublisher สร้าง Publisher ใหม่
func NewPublisher(client *Client) *Publisher {
	return &Publisher{
		client: client,
	}
}

// PublishMediaCreated ส่ง media created message ไปยัง JetStream
func (p *Publisher) PublishMediaCreated(ctx context.Context, videoID, filePath string, occurredAt time.Time) error {
	msg := &MediaCreatedMessage{
		Event:      SubjectMediaCreated,
		VideoID:    videoID,
		FilePath:   filePath,
		OccurredAt: occurredAt.UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ack, err := p.client.js.Publish(ctx, SubjectMediaCreated, data)
	if err != nil {
		logger.Error("Failed to publish media created event",
			"video_id", videoID,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.Info("Media created event published to JetStream",
		"video_id", videoID,
		"file_path", filePath,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
	)

	return nil
}

// GetJetStreamStatus ดึงสถานะ JetStream (สำหรับ Monitoring API)
func (p *Publisher) GetJetStreamStatus(ctx context.Context) (*JetStreamStatus, error) {
	return p.client.GetStatus(ctx)
}
