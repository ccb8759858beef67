package messaging

import (
	"context"
	"strings"

	"catalog-admin/domain/ports"
	natspkg "catalog-admin/infrastructure/nats"
	"catalog-admin/pkg/logger"
)

// NATSEncoderSubscriber implements EncoderSubscriberPort using NATS Pub/Sub
type NATSEncoderSubscriber struct {
	subscriber *natspkg.Subscriber
	cancel     context.CancelFunc
}

// NewNATSEncoderSubscriber สร้าง EncoderSubscriberPort adapter สำหรับ NATS
func NewNATSEncoderSubscriber(subscriber *natspkg.Subscriber) ports.EncoderSubscriberPort {
	return &NATSEncoderSubscriber{
		subscriber: subscriber,
	}
}

// Subscribe เริ่ม listen encoder results
func (s *NATSEncoderSubscriber) Subscribe(ctx context.Context, handler ports.EncoderResultHandler) error {
	// Store cancel function for Unsubscribe
	ctx, s.cancel = context.WithCancel(ctx)

	// Wrap handler to convert NATS type to port type
	natsHandler := func(result *natspkg.EncoderResultMessage) {
		// ดัก nil data
		if result == nil {
			logger.Warn("Received nil encoder result from NATS")
			return
		}

		status := strings.ToLower(result.Status)

		// Error messages ไม่อ้างถึง video update - log อย่างเดียว
		if status == "error" {
			resourceID := ""
			filePath := ""
			if result.Message != nil {
				resourceID = result.Message.ResourceID
				filePath = result.Message.FilePath
			}
			logger.Warn("Encoder reported error",
				"resource_id", resourceID,
				"file_path", filePath,
				"error", result.Error,
			)
			return
		}

		// Completed messages ต้องมี video payload
		if result.ID == "" || result.Video == nil {
			logger.Warn("Received encoder result with missing video data", "status", result.Status)
			return
		}

		handler(&ports.EncoderResultData{
			Status:        status,
			VideoID:       result.ID,
			ResourceID:    result.Video.ResourceID,
			EncodedFolder: result.Video.EncodedVideoFolder,
			Filename:      result.Video.FilePath,
		})
	}

	// Register handler
	s.subscriber.OnResult(natsHandler)

	// Start subscriber if not already running
	if !s.subscriber.IsRunning() {
		return s.subscriber.Start()
	}

	return nil
}

// Unsubscribe หยุด listen
func (s *NATSEncoderSubscriber) Unsubscribe() error {
	if s.cancel != nil {
		s.cancel()
	}
	return s.subscriber.Stop()
}
