package ports

import (
	"context"

	"catalog-admin/domain/events"
)

// ═══════════════════════════════════════════════════════════════════════════════
// Event Publisher Port - ส่ง domain events ออกไปยัง messaging transport
// ═══════════════════════════════════════════════════════════════════════════════

// EventPublisherPort - Interface สำหรับ publish domain events
// เรียกหลัง persist สำเร็จเท่านั้น failure ถือเป็น publish failure ของ caller
type EventPublisherPort interface {
	// Publish ส่ง event 1 รายการ
	Publish(ctx context.Context, event events.DomainEvent) error
}

// MessagingStatus - สถานะ connection/stream สำหรับ monitoring endpoint
type MessagingStatus struct {
	Connected    bool   `json:"connected"`
	StreamName   string `json:"streamName"`
	StoredEvents uint64 `json:"storedEvents"`
	StreamBytes  uint64 `json:"streamBytes"`
}

// ═══════════════════════════════════════════════════════════════════════════════
// Encoder Result Subscriber Port - รับผล encode จาก encoder ภายนอก
// ═══════════════════════════════════════════════════════════════════════════════

// EncoderResultData - Plain struct (ไม่มี NATS dependency)
type EncoderResultData struct {
	Status        string // "completed", "error"
	VideoID       string
	ResourceID    string // media asset id ที่ใช้จับคู่ slot
	EncodedFolder string
	Filename      string
	Error         string
}

// EncoderResultHandler - Callback function type
type EncoderResultHandler func(result *EncoderResultData)

// EncoderSubscriberPort - Interface สำหรับ subscribe ผลจาก encoder
// รับ ctx เพื่อให้ cancel subscription ผ่าน context ได้
type EncoderSubscriberPort interface {
	// Subscribe เริ่ม listen encoder results
	Subscribe(ctx context.Context, handler EncoderResultHandler) error

	// Unsubscribe หยุด listen
	Unsubscribe() error
}
