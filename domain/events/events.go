package events

import "time"

// DomainEvent event ที่ aggregate บันทึกไว้ รอ publish หลัง persist สำเร็จ
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// MediaCreatedEvent เกิดเมื่อ attach audio/video media ใหม่ที่สถานะ pending
// encoder ภายนอกจะรับ event นี้ไป encode ต่อ
type MediaCreatedEvent struct {
	VideoID     string    `json:"video_id"`
	RawLocation string    `json:"raw_location"`
	Occurred    time.Time `json:"occurred_at"`
}

func NewMediaCreatedEvent(videoID, rawLocation string) MediaCreatedEvent {
	return MediaCreatedEvent{
		VideoID:     videoID,
		RawLocation: rawLocation,
		Occurred:    time.Now().UTC(),
	}
}

func (e MediaCreatedEvent) EventName() string {
	return "media.created"
}

func (e MediaCreatedEvent) OccurredAt() time.Time {
	return e.Occurred
}
