package nats

// Stream and subject names
const (
	StreamName          = "MEDIA_EVENTS"
	SubjectMediaCreated = "media.created"

	// Core Pub/Sub subject ที่ encoder ภายนอกส่งผลกลับมา
	SubjectEncoderResults = "encoder.results"
)

// ═══════════════════════════════════════════════════════════════════════════════
// MediaCreatedMessage - API → Encoder (via JetStream)
// ⚠️ โครงสร้างนี้ต้องตรงกับ Encoder
// ═══════════════════════════════════════════════════════════════════════════════
type MediaCreatedMessage struct {
	Event      string `json:"event"`       // media.created
	VideoID    string `json:"video_id"`
	FilePath   string `json:"file_path"`   // raw location ใน storage
	OccurredAt string `json:"occurred_at"` // RFC3339
}

// ═══════════════════════════════════════════════════════════════════════════════
// EncoderResultMessage - Encoder → API (via Pub/Sub)
// ⚠️ โครงสร้างนี้ต้องตรงกับ Encoder
//
// Completed: {status, id, output_bucket_path, video: {...}}
// Error:     {status, message: {...}, error}
// ═══════════════════════════════════════════════════════════════════════════════
type EncoderResultMessage struct {
	Status           string              `json:"status"` // COMPLETED, ERROR
	ID               string              `json:"id"`     // video id
	OutputBucketPath string              `json:"output_bucket_path,omitempty"`
	Video            *EncodedVideoData   `json:"video,omitempty"`
	Message          *EncoderSourceData  `json:"message,omitempty"`
	Error            string              `json:"error,omitempty"`
}

// EncodedVideoData ข้อมูลผลลัพธ์เมื่อ encode สำเร็จ
type EncodedVideoData struct {
	EncodedVideoFolder string `json:"encoded_video_folder"`
	ResourceID         string `json:"resource_id"`
	FilePath           string `json:"file_path"`
}

// EncoderSourceData ข้อมูลต้นทางใน error message
type EncoderSourceData struct {
	ResourceID string `json:"resource_id"`
	FilePath   string `json:"file_path"`
}

// ═══════════════════════════════════════════════════════════════════════════════
// JetStream Status - สำหรับ Monitoring API
// ═══════════════════════════════════════════════════════════════════════════════
type JetStreamStatus struct {
	Stream StreamInfo `json:"stream"`
}

type StreamInfo struct {
	Name     string `json:"name"`      // MEDIA_EVENTS
	Messages uint64 `json:"messages"`  // จำนวน messages ใน stream
	Bytes    uint64 `json:"bytes"`     // ขนาด data ทั้งหมด
	FirstSeq uint64 `json:"first_seq"` // Sequence แรก
	LastSeq  uint64 `json:"last_seq"`  // Sequence ล่าสุด
}
