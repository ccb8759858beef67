package dto

import (
	"github.com/google/uuid"

	"catalog-admin/domain/models"
)

// MediaResource payload ของไฟล์ 1 ชิ้นที่รอ attach เข้า video
type MediaResource struct {
	Type        models.MediaType
	Name        string
	ContentType string
	Content     []byte
}

// UploadMediaResponse ผลของการ upload media 1 slot
type UploadMediaResponse struct {
	VideoID   uuid.UUID        `json:"videoId"`
	MediaType models.MediaType `json:"mediaType"`
	Status    string           `json:"status,omitempty"` // เฉพาะ audio/video
	Location  string           `json:"location"`
}

// UpdateMediaStatusCommand คำสั่งจาก encoder result (reconciler input)
type UpdateMediaStatusCommand struct {
	Status     models.MediaStatus
	VideoID    uuid.UUID
	ResourceID string
	Folder     string
	Filename   string
}

// MediaStatusUpdate ข้อมูลที่ broadcast ให้ admin clients ผ่าน websocket
type MediaStatusUpdate struct {
	VideoID         string             `json:"video_id"`
	MediaType       models.MediaType   `json:"media_type"`
	Status          models.MediaStatus `json:"status"`
	EncodedLocation string             `json:"encoded_location,omitempty"`
}
