package models

import (
	"github.com/google/uuid"
)

// MediaStatus สถานะการ encode ของ audio/video media
type MediaStatus string

const (
	MediaStatusPending    MediaStatus = "pending"    // อัปโหลดแล้ว รอ encoder
	MediaStatusProcessing MediaStatus = "processing" // encoder กำลังทำงาน
	MediaStatusCompleted  MediaStatus = "completed"
)

// ParseMediaStatus แปลง string เป็น MediaStatus
func ParseMediaStatus(s string) (MediaStatus, bool) {
	switch MediaStatus(s) {
	case MediaStatusPending, MediaStatusProcessing, MediaStatusCompleted:
		return MediaStatus(s), true
	}
	return "", false
}

// MediaType ช่อง media ทั้ง 5 ของ video
type MediaType string

const (
	MediaTypeVideo         MediaType = "VIDEO"
	MediaTypeTrailer       MediaType = "TRAILER"
	MediaTypeBanner        MediaType = "BANNER"
	MediaTypeThumbnail     MediaType = "THUMBNAIL"
	MediaTypeThumbnailHalf MediaType = "THUMBNAIL_HALF"
)

// ParseMediaType แปลง string เป็น MediaType
func ParseMediaType(s string) (MediaType, bool) {
	switch MediaType(s) {
	case MediaTypeVideo, MediaTypeTrailer, MediaTypeBanner, MediaTypeThumbnail, MediaTypeThumbnailHalf:
		return MediaType(s), true
	}
	return "", false
}

// IsAudioVideo ตรวจสอบว่าเป็น media ที่ต้องผ่าน encoder หรือไม่
func (t MediaType) IsAudioVideo() bool {
	return t == MediaTypeVideo || t == MediaTypeTrailer
}

// ImageMedia ไฟล์ภาพที่เก็บแล้ว (banner, thumbnail, thumbnail-half)
// ไม่มี status เพราะการเก็บภาพเป็น synchronous
type ImageMedia struct {
	ID       string `gorm:"size:64" json:"id"`
	Checksum string `gorm:"size:64" json:"checksum"`
	Name     string `gorm:"size:255" json:"name"`
	Location string `gorm:"type:text" json:"location"`
}

// NewImageMedia สร้าง ImageMedia ใหม่
func NewImageMedia(checksum, name, location string) *ImageMedia {
	return &ImageMedia{
		ID:       uuid.NewString(),
		Checksum: checksum,
		Name:     name,
		Location: location,
	}
}

// AudioVideoMedia ไฟล์ video/trailer ที่ต้องผ่าน encoder
// ID ใช้เป็น correlation key จับคู่กับ resourceId ใน encoder result
type AudioVideoMedia struct {
	ID              string      `gorm:"size:64" json:"id"`
	Checksum        string      `gorm:"size:64" json:"checksum"`
	Name            string      `gorm:"size:255" json:"name"`
	RawLocation     string      `gorm:"type:text" json:"rawLocation"`
	EncodedLocation string      `gorm:"type:text" json:"encodedLocation"`
	Status          MediaStatus `gorm:"size:20" json:"status"`
}

// NewAudioVideoMedia สร้าง AudioVideoMedia ใหม่ สถานะเริ่มต้น pending
func NewAudioVideoMedia(checksum, name, rawLocation string) *AudioVideoMedia {
	return &AudioVideoMedia{
		ID:          uuid.NewString(),
		Checksum:    checksum,
		Name:        name,
		RawLocation: rawLocation,
		Status:      MediaStatusPending,
	}
}

// IsPendingEncode ตรวจสอบว่ายังรอ encoder อยู่
func (m *AudioVideoMedia) IsPendingEncode() bool {
	return m.Status == MediaStatusPending
}

// Processing คืนสำเนาที่สถานะเป็น processing (location เดิมทั้งหมด)
func (m AudioVideoMedia) Processing() *AudioVideoMedia {
	m.Status = MediaStatusProcessing
	return &m
}

// Completed คืนสำเนาที่สถานะเป็น completed พร้อม encoded path
func (m AudioVideoMedia) Completed(encodedPath string) *AudioVideoMedia {
	m.Status = MediaStatusCompleted
	m.EncodedLocation = encodedPath
	return &m
}
