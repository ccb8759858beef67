package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"catalog-admin/domain/events"
	"catalog-admin/domain/validation"
)

// Rating เรทติ้งของ video
type Rating string

const (
	RatingER    Rating = "ER"
	RatingFree  Rating = "L"
	RatingAge10 Rating = "AGE_10"
	RatingAge12 Rating = "AGE_12"
	RatingAge14 Rating = "AGE_14"
	RatingAge16 Rating = "AGE_16"
	RatingAge18 Rating = "AGE_18"
)

// ParseRating แปลง string เป็น Rating
func ParseRating(s string) (Rating, bool) {
	switch Rating(s) {
	case RatingER, RatingFree, RatingAge10, RatingAge12, RatingAge14, RatingAge16, RatingAge18:
		return Rating(s), true
	}
	return "", false
}

// UUIDSlice เก็บชุด id เป็น JSONB
type UUIDSlice []uuid.UUID

// Scan implements sql.Scanner for UUIDSlice
func (s *UUIDSlice) Scan(value interface{}) error {
	if value == nil {
		*s = UUIDSlice{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// Value implements driver.Valuer for UUIDSlice
func (s UUIDSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Contains ตรวจสอบว่ามี id อยู่ในชุดหรือไม่
func (s UUIDSlice) Contains(id uuid.UUID) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// ขอบเขตของ structural validation
const (
	TitleMaxLength       = 255
	DescriptionMaxLength = 4000
)

// Video aggregate ของ catalog: ข้อมูลหลัก + ช่อง media 5 ช่อง
// media slots เป็น pointer - nil แปลว่ายังไม่มีไฟล์ใน slot นั้น
type Video struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text"`
	LaunchYear  int       `gorm:"not null"`
	Duration    float64   `gorm:"default:0"` // นาที
	Opened      bool      `gorm:"default:false"`
	Published   bool      `gorm:"default:false"`
	Rating      Rating    `gorm:"size:10"`

	Banner        *ImageMedia      `gorm:"embedded;embeddedPrefix:banner_"`
	Thumbnail     *ImageMedia      `gorm:"embedded;embeddedPrefix:thumbnail_"`
	ThumbnailHalf *ImageMedia      `gorm:"embedded;embeddedPrefix:thumbnail_half_"`
	Trailer       *AudioVideoMedia `gorm:"embedded;embeddedPrefix:trailer_"`
	VideoFile     *AudioVideoMedia `gorm:"embedded;embeddedPrefix:video_"`

	CategoryIDs   UUIDSlice `gorm:"type:jsonb;default:'[]'"`
	GenreIDs      UUIDSlice `gorm:"type:jsonb;default:'[]'"`
	CastMemberIDs UUIDSlice `gorm:"type:jsonb;default:'[]'"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// domain events สะสมใน memory จนกว่าจะ drain หลัง persist
	events []events.DomainEvent `gorm:"-"`
}

func (Video) TableName() string {
	return "videos"
}

// NewVideo สร้าง video ใหม่ ยังไม่มี media ใน slot ใดเลย
func NewVideo(title, description string, launchYear int, duration float64, opened, published bool, rating Rating, categoryIDs, genreIDs, castMemberIDs []uuid.UUID) *Video {
	now := time.Now().UTC()
	return &Video{
		ID:            uuid.New(),
		Title:         title,
		Description:   description,
		LaunchYear:    launchYear,
		Duration:      duration,
		Opened:        opened,
		Published:     published,
		Rating:        rating,
		CategoryIDs:   normalizeIDs(categoryIDs),
		GenreIDs:      normalizeIDs(genreIDs),
		CastMemberIDs: normalizeIDs(castMemberIDs),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// normalizeIDs nil → empty slice เสมอ
func normalizeIDs(ids []uuid.UUID) UUIDSlice {
	if ids == nil {
		return UUIDSlice{}
	}
	return UUIDSlice(ids)
}

// Update แก้ไขข้อมูลหลัก (ไม่แตะ media slots)
func (v *Video) Update(title, description string, launchYear int, duration float64, opened, published bool, rating Rating, categoryIDs, genreIDs, castMemberIDs []uuid.UUID) *Video {
	v.Title = title
	v.Description = description
	v.LaunchYear = launchYear
	v.Duration = duration
	v.Opened = opened
	v.Published = published
	v.Rating = rating
	v.CategoryIDs = normalizeIDs(categoryIDs)
	v.GenreIDs = normalizeIDs(genreIDs)
	v.CastMemberIDs = normalizeIDs(castMemberIDs)
	v.UpdatedAt = time.Now().UTC()
	return v
}

// Validate ตรวจ structural invariants สะสมทุก violation ลง notification
// ไม่ return error - caller ตัดสินใจเองว่า errors ที่สะสมถือว่า fatal หรือไม่
func (v *Video) Validate(n *validation.Notification) {
	if v.Title == "" {
		n.Append("'title' should not be empty")
	} else if len(v.Title) > TitleMaxLength {
		n.Append("'title' must be between 1 and 255 characters")
	}

	if v.Description == "" {
		n.Append("'description' should not be empty")
	} else if len(v.Description) > DescriptionMaxLength {
		n.Append("'description' must be between 1 and 4000 characters")
	}

	if v.LaunchYear == 0 {
		n.Append("'launchYear' should not be null")
	}

	if _, ok := ParseRating(string(v.Rating)); !ok {
		n.Append("'rating' should not be null")
	}

	if v.Duration < 0 {
		n.Append("'duration' must be zero or positive")
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// Domain Events
// ═══════════════════════════════════════════════════════════════════════════════

// RegisterEvent เพิ่ม event เข้าคิวใน memory
func (v *Video) RegisterEvent(event events.DomainEvent) {
	v.events = append(v.events, event)
}

// DrainEvents คืน events ทั้งหมดแล้วล้างคิว (atomic จากมุมมอง caller)
func (v *Video) DrainEvents() []events.DomainEvent {
	drained := v.events
	v.events = nil
	return drained
}

// PendingEvents คืน events ที่ค้างอยู่โดยไม่ล้างคิว
func (v *Video) PendingEvents() []events.DomainEvent {
	return v.events
}

// ═══════════════════════════════════════════════════════════════════════════════
// Media Slot Operations
// ═══════════════════════════════════════════════════════════════════════════════

// SetVideoFile แทนที่ slot video โดยไม่ raise event
func (v *Video) SetVideoFile(media *AudioVideoMedia) *Video {
	v.VideoFile = media
	v.UpdatedAt = time.Now().UTC()
	return v
}

// SetTrailer แทนที่ slot trailer โดยไม่ raise event
func (v *Video) SetTrailer(media *AudioVideoMedia) *Video {
	v.Trailer = media
	v.UpdatedAt = time.Now().UTC()
	return v
}

// SetBanner แทนที่ slot banner
func (v *Video) SetBanner(media *ImageMedia) *Video {
	v.Banner = media
	v.UpdatedAt = time.Now().UTC()
	return v
}

// SetThumbnail แทนที่ slot thumbnail
func (v *Video) SetThumbnail(media *ImageMedia) *Video {
	v.Thumbnail = media
	v.UpdatedAt = time.Now().UTC()
	return v
}

// SetThumbnailHalf แทนที่ slot thumbnail-half
func (v *Video) SetThumbnailHalf(media *ImageMedia) *Video {
	v.ThumbnailHalf = media
	v.UpdatedAt = time.Now().UTC()
	return v
}

// UpdateVideoMedia แทนที่ slot video - raise MediaCreatedEvent ถ้า media รอ encode
// ใช้เป็นทางเข้าของ upload workflow สำหรับไฟล์ใหม่ที่เพิ่งเก็บลง storage
func (v *Video) UpdateVideoMedia(media *AudioVideoMedia) *Video {
	v.VideoFile = media
	v.UpdatedAt = time.Now().UTC()

	if media != nil && media.IsPendingEncode() {
		v.RegisterEvent(events.NewMediaCreatedEvent(v.ID.String(), media.RawLocation))
	}

	return v
}

// UpdateTrailerMedia แทนที่ slot trailer - raise MediaCreatedEvent ถ้า media รอ encode
func (v *Video) UpdateTrailerMedia(media *AudioVideoMedia) *Video {
	v.Trailer = media
	v.UpdatedAt = time.Now().UTC()

	if media != nil && media.IsPendingEncode() {
		v.RegisterEvent(events.NewMediaCreatedEvent(v.ID.String(), media.RawLocation))
	}

	return v
}

// ApplyProcessing stamp สถานะ processing ลง slot ตาม type
// no-op ถ้า slot ว่าง, stamp ซ้ำได้ (idempotent), ไม่ raise event
func (v *Video) ApplyProcessing(mediaType MediaType) *Video {
	switch mediaType {
	case MediaTypeVideo:
		if v.VideoFile != nil {
			v.SetVideoFile(v.VideoFile.Processing())
		}
	case MediaTypeTrailer:
		if v.Trailer != nil {
			v.SetTrailer(v.Trailer.Processing())
		}
	}
	return v
}

// ApplyCompleted stamp สถานะ completed พร้อม encoded path ลง slot ตาม type
// pending → completed ข้าม processing ได้ - encoder ไม่การันตีลำดับ notification
func (v *Video) ApplyCompleted(mediaType MediaType, encodedPath string) *Video {
	switch mediaType {
	case MediaTypeVideo:
		if v.VideoFile != nil {
			v.SetVideoFile(v.VideoFile.Completed(encodedPath))
		}
	case MediaTypeTrailer:
		if v.Trailer != nil {
			v.SetTrailer(v.Trailer.Completed(encodedPath))
		}
	}
	return v
}

// StoredLocations คืน path ทั้งหมดที่ video นี้อ้างถึงใน storage
func (v *Video) StoredLocations() []string {
	var paths []string
	if v.VideoFile != nil {
		paths = append(paths, v.VideoFile.RawLocation)
	}
	if v.Trailer != nil {
		paths = append(paths, v.Trailer.RawLocation)
	}
	if v.Banner != nil {
		paths = append(paths, v.Banner.Location)
	}
	if v.Thumbnail != nil {
		paths = append(paths, v.Thumbnail.Location)
	}
	if v.ThumbnailHalf != nil {
		paths = append(paths, v.ThumbnailHalf.Location)
	}
	return paths
}
