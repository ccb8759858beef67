package models

import (
	"time"

	"github.com/google/uuid"
)

type Genre struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `gorm:"size:255;not null"`
	Slug      string    `gorm:"size:255;uniqueIndex;not null"`
	IsActive  bool      `gorm:"default:true"`

	// categories ที่ genre นี้สังกัด (optional)
	CategoryIDs UUIDSlice `gorm:"type:jsonb;default:'[]'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Genre) TableName() string {
	return "genres"
}
