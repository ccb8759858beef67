package models

import (
	"time"

	"github.com/google/uuid"
)

// CastMemberType ประเภทของ cast member
type CastMemberType string

const (
	CastMemberTypeActor    CastMemberType = "actor"
	CastMemberTypeDirector CastMemberType = "director"
)

// ParseCastMemberType แปลง string เป็น CastMemberType
func ParseCastMemberType(s string) (CastMemberType, bool) {
	switch CastMemberType(s) {
	case CastMemberTypeActor, CastMemberTypeDirector:
		return CastMemberType(s), true
	}
	return "", false
}

type CastMember struct {
	ID        uuid.UUID      `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string         `gorm:"size:255;not null"`
	Type      CastMemberType `gorm:"size:20;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CastMember) TableName() string {
	return "cast_members"
}
