package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCastMemberRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
	Type string `json:"type" validate:"required,oneof=actor director"`
}

type UpdateCastMemberRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
	Type *string `json:"type" validate:"omitempty,oneof=actor director"`
}

type CastMemberResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CastMemberListResponse struct {
	CastMembers []CastMemberResponse `json:"castMembers"`
	Meta        PaginationMeta       `json:"meta"`
}
