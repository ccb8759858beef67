package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateGenreRequest struct {
	Name        string      `json:"name" validate:"required,min=1,max=255"`
	IsActive    *bool       `json:"isActive"`
	CategoryIDs []uuid.UUID `json:"categoryIds"`
}

type UpdateGenreRequest struct {
	Name        *string     `json:"name" validate:"omitempty,min=1,max=255"`
	IsActive    *bool       `json:"isActive"`
	CategoryIDs []uuid.UUID `json:"categoryIds"`
}

type GenreResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	IsActive    bool        `json:"isActive"`
	CategoryIDs []uuid.UUID `json:"categoryIds"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type GenreListResponse struct {
	Genres []GenreResponse `json:"genres"`
	Meta   PaginationMeta  `json:"meta"`
}
