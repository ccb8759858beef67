package dto

import (
	"time"

	"github.com/google/uuid"

	"catalog-admin/domain/models"
)

// === Requests ===

type CreateVideoRequest struct {
	Title         string      `json:"title" validate:"required,min=1,max=255"`
	Description   string      `json:"description" validate:"required,max=4000"`
	LaunchYear    int         `json:"launchYear" validate:"required,min=1888"`
	Duration      float64     `json:"duration" validate:"omitempty,min=0"`
	Opened        bool        `json:"opened"`
	Published     bool        `json:"published"`
	Rating        string      `json:"rating" validate:"required"`
	CategoryIDs   []uuid.UUID `json:"categoryIds"`
	GenreIDs      []uuid.UUID `json:"genreIds"`
	CastMemberIDs []uuid.UUID `json:"castMemberIds"`
}

type UpdateVideoRequest struct {
	Title         string      `json:"title" validate:"required,min=1,max=255"`
	Description   string      `json:"description" validate:"required,max=4000"`
	LaunchYear    int         `json:"launchYear" validate:"required,min=1888"`
	Duration      float64     `json:"duration" validate:"omitempty,min=0"`
	Opened        bool        `json:"opened"`
	Published     bool        `json:"published"`
	Rating        string      `json:"rating" validate:"required"`
	CategoryIDs   []uuid.UUID `json:"categoryIds"`
	GenreIDs      []uuid.UUID `json:"genreIds"`
	CastMemberIDs []uuid.UUID `json:"castMemberIds"`
}

type VideoFilterRequest struct {
	Search       string `query:"search"` // ค้นหาจาก title
	CategoryID   string `query:"categoryId" validate:"omitempty,uuid"`
	GenreID      string `query:"genreId" validate:"omitempty,uuid"`
	CastMemberID string `query:"castMemberId" validate:"omitempty,uuid"`
	SortBy       string `query:"sortBy" validate:"omitempty,oneof=created_at title launch_year"`
	SortOrder    string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page         int    `query:"page" validate:"omitempty,min=1"`
	Limit        int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// === Responses ===

type ImageMediaResponse struct {
	ID       string `json:"id"`
	Checksum string `json:"checksum"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type AudioVideoMediaResponse struct {
	ID              string             `json:"id"`
	Checksum        string             `json:"checksum"`
	Name            string             `json:"name"`
	RawLocation     string             `json:"rawLocation"`
	EncodedLocation string             `json:"encodedLocation,omitempty"`
	Status          models.MediaStatus `json:"status"`
}

type VideoResponse struct {
	ID            uuid.UUID                `json:"id"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	LaunchYear    int                      `json:"launchYear"`
	Duration      float64                  `json:"duration"`
	Opened        bool                     `json:"opened"`
	Published     bool                     `json:"published"`
	Rating        models.Rating            `json:"rating"`
	Banner        *ImageMediaResponse      `json:"banner,omitempty"`
	Thumbnail     *ImageMediaResponse      `json:"thumbnail,omitempty"`
	ThumbnailHalf *ImageMediaResponse      `json:"thumbnailHalf,omitempty"`
	Trailer       *AudioVideoMediaResponse `json:"trailer,omitempty"`
	Video         *AudioVideoMediaResponse `json:"video,omitempty"`
	CategoryIDs   []uuid.UUID              `json:"categoryIds"`
	GenreIDs      []uuid.UUID              `json:"genreIds"`
	CastMemberIDs []uuid.UUID              `json:"castMemberIds"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// VideoListItemResponse ข้อมูลย่อสำหรับหน้า list
type VideoListItemResponse struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	LaunchYear  int           `json:"launchYear"`
	Rating      models.Rating `json:"rating"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type VideoListResponse struct {
	Videos []VideoListItemResponse `json:"videos"`
	Meta   PaginationMeta          `json:"meta"`
}
