package repositories

import (
	"context"

	"github.com/google/uuid"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/models"
)

type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error)
	Update(ctx context.Context, video *models.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListWithFilters ดึง videos พร้อม filter, search, sort, pagination
	ListWithFilters(ctx context.Context, params *dto.VideoFilterRequest) ([]*models.Video, int64, error)
	Count(ctx context.Context) (int64, error)
	// ExistsByIDs คืนเฉพาะ id ที่มี row อยู่จริง (ใช้โดย storage cleanup job)
	ExistsByIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}
