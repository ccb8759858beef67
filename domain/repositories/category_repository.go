package repositories

import (
	"context"

	"github.com/google/uuid"

	"catalog-admin/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]*models.Category, int64, error)
	// ExistsByIDs คืนเฉพาะ id ที่มีอยู่จริง (สำหรับ merged existence validation)
	ExistsByIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}
