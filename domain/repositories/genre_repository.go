package repositories

import (
	"context"

	"github.com/google/uuid"

	"catalog-admin/domain/models"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *models.Genre) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Genre, error)
	GetBySlug(ctx context.Context, slug string) (*models.Genre, error)
	Update(ctx context.Context, genre *models.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]*models.Genre, int64, error)
	ExistsByIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}
