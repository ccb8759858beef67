package services

import (
	"context"

	"github.com/google/uuid"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/models"
)

type GenreService interface {
	Create(ctx context.Context, req *dto.CreateGenreRequest) (*models.Genre, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Genre, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateGenreRequest) (*models.Genre, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, limit int) ([]*models.Genre, int64, error)
}
