package repositories

import (
	"context"

	"github.com/google/uuid"

	"catalog-admin/domain/models"
)

type CastMemberRepository interface {
	Create(ctx context.Context, member *models.CastMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CastMember, error)
	Update(ctx context.Context, member *models.CastMember) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]*models.CastMember, int64, error)
	ExistsByIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}
