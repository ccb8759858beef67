package services

import (
	"context"

	"github.com/google/uuid"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/models"
)

type CastMemberService interface {
	Create(ctx context.Context, req *dto.CreateCastMemberRequest) (*models.CastMember, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CastMember, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCastMemberRequest) (*models.CastMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, limit int) ([]*models.CastMember, int64, error)
}
