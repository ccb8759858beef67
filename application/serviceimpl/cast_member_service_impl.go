package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/models"
	"catalog-admin/domain/repositories"
	"catalog-admin/domain/services"
	"catalog-admin/pkg/logger"
)

type CastMemberServiceImpl struct {
	castMemberRepo repositories.CastMemberRepository
}

func NewCastMemberService(castMemberRepo repositories.CastMemberRepository) services.CastMemberService {
	return &CastMemberServiceImpl{
		castMemberRepo: castMemberRepo,
	}
}

func (s *CastMemberServiceImpl) Create(ctx context.Context, req *dto.CreateCastMemberRequest) (*models.CastMember, error) {
	memberType, ok := models.ParseCastMemberType(req.Type)
	if !ok {
		return nil, errors.New("invalid cast member type")
	}

	member := &models.CastMember{
		ID:        uuid.New(),
		Name:      req.Name,
		Type:      memberType,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.castMemberRepo.Create(ctx, member); err != nil {
		logger.ErrorContext(ctx, "Failed to create cast member", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Cast member created", "cast_member_id", member.ID, "name", member.Name)
	return member, nil
}

func (s *CastMemberServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.CastMember, error) {
	member, err := s.castMemberRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Cast member not found", "cast_member_id", id)
		return nil, errors.New("cast member not found")
	}
	return member, nil
}

func (s *CastMemberServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCastMemberRequest) (*models.CastMember, error) {
	member, err := s.castMemberRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Cast member not found for update", "cast_member_id", id)
		return nil, errors.New("cast member not found")
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Type != nil {
		memberType, ok := models.ParseCastMemberType(*req.Type)
		if !ok {
			return nil, errors.New("invalid cast member type")
		}
		member.Type = memberType
	}
	member.UpdatedAt = time.Now()

	if err := s.castMemberRepo.Update(ctx, member); err != nil {
		logger.ErrorContext(ctx, "Failed to update cast member", "cast_member_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Cast member updated", "cast_member_id", id)
	return member, nil
}

func (s *CastMemberServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.castMemberRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Cast member not found for deletion", "cast_member_id", id)
		return errors.New("cast member not found")
	}

	if err := s.castMemberRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete cast member", "cast_member_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Cast member deleted", "cast_member_id", id)
	return nil
}

func (s *CastMemberServiceImpl) List(ctx context.Context, page, limit int) ([]*models.CastMember, int64, error) {
	offset := (page - 1) * limit
	members, total, err := s.castMemberRepo.List(ctx, offset, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list cast members", "error", err)
		return nil, 0, err
	}
	return members, total, nil
}
