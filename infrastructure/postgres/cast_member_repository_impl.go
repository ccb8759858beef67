package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"catalog-admin/domain/models"
	"catalog-admin/domain/repositories"
)

type CastMemberRepositoryImpl struct {
	db *gorm.DB
}

func NewCastMemberRepository(db *gorm.DB) repositories.CastMemberRepository {
	return &CastMemberRepositoryImpl{db: db}
}

func (r *CastMemberRepositoryImpl) Create(ctx context.Context, member *models.CastMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *CastMemberRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.CastMember, error) {
	var member models.CastMember
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *CastMemberRepositoryImpl) Update(ctx context.Context, member *models.CastMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *CastMemberRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CastMember{}).Error
}

func (r *CastMemberRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*models.CastMember, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.CastMember{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []*models.CastMember
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(offset).Limit(limit).
		Find(&members).Error
	return members, total, err
}

func (r *CastMemberRepositoryImpl) ExistsByIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var existing []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.CastMember{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	return existing, err
}
