package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"catalog-admin/domain/models"
	"catalog-admin/domain/repositories"
)

type GenreRepositoryImpl struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) repositories.GenreRepository {
	return &GenreRepositoryImpl{db: db}
}

func (r *GenreRepositoryImpl) Create(ctx context.Context, genre *models.Genre) error {
	return r.db.WithContext(ctx).Create(genre).Error
}

func (r *GenreRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	var genre models.Genre
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&genre).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *GenreRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Genre, error) {
	var genre models.Genre
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&genre).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *GenreRepositoryImpl) Update(ctx context.Context, genre *models.Genre) error {
	return r.db.WithContext(ctx).Save(genre).Error
}

func (r *GenreRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Genre{}).Error
}

func (r *GenreRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*models.Genre, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Genre{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var genres []*models.Genre
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(offset).Limit(limit).
		Find(&genres).Error
	return genres, total, err
}

func (r *GenreRepositoryImpl) ExistsByIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var existing []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.Genre{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	return existing, err
}
