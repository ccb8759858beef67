package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/models"
	"catalog-admin/domain/repositories"
)

type VideoRepositoryImpl struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) repositories.VideoRepository {
	return &VideoRepositoryImpl{db: db}
}

func (r *VideoRepositoryImpl) Create(ctx context.Context, video *models.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *VideoRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	var video models.Video
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepositoryImpl) Update(ctx context.Context, video *models.Video) error {
	return r.db.WithContext(ctx).Save(video).Error
}

func (r *VideoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Video{}).Error
}

// ListWithFilters ดึง videos พร้อม filter, search, sort, pagination
func (r *VideoRepositoryImpl) ListWithFilters(ctx context.Context, params *dto.VideoFilterRequest) ([]*models.Video, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Video{})

	// Search (title หรือ description)
	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", searchTerm, searchTerm)
	}

	// Filter by relation ids (เก็บเป็น JSONB array จึงใช้ containment operator)
	if params.CategoryID != "" {
		query = query.Where("category_ids @> ?", fmt.Sprintf(`["%s"]`, params.CategoryID))
	}
	if params.GenreID != "" {
		query = query.Where("genre_ids @> ?", fmt.Sprintf(`["%s"]`, params.GenreID))
	}
	if params.CastMemberID != "" {
		query = query.Where("cast_member_ids @> ?", fmt.Sprintf(`["%s"]`, params.CastMemberID))
	}

	// Count total (before pagination)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sort (whitelist column จาก DTO validation)
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "asc" {
		sortOrder = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	// Pagination
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var videos []*models.Video
	err := query.Offset(offset).Limit(limit).Find(&videos).Error
	return videos, total, err
}

func (r *VideoRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Video{}).Count(&count).Error
	return count, err
}

// ExistsByIDs คืนเฉพาะ id ที่มี row อยู่จริง
func (r *VideoRepositoryImpl) ExistsByIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var existing []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.Video{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	return existing, err
}
