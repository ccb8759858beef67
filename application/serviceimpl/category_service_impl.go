package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/models"
	"catalog-admin/domain/repositories"
	"catalog-admin/domain/services"
	"catalog-admin/pkg/logger"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	newSlug := slug.Make(req.Name)

	// ตรวจสอบว่า slug ซ้ำหรือไม่
	existing, _ := s.categoryRepo.GetBySlug(ctx, newSlug)
	if existing != nil {
		logger.WarnContext(ctx, "Category slug already exists", "slug", newSlug)
		return nil, errors.New("category already exists")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := &models.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        newSlug,
		Description: req.Description,
		IsActive:    isActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

func (s *CategoryServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Category not found", "category_id", id)
		return nil, errors.New("category not found")
	}
	return category, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Category not found for update", "category_id", id)
		return nil, errors.New("category not found")
	}

	if req.Name != nil {
		newSlug := slug.Make(*req.Name)
		existing, _ := s.categoryRepo.GetBySlug(ctx, newSlug)
		if existing != nil && existing.ID != id {
			logger.WarnContext(ctx, "Category slug already exists", "slug", newSlug)
			return nil, errors.New("category already exists")
		}
		category.Name = *req.Name
		category.Slug = newSlug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to update category", "category_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category updated", "category_id", id)
	return category, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Category not found for deletion", "category_id", id)
		return errors.New("category not found")
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Category deleted", "category_id", id)
	return nil
}

func (s *CategoryServiceImpl) List(ctx context.Context, page, limit int) ([]*models.Category, int64, error) {
	offset := (page - 1) * limit
	categories, total, err := s.categoryRepo.List(ctx, offset, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories", "error", err)
		return nil, 0, err
	}
	return categories, total, nil
}
