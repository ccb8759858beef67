package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/models"
	"catalog-admin/domain/repositories"
	"catalog-admin/domain/services"
	"catalog-admin/pkg/logger"
)

type GenreServiceImpl struct {
	genreRepo    repositories.GenreRepository
	categoryRepo repositories.CategoryRepository
}

func NewGenreService(genreRepo repositories.GenreRepository, categoryRepo repositories.CategoryRepository) services.GenreService {
	return &GenreServiceImpl{
		genreRepo:    genreRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *GenreServiceImpl) Create(ctx context.Context, req *dto.CreateGenreRequest) (*models.Genre, error) {
	newSlug := slug.Make(req.Name)

	existing, _ := s.genreRepo.GetBySlug(ctx, newSlug)
	if existing != nil {
		logger.WarnContext(ctx, "Genre slug already exists", "slug", newSlug)
		return nil, errors.New("genre already exists")
	}

	if err := s.checkCategories(ctx, req.CategoryIDs); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	genre := &models.Genre{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        newSlug,
		IsActive:    isActive,
		CategoryIDs: models.UUIDSlice(req.CategoryIDs),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if genre.CategoryIDs == nil {
		genre.CategoryIDs = models.UUIDSlice{}
	}

	if err := s.genreRepo.Create(ctx, genre); err != nil {
		logger.ErrorContext(ctx, "Failed to create genre", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Genre created", "genre_id", genre.ID, "name", genre.Name)
	return genre, nil
}

func (s *GenreServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	genre, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Genre not found", "genre_id", id)
		return nil, errors.New("genre not found")
	}
	return genre, nil
}

func (s *GenreServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateGenreRequest) (*models.Genre, error) {
	genre, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Genre not found for update", "genre_id", id)
		return nil, errors.New("genre not found")
	}

	if req.Name != nil {
		newSlug := slug.Make(*req.Name)
		existing, _ := s.genreRepo.GetBySlug(ctx, newSlug)
		if existing != nil && existing.ID != id {
			logger.WarnContext(ctx, "Genre slug already exists", "slug", newSlug)
			return nil, errors.New("genre already exists")
		}
		genre.Name = *req.Name
		genre.Slug = newSlug
	}
	if req.IsActive != nil {
		genre.IsActive = *req.IsActive
	}
	if req.CategoryIDs != nil {
		if err := s.checkCategories(ctx, req.CategoryIDs); err != nil {
			return nil, err
		}
		genre.CategoryIDs = models.UUIDSlice(req.CategoryIDs)
	}
	genre.UpdatedAt = time.Now()

	if err := s.genreRepo.Update(ctx, genre); err != nil {
		logger.ErrorContext(ctx, "Failed to update genre", "genre_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Genre updated", "genre_id", id)
	return genre, nil
}

func (s *GenreServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Genre not found for deletion", "genre_id", id)
		return errors.New("genre not found")
	}

	if err := s.genreRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete genre", "genre_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Genre deleted", "genre_id", id)
	return nil
}

func (s *GenreServiceImpl) List(ctx context.Context, page, limit int) ([]*models.Genre, int64, error) {
	offset := (page - 1) * limit
	genres, total, err := s.genreRepo.List(ctx, offset, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list genres", "error", err)
		return nil, 0, err
	}
	return genres, total, nil
}

// checkCategories ตรวจว่า category ids ที่ genre อ้างถึงมีอยู่จริงทุกตัว
func (s *GenreServiceImpl) checkCategories(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	existing, err := s.categoryRepo.ExistsByIDs(ctx, ids)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check categories", "error", err)
		return err
	}

	if len(existing) != len(ids) {
		found := make(map[uuid.UUID]bool, len(existing))
		for _, id := range existing {
			found[id] = true
		}
		var missing []string
		for _, id := range ids {
			if !found[id] {
				missing = append(missing, id.String())
			}
		}
		return fmt.Errorf("some categories could not be found: %s", strings.Join(missing, ", "))
	}

	return nil
}
