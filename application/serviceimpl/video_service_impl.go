package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/models"
	"catalog-admin/domain/ports"
	"catalog-admin/domain/repositories"
	"catalog-admin/domain/services"
	"catalog-admin/domain/validation"
	"catalog-admin/infrastructure/redis"
	"catalog-admin/pkg/logger"
	"catalog-admin/pkg/utils"
)

const (
	videoCachePrefix = "video:"
	videoCacheTTL    = 5 * time.Minute
)

type VideoServiceImpl struct {
	videoRepo      repositories.VideoRepository
	categoryRepo   repositories.CategoryRepository
	genreRepo      repositories.GenreRepository
	castMemberRepo repositories.CastMemberRepository
	storage        ports.StoragePort
	redisClient    *redis.Client // optional - ถ้าไม่มีจะ query DB ตลอด
}

func NewVideoService(
	videoRepo repositories.VideoRepository,
	categoryRepo repositories.CategoryRepository,
	genreRepo repositories.GenreRepository,
	castMemberRepo repositories.CastMemberRepository,
	storage ports.StoragePort,
	redisClient *redis.Client,
) services.VideoService {
	return &VideoServiceImpl{
		videoRepo:      videoRepo,
		categoryRepo:   categoryRepo,
		genreRepo:      genreRepo,
		castMemberRepo: castMemberRepo,
		storage:        storage,
		redisClient:    redisClient,
	}
}

// Create สร้าง video ใหม่
// ตรวจ existence ของ ids ทุกชุด + structural invariants แล้วรวมทุกปัญหา
// เป็น notification เดียว - caller เห็นทุก error ในรอบเดียว ไม่ fail ทีละอัน
func (s *VideoServiceImpl) Create(ctx context.Context, req *dto.CreateVideoRequest) (*models.Video, error) {
	notification := validation.NewNotification()

	s.validateExistence(ctx, notification, "categories", req.CategoryIDs, s.categoryRepo.ExistsByIDs)
	s.validateExistence(ctx, notification, "genres", req.GenreIDs, s.genreRepo.ExistsByIDs)
	s.validateExistence(ctx, notification, "cast members", req.CastMemberIDs, s.castMemberRepo.ExistsByIDs)

	rating, _ := models.ParseRating(req.Rating)

	video := models.NewVideo(
		req.Title,
		req.Description,
		req.LaunchYear,
		req.Duration,
		req.Opened,
		req.Published,
		rating,
		req.CategoryIDs,
		req.GenreIDs,
		req.CastMemberIDs,
	)

	video.Validate(notification)

	if notification.HasErrors() {
		logger.WarnContext(ctx, "Video failed validation on create", "errors", notification.Messages())
		return nil, notification
	}

	if err := s.videoRepo.Create(ctx, video); err != nil {
		logger.ErrorContext(ctx, "Failed to create video", "error", err)
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	logger.InfoContext(ctx, "Video created", "video_id", video.ID, "title", video.Title)
	return video, nil
}

// Update แก้ไขข้อมูลหลัก validation ชุดเดียวกับ Create / media slots คงเดิม
func (s *VideoServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateVideoRequest) (*models.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Video not found for update", "video_id", id)
		return nil, errors.New("video not found")
	}

	notification := validation.NewNotification()

	s.validateExistence(ctx, notification, "categories", req.CategoryIDs, s.categoryRepo.ExistsByIDs)
	s.validateExistence(ctx, notification, "genres", req.GenreIDs, s.genreRepo.ExistsByIDs)
	s.validateExistence(ctx, notification, "cast members", req.CastMemberIDs, s.castMemberRepo.ExistsByIDs)

	rating, _ := models.ParseRating(req.Rating)

	video.Update(
		req.Title,
		req.Description,
		req.LaunchYear,
		req.Duration,
		req.Opened,
		req.Published,
		rating,
		req.CategoryIDs,
		req.GenreIDs,
		req.CastMemberIDs,
	)

	video.Validate(notification)

	if notification.HasErrors() {
		logger.WarnContext(ctx, "Video failed validation on update",
			"video_id", id, "errors", notification.Messages())
		return nil, notification
	}

	if err := s.videoRepo.Update(ctx, video); err != nil {
		logger.ErrorContext(ctx, "Failed to update video", "video_id", id, "error", err)
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	s.invalidateCache(ctx, id)

	logger.InfoContext(ctx, "Video updated", "video_id", id)
	return video, nil
}

func (s *VideoServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	// ถ้ามี Redis cache ใช้ GetOrSet pattern (Singleflight)
	if s.redisClient != nil {
		var video models.Video
		cacheKey := videoCachePrefix + id.String()

		err := s.redisClient.GetOrSet(ctx, cacheKey, &video, videoCacheTTL, func() (interface{}, error) {
			v, err := s.videoRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return v, nil
		})
		if err != nil {
			logger.WarnContext(ctx, "Video not found", "video_id", id)
			return nil, errors.New("video not found")
		}
		return &video, nil
	}

	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Video not found", "video_id", id)
		return nil, errors.New("video not found")
	}
	return video, nil
}

func (s *VideoServiceImpl) List(ctx context.Context, params *dto.VideoFilterRequest) ([]*models.Video, int64, error) {
	videos, total, err := s.videoRepo.ListWithFilters(ctx, params)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list videos", "error", err)
		return nil, 0, err
	}
	return videos, total, nil
}

// Delete ลบ video record แล้วล้างไฟล์ของ video นั้นใน storage แบบ background
func (s *VideoServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Video not found for deletion", "video_id", id)
		return errors.New("video not found")
	}

	if err := s.videoRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete video", "video_id", id, "error", err)
		return fmt.Errorf("failed to delete video: %w", err)
	}

	s.invalidateCache(ctx, id)

	// ลบไฟล์ background - ถ้าพลาด cleanup job จะเก็บตก prefix กำพร้าให้
	go func() {
		prefix := utils.MediaFolder(id)
		if err := s.storage.DeleteFolder(prefix); err != nil {
			logger.Error("Failed to delete video media folder", "video_id", id, "error", err)
		}
	}()

	logger.InfoContext(ctx, "Video deleted", "video_id", id)
	return nil
}

// validateExistence ตรวจว่า ids ทุกตัวมีอยู่จริง
// ตัวที่หายถูก append ลง notification เป็นข้อความเดียวต่อ aggregate
func (s *VideoServiceImpl) validateExistence(
	ctx context.Context,
	notification *validation.Notification,
	label string,
	ids []uuid.UUID,
	existsByIDs func(context.Context, []uuid.UUID) ([]uuid.UUID, error),
) {
	if len(ids) == 0 {
		return
	}

	existing, err := existsByIDs(ctx, ids)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check existence", "aggregate", label, "error", err)
		notification.Append(fmt.Sprintf("could not verify %s", label))
		return
	}

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

	if len(missing) > 0 {
		notification.Append(fmt.Sprintf("Some %s could not be found: %s", label, strings.Join(missing, ", ")))
	}
}

// invalidateCache ลบ cache ของ video
func (s *VideoServiceImpl) invalidateCache(ctx context.Context, id uuid.UUID) {
	if s.redisClient == nil {
		return
	}
	cacheKey := videoCachePrefix + id.String()
	if err := s.redisClient.Del(ctx, cacheKey); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate video cache", "video_id", id, "error", err)
	}
}
