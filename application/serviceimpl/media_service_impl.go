package serviceimpl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

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

type MediaServiceImpl struct {
	videoRepo   repositories.VideoRepository
	storage     ports.StoragePort
	publisher   ports.EventPublisherPort
	redisClient *redis.Client // optional
}

func NewMediaService(
	videoRepo repositories.VideoRepository,
	storage ports.StoragePort,
	publisher ports.EventPublisherPort,
	redisClient *redis.Client,
) services.MediaService {
	return &MediaServiceImpl{
		videoRepo:   videoRepo,
		storage:     storage,
		publisher:   publisher,
		redisClient: redisClient,
	}
}

// UploadMedia เก็บไฟล์ทุกชิ้นลง storage, attach เข้า video แล้ว persist ครั้งเดียว
// ถ้าเก็บไฟล์หรือ persist พลาดหลังมีไฟล์ลง storage ไปแล้ว = ลบไฟล์ทั้งหมด
// ใต้ prefix ของ video นั้นก่อน return error (retry เริ่มจากศูนย์ได้เสมอ)
func (s *MediaServiceImpl) UploadMedia(ctx context.Context, videoID uuid.UUID, resources []dto.MediaResource) (*models.Video, error) {
	if len(resources) == 0 {
		return nil, errors.New("no media resources provided")
	}

	// ตรวจ media type ให้ครบก่อน เพื่อไม่ต้อง rollback จาก type ที่ไม่รู้จัก
	seen := make(map[models.MediaType]bool, len(resources))
	for _, res := range resources {
		if _, ok := models.ParseMediaType(string(res.Type)); !ok {
			return nil, errors.New("invalid media type")
		}
		if seen[res.Type] {
			return nil, errors.New("duplicate media type in upload")
		}
		seen[res.Type] = true
	}

	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		logger.WarnContext(ctx, "Video not found for media upload", "video_id", videoID)
		return nil, errors.New("video not found")
	}

	// fail fast ก่อนแตะ storage ถ้า aggregate ไม่ผ่าน structural validation
	notification := validation.NewNotification()
	video.Validate(notification)
	if notification.HasErrors() {
		logger.WarnContext(ctx, "Video failed validation before media upload",
			"video_id", videoID, "errors", notification.Messages())
		return nil, notification
	}

	stored := false
	for _, res := range resources {
		path := utils.MediaStoragePath(videoID, res.Type)

		if _, err := s.storage.UploadFile(bytes.NewReader(res.Content), path, res.ContentType); err != nil {
			logger.ErrorContext(ctx, "Failed to store media, rolling back",
				"video_id", videoID, "media_type", res.Type, "error", err)
			if stored {
				s.clearStoredMedia(ctx, videoID)
			}
			return nil, fmt.Errorf("failed to store media for video %s: %w", videoID, err)
		}
		stored = true

		checksum := utils.Checksum(res.Content)
		switch res.Type {
		case models.MediaTypeVideo:
			video.UpdateVideoMedia(models.NewAudioVideoMedia(checksum, res.Name, path))
		case models.MediaTypeTrailer:
			video.UpdateTrailerMedia(models.NewAudioVideoMedia(checksum, res.Name, path))
		case models.MediaTypeBanner:
			video.SetBanner(models.NewImageMedia(checksum, res.Name, path))
		case models.MediaTypeThumbnail:
			video.SetThumbnail(models.NewImageMedia(checksum, res.Name, path))
		case models.MediaTypeThumbnailHalf:
			video.SetThumbnailHalf(models.NewImageMedia(checksum, res.Name, path))
		}
	}

	// persist ครั้งเดียว ไม่ commit ราย resource
	if err := s.videoRepo.Update(ctx, video); err != nil {
		logger.ErrorContext(ctx, "Failed to persist video after media upload, rolling back",
			"video_id", videoID, "error", err)
		s.clearStoredMedia(ctx, videoID)
		return nil, fmt.Errorf("failed to persist media for video %s: %w", videoID, err)
	}

	s.invalidateVideoCache(ctx, videoID)

	if err := s.publishEvents(ctx, video); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Media uploaded", "video_id", videoID, "count", len(resources))
	return video, nil
}

// publishEvents ส่ง events ที่ค้างอยู่ทีละรายการ แล้วค่อยล้างคิว
// ถ้า publish พลาดกลางทาง คิวไม่ถูกล้าง - retry รอบหน้าส่งชุดเดิมซ้ำ (at-least-once)
func (s *MediaServiceImpl) publishEvents(ctx context.Context, video *models.Video) error {
	pending := video.PendingEvents()
	if len(pending) == 0 {
		return nil
	}

	// messaging อาจไม่พร้อมตั้งแต่ boot (container ยอมให้ NATS ล่มได้)
	// events คงอยู่ในคิว retry รอบหน้าส่งใหม่ได้
	if s.publisher == nil {
		logger.ErrorContext(ctx, "Event publisher unavailable, events stay queued",
			"video_id", video.ID, "events", len(pending))
		return fmt.Errorf("event publisher unavailable for video %s", video.ID)
	}

	for _, event := range pending {
		if err := s.publisher.Publish(ctx, event); err != nil {
			logger.ErrorContext(ctx, "Failed to publish domain event",
				"video_id", video.ID, "event", event.EventName(), "error", err)
			return fmt.Errorf("failed to publish event %s for video %s: %w", event.EventName(), video.ID, err)
		}
	}
	video.DrainEvents()
	return nil
}

// clearStoredMedia ลบทุกไฟล์ใต้ prefix ของ video (bulk rollback)
func (s *MediaServiceImpl) clearStoredMedia(ctx context.Context, videoID uuid.UUID) {
	prefix := utils.MediaFolder(videoID)

	paths, err := s.storage.ListFiles(prefix)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list media for rollback", "video_id", videoID, "error", err)
		return
	}
	if len(paths) == 0 {
		return
	}

	if err := s.storage.DeleteFiles(paths); err != nil {
		logger.ErrorContext(ctx, "Failed to delete media during rollback",
			"video_id", videoID, "paths", len(paths), "error", err)
		return
	}

	logger.InfoContext(ctx, "Stored media rolled back", "video_id", videoID, "paths", len(paths))
}

// GetMedia อ่านไฟล์จาก storage ตาม path ของ slot ที่ขอ
func (s *MediaServiceImpl) GetMedia(ctx context.Context, videoID uuid.UUID, mediaType models.MediaType) (io.ReadCloser, string, string, error) {
	video, err := s.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, "", "", errors.New("video not found")
	}

	var location, name string
	switch mediaType {
	case models.MediaTypeVideo:
		if video.VideoFile != nil {
			location, name = video.VideoFile.RawLocation, video.VideoFile.Name
		}
	case models.MediaTypeTrailer:
		if video.Trailer != nil {
			location, name = video.Trailer.RawLocation, video.Trailer.Name
		}
	case models.MediaTypeBanner:
		if video.Banner != nil {
			location, name = video.Banner.Location, video.Banner.Name
		}
	case models.MediaTypeThumbnail:
		if video.Thumbnail != nil {
			location, name = video.Thumbnail.Location, video.Thumbnail.Name
		}
	case models.MediaTypeThumbnailHalf:
		if video.ThumbnailHalf != nil {
			location, name = video.ThumbnailHalf.Location, video.ThumbnailHalf.Name
		}
	default:
		return nil, "", "", errors.New("invalid media type")
	}

	if location == "" {
		return nil, "", "", errors.New("media not found")
	}

	reader, contentType, err := s.storage.GetFileContent(location)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read media from storage",
			"video_id", videoID, "media_type", mediaType, "error", err)
		return nil, "", "", fmt.Errorf("failed to read media for video %s: %w", videoID, err)
	}

	// storage key ไม่มีนามสกุล (videos/<id>/VIDEO) - local provider เดา type
	// จาก path ไม่ได้ ใช้ชื่อไฟล์ต้นฉบับของ slot แทน
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = utils.ContentTypeFromName(name)
	}

	return reader, contentType, name, nil
}

// UpdateMediaStatus รับสถานะจาก encoder แล้ว apply ลง slot ที่ resourceId ตรง
// ตรวจ slot video ก่อน trailer เสมอ / resourceId ที่ไม่ match = เงียบ ๆ
// เพราะ asset อาจถูกแทนที่ไปแล้ว ไม่ควรปลุก state เก่าขึ้นมา
func (s *MediaServiceImpl) UpdateMediaStatus(ctx context.Context, cmd *dto.UpdateMediaStatusCommand) error {
	video, err := s.videoRepo.GetByID(ctx, cmd.VideoID)
	if err != nil {
		logger.WarnContext(ctx, "Video not found for media status update", "video_id", cmd.VideoID)
		return errors.New("video not found")
	}

	var mediaType models.MediaType
	switch {
	case video.VideoFile != nil && video.VideoFile.ID == cmd.ResourceID:
		mediaType = models.MediaTypeVideo
	case video.Trailer != nil && video.Trailer.ID == cmd.ResourceID:
		mediaType = models.MediaTypeTrailer
	default:
		logger.DebugContext(ctx, "Media status update matches no slot, ignoring",
			"video_id", cmd.VideoID, "resource_id", cmd.ResourceID)
		return nil
	}

	switch cmd.Status {
	case models.MediaStatusPending:
		// pending คือสถานะเริ่มต้น ไม่มีการ re-apply
		return nil
	case models.MediaStatusProcessing:
		video.ApplyProcessing(mediaType)
	case models.MediaStatusCompleted:
		video.ApplyCompleted(mediaType, cmd.Folder+"/"+cmd.Filename)
	default:
		logger.WarnContext(ctx, "Unknown media status, ignoring",
			"video_id", cmd.VideoID, "status", cmd.Status)
		return nil
	}

	if err := s.videoRepo.Update(ctx, video); err != nil {
		logger.ErrorContext(ctx, "Failed to persist media status update",
			"video_id", cmd.VideoID, "status", cmd.Status, "error", err)
		return fmt.Errorf("failed to persist media status for video %s: %w", cmd.VideoID, err)
	}

	s.invalidateVideoCache(ctx, cmd.VideoID)

	logger.InfoContext(ctx, "Media status updated",
		"video_id", cmd.VideoID, "media_type", mediaType, "status", cmd.Status)
	return nil
}

// invalidateVideoCache ลบ cache ของ video
func (s *MediaServiceImpl) invalidateVideoCache(ctx context.Context, videoID uuid.UUID) {
	if s.redisClient == nil {
		return
	}
	cacheKey := videoCachePrefix + videoID.String()
	if err := s.redisClient.Del(ctx, cacheKey); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate video cache", "video_id", videoID, "error", err)
	}
}
