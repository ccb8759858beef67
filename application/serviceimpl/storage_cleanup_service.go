package serviceimpl

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"catalog-admin/domain/ports"
	"catalog-admin/domain/repositories"
	"catalog-admin/domain/services"
	"catalog-admin/pkg/logger"
	"catalog-admin/pkg/scheduler"
	"catalog-admin/pkg/utils"
)

// StorageCleanupConfig การตั้งค่าสำหรับ cleanup
type StorageCleanupConfig struct {
	CleanupCron   string // cron expression (default: "0 3 * * *" = 3 AM daily)
	LocalBasePath string // base path ของ local storage (สำหรับ disk stats)
}

// StorageCleanupService ลบ storage prefix ของ video ที่ไม่มี row ใน DB แล้ว
// กันไฟล์กำพร้าจากการลบ video ที่ DeleteFolder background พลาดไป
type StorageCleanupService struct {
	config    StorageCleanupConfig
	videoRepo repositories.VideoRepository
	storage   ports.StoragePort
	scheduler scheduler.EventScheduler
}

var _ services.StorageService = (*StorageCleanupService)(nil)

func NewStorageCleanupService(
	config StorageCleanupConfig,
	videoRepo repositories.VideoRepository,
	storage ports.StoragePort,
	eventScheduler scheduler.EventScheduler,
) services.StorageService {
	service := &StorageCleanupService{
		config:    config,
		videoRepo: videoRepo,
		storage:   storage,
		scheduler: eventScheduler,
	}

	if service.config.CleanupCron == "" {
		service.config.CleanupCron = "0 3 * * *"
	}

	return service
}

// RegisterCleanupJob ลงทะเบียน cleanup job กับ scheduler
func (s *StorageCleanupService) RegisterCleanupJob() error {
	return s.scheduler.AddJob("storage_cleanup", s.config.CleanupCron, func() {
		s.RunCleanup(context.Background())
	})
}

// RunCleanup หา video id จากทุก prefix ใน storage แล้วลบ prefix
// ที่ไม่เหลือ row ใน DB
func (s *StorageCleanupService) RunCleanup(ctx context.Context) {
	logger.InfoContext(ctx, "Starting storage cleanup")

	prefixIDs, err := s.listStoredVideoIDs(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list stored video prefixes", "error", err)
		return
	}
	if len(prefixIDs) == 0 {
		logger.InfoContext(ctx, "Storage cleanup finished", "orphans", 0)
		return
	}

	existing, err := s.videoRepo.ExistsByIDs(ctx, prefixIDs)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check video existence", "error", err)
		return
	}

	found := make(map[uuid.UUID]bool, len(existing))
	for _, id := range existing {
		found[id] = true
	}

	orphans := 0
	for _, id := range prefixIDs {
		if found[id] {
			continue
		}

		prefix := utils.MediaFolder(id)
		paths, err := s.storage.ListFiles(prefix)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to list orphaned prefix", "video_id", id, "error", err)
			continue
		}
		if err := s.storage.DeleteFiles(paths); err != nil {
			logger.ErrorContext(ctx, "Failed to delete orphaned media", "video_id", id, "error", err)
			continue
		}

		orphans++
		logger.InfoContext(ctx, "Orphaned media prefix removed", "video_id", id, "files", len(paths))
	}

	logger.InfoContext(ctx, "Storage cleanup finished", "prefixes", len(prefixIDs), "orphans", orphans)
}

// GetStorageStats ดึงสถิติ storage สำหรับ monitoring endpoint
func (s *StorageCleanupService) GetStorageStats(ctx context.Context) (*services.StorageStats, error) {
	videoCount, err := s.videoRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	prefixIDs, err := s.listStoredVideoIDs(ctx)
	if err != nil {
		return nil, err
	}

	stats := &services.StorageStats{
		Provider:       s.storage.GetProviderName(),
		VideoCount:     videoCount,
		StoredPrefixes: len(prefixIDs),
	}

	// disk stats เฉพาะ local provider - S3 ไม่มี filesystem ให้ stat
	if s.storage.GetProviderName() == "local" && s.config.LocalBasePath != "" {
		if info, err := utils.GetDiskInfo(s.config.LocalBasePath); err == nil {
			stats.DiskTotal = info.Total
			stats.DiskFree = info.Free
			stats.DiskUsed = info.Used
			stats.DiskUsedPercent = info.UsedPercent
		}
	}

	return stats, nil
}

// listStoredVideoIDs แปลง path "videos/<uuid>/..." เป็นชุด video id ไม่ซ้ำ
func (s *StorageCleanupService) listStoredVideoIDs(ctx context.Context) ([]uuid.UUID, error) {
	paths, err := s.storage.ListFiles("videos/")
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, path := range paths {
		parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
		if len(parts) < 2 {
			continue
		}
		id, err := uuid.Parse(parts[1])
		if err != nil {
			continue
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return ids, nil
}
