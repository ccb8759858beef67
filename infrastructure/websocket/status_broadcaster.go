package websocket

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/models"
	"catalog-admin/domain/ports"
	"catalog-admin/domain/repositories"
	"catalog-admin/domain/services"
	"catalog-admin/pkg/logger"
)

// StatusBroadcaster รับผลจาก encoder, ส่งเข้า reconciler แล้ว broadcast
// สถานะล่าสุดไปยัง WebSocket clients
// ใช้ ports.EncoderSubscriberPort เพื่อ decouple จาก NATS implementation
type StatusBroadcaster struct {
	encoderSub   ports.EncoderSubscriberPort
	manager      *WebSocketManager
	mediaService services.MediaService
	videoRepo    repositories.VideoRepository
	running      bool
	runningMu    sync.Mutex
	cancelCtx    context.CancelFunc
}

// NewStatusBroadcaster สร้าง StatusBroadcaster ใหม่
func NewStatusBroadcaster(
	encoderSub ports.EncoderSubscriberPort,
	mediaService services.MediaService,
	videoRepo repositories.VideoRepository,
) *StatusBroadcaster {
	return &StatusBroadcaster{
		encoderSub:   encoderSub,
		manager:      Manager, // ใช้ global Manager
		mediaService: mediaService,
		videoRepo:    videoRepo,
	}
}

// Start เริ่ม broadcaster
func (sb *StatusBroadcaster) Start() error {
	sb.runningMu.Lock()
	if sb.running {
		sb.runningMu.Unlock()
		return nil
	}
	sb.running = true
	sb.runningMu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	sb.cancelCtx = cancel

	if err := sb.encoderSub.Subscribe(ctx, sb.handleEncoderResult); err != nil {
		sb.running = false
		return err
	}

	logger.Info("Media status broadcaster started")
	return nil
}

// Stop หยุด broadcaster
func (sb *StatusBroadcaster) Stop() error {
	sb.runningMu.Lock()
	defer sb.runningMu.Unlock()

	if !sb.running {
		return nil
	}
	sb.running = false

	if sb.cancelCtx != nil {
		sb.cancelCtx()
	}
	return sb.encoderSub.Unsubscribe()
}

// handleEncoderResult จัดการผลจาก encoder (ผ่าน interface)
func (sb *StatusBroadcaster) handleEncoderResult(result *ports.EncoderResultData) {
	if result == nil || result.VideoID == "" {
		logger.Warn("Invalid encoder result received")
		return
	}

	videoID, err := uuid.Parse(result.VideoID)
	if err != nil {
		logger.Warn("Invalid video id in encoder result", "video_id", result.VideoID, "error", err)
		return
	}

	status, ok := models.ParseMediaStatus(result.Status)
	if !ok {
		logger.Warn("Unknown status in encoder result", "video_id", result.VideoID, "status", result.Status)
		return
	}

	ctx := context.Background()

	cmd := &dto.UpdateMediaStatusCommand{
		Status:     status,
		VideoID:    videoID,
		ResourceID: result.ResourceID,
		Folder:     result.EncodedFolder,
		Filename:   result.Filename,
	}

	if err := sb.mediaService.UpdateMediaStatus(ctx, cmd); err != nil {
		// video หาย = terminal ไม่ retry (queue redelivery ก็ช่วยไม่ได้)
		logger.Warn("Media status update rejected",
			"video_id", result.VideoID,
			"resource_id", result.ResourceID,
			"error", err,
		)
		return
	}

	sb.broadcastSlotState(ctx, videoID, result.ResourceID)
}

// broadcastSlotState ดึงสถานะล่าสุดของ slot ที่ match resourceID แล้ว broadcast
func (sb *StatusBroadcaster) broadcastSlotState(ctx context.Context, videoID uuid.UUID, resourceID string) {
	video, err := sb.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		logger.Warn("Failed to load video for status broadcast", "video_id", videoID, "error", err)
		return
	}

	var update *dto.MediaStatusUpdate
	switch {
	case video.VideoFile != nil && video.VideoFile.ID == resourceID:
		update = &dto.MediaStatusUpdate{
			VideoID:         videoID.String(),
			MediaType:       models.MediaTypeVideo,
			Status:          video.VideoFile.Status,
			EncodedLocation: video.VideoFile.EncodedLocation,
		}
	case video.Trailer != nil && video.Trailer.ID == resourceID:
		update = &dto.MediaStatusUpdate{
			VideoID:         videoID.String(),
			MediaType:       models.MediaTypeTrailer,
			Status:          video.Trailer.Status,
			EncodedLocation: video.Trailer.EncodedLocation,
		}
	default:
		// asset ถูกแทนที่ระหว่างทาง ไม่ broadcast state เก่า
		return
	}

	sb.manager.BroadcastToAll("media_status", update)

	logger.Info("Media status broadcasted to WebSocket",
		"video_id", update.VideoID,
		"media_type", update.MediaType,
		"status", update.Status,
		"clients_count", sb.manager.GetTotalClients(),
	)
}
