package handlers

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/models"
	"catalog-admin/domain/services"
	"catalog-admin/domain/validation"
	"catalog-admin/pkg/logger"
	"catalog-admin/pkg/utils"
)

// จำกัดขนาดไฟล์ที่รับ upload ต่อชิ้น
const maxMediaSize = 2 << 30 // 2 GB

type MediaHandler struct {
	mediaService services.MediaService
}

func NewMediaHandler(mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
	}
}

// Upload รับไฟล์ media 1 ชิ้น (multipart) แล้ว attach เข้า video
// POST /videos/:id/medias/:type
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	ctx := c.UserContext()

	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid video ID")
	}

	mediaType, ok := models.ParseMediaType(strings.ToUpper(c.Params("type")))
	if !ok {
		return utils.BadRequestResponse(c, "Invalid media type")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "Missing file in upload", "video_id", videoID, "error", err)
		return utils.BadRequestResponse(c, "File is required")
	}
	if fileHeader.Size > maxMediaSize {
		return utils.BadRequestResponse(c, "File too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open uploaded file", "video_id", videoID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read uploaded file", "video_id", videoID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resource := dto.MediaResource{
		Type:        mediaType,
		Name:        utils.SanitizeFileName(fileHeader.Filename),
		ContentType: contentType,
		Content:     content,
	}

	video, err := h.mediaService.UploadMedia(ctx, videoID, []dto.MediaResource{resource})
	if err != nil {
		if err.Error() == "video not found" {
			return utils.NotFoundResponse(c, "Video not found")
		}
		// aggregate ไม่ผ่าน structural validation - รายงานทุกข้อพร้อมกัน
		var notification *validation.Notification
		if errors.As(err, &notification) {
			logger.WarnContext(ctx, "Video failed validation before media upload",
				"video_id", videoID, "errors", notification.Messages())
			return utils.ValidationErrorResponse(c, notification.Messages())
		}
		logger.ErrorContext(ctx, "Media upload failed",
			"video_id", videoID, "media_type", mediaType, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Media uploaded",
		"video_id", videoID, "media_type", mediaType, "size", fileHeader.Size)

	return utils.CreatedResponse(c, uploadResponse(video, mediaType))
}

// uploadResponse สรุปสถานะ slot ที่เพิ่ง attach
func uploadResponse(video *models.Video, mediaType models.MediaType) dto.UploadMediaResponse {
	resp := dto.UploadMediaResponse{
		VideoID:   video.ID,
		MediaType: mediaType,
	}

	switch mediaType {
	case models.MediaTypeVideo:
		if video.VideoFile != nil {
			resp.Status = string(video.VideoFile.Status)
			resp.Location = video.VideoFile.RawLocation
		}
	case models.MediaTypeTrailer:
		if video.Trailer != nil {
			resp.Status = string(video.Trailer.Status)
			resp.Location = video.Trailer.RawLocation
		}
	case models.MediaTypeBanner:
		if video.Banner != nil {
			resp.Location = video.Banner.Location
		}
	case models.MediaTypeThumbnail:
		if video.Thumbnail != nil {
			resp.Location = video.Thumbnail.Location
		}
	case models.MediaTypeThumbnailHalf:
		if video.ThumbnailHalf != nil {
			resp.Location = video.ThumbnailHalf.Location
		}
	}

	return resp
}

// Get อ่านไฟล์ media ตาม (videoID, mediaType)
// GET /videos/:id/medias/:type
func (h *MediaHandler) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()

	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid video ID")
	}

	mediaType, ok := models.ParseMediaType(strings.ToUpper(c.Params("type")))
	if !ok {
		return utils.BadRequestResponse(c, "Invalid media type")
	}

	reader, contentType, name, err := h.mediaService.GetMedia(ctx, videoID, mediaType)
	if err != nil {
		switch err.Error() {
		case "video not found":
			return utils.NotFoundResponse(c, "Video not found")
		case "media not found":
			return utils.NotFoundResponse(c, "Media not found")
		}
		logger.ErrorContext(ctx, "Failed to fetch media",
			"video_id", videoID, "media_type", mediaType, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+name+`"`)
	return c.SendStream(reader)
}
