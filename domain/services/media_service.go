package services

import (
	"context"
	"io"

	"github.com/google/uuid"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/models"
)

type MediaService interface {
	// UploadMedia เก็บ resources ลง storage, attach เข้า aggregate,
	// persist ครั้งเดียว แล้ว publish events ที่ค้างอยู่
	// ถ้าพลาดหลังเก็บไฟล์ไปแล้วบางส่วน = rollback ไฟล์ทั้งหมดใต้ video id นั้น
	UploadMedia(ctx context.Context, videoID uuid.UUID, resources []dto.MediaResource) (*models.Video, error)

	// GetMedia อ่านไฟล์ media ตาม (videoID, mediaType)
	// return: reader, contentType, displayName, error
	GetMedia(ctx context.Context, videoID uuid.UUID, mediaType models.MediaType) (io.ReadCloser, string, string, error)

	// UpdateMediaStatus รับผลจาก encoder แล้ว apply transition ลง slot ที่ match
	// resourceId ที่ไม่ match slot ไหนเลย = เงียบ ๆ ไม่ถือเป็น error
	UpdateMediaStatus(ctx context.Context, cmd *dto.UpdateMediaStatusCommand) error
}
