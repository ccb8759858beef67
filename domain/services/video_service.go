package services

import (
	"context"

	"github.com/google/uuid"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/models"
)

type VideoService interface {
	// Create สร้าง video ใหม่ - validate structural invariants และ
	// existence ของ category/genre/cast-member รวมเป็น notification เดียว
	Create(ctx context.Context, req *dto.CreateVideoRequest) (*models.Video, error)

	// Update แก้ไขข้อมูลหลัก (media slots ไม่ถูกแตะ) ใช้ validation ชุดเดียวกับ Create
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateVideoRequest) (*models.Video, error)

	// GetByID ดึง video ตาม ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error)

	// List ดึง videos พร้อม filter + pagination
	List(ctx context.Context, params *dto.VideoFilterRequest) ([]*models.Video, int64, error)

	// Delete ลบ video และล้างไฟล์ของ video นั้นใน storage
	Delete(ctx context.Context, id uuid.UUID) error
}
