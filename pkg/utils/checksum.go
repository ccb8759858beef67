package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"catalog-admin/domain/models"
)

// Checksum คำนวณ checksum ของ content (sha256 hex)
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// MediaFolder prefix ใน storage ของ video 1 ตัว
func MediaFolder(videoID uuid.UUID) string {
	return fmt.Sprintf("videos/%s", videoID)
}

// MediaStoragePath path แบบ deterministic ของ media slot ใน storage
// ไฟล์ใหม่ใน slot เดิมจะทับ path เดิมเสมอ
func MediaStoragePath(videoID uuid.UUID, mediaType models.MediaType) string {
	return fmt.Sprintf("%s/%s", MediaFolder(videoID), mediaType)
}
