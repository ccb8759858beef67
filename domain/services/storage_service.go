package services

import (
	"context"
)

// StorageService interface สำหรับ storage maintenance และ monitoring
type StorageService interface {
	// RunCleanup ลบ storage prefix ของ video ที่ไม่มี row ใน DB แล้ว
	RunCleanup(ctx context.Context)

	// GetStorageStats ดึงสถิติ storage สำหรับ monitoring endpoint
	GetStorageStats(ctx context.Context) (*StorageStats, error)

	// RegisterCleanupJob ลงทะเบียน cleanup job กับ scheduler
	RegisterCleanupJob() error
}

// StorageStats สถิติ storage
type StorageStats struct {
	Provider        string  `json:"provider"`
	VideoCount      int64   `json:"videoCount"`
	StoredPrefixes  int     `json:"storedPrefixes"`
	DiskTotal       uint64  `json:"diskTotal,omitempty"`       // bytes (local provider เท่านั้น)
	DiskFree        uint64  `json:"diskFree,omitempty"`        // bytes
	DiskUsed        uint64  `json:"diskUsed,omitempty"`        // bytes
	DiskUsedPercent float64 `json:"diskUsedPercent,omitempty"` // percentage
}
