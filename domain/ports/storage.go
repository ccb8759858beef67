package ports

import (
	"io"
)

// StoragePort คือ interface หลักสำหรับ media storage
// ทำให้เปลี่ยน storage provider ได้ง่าย (Local, S3, etc.)
type StoragePort interface {
	// UploadFile อัปโหลดไฟล์ไปยัง storage
	// path: เส้นทางที่จะเก็บไฟล์ (เช่น "videos/uuid/VIDEO")
	// contentType: MIME type ของไฟล์
	// return: URL ที่เข้าถึงไฟล์ได้
	UploadFile(file io.Reader, path string, contentType string) (string, error)

	// DeleteFile ลบไฟล์จาก storage
	DeleteFile(path string) error

	// DeleteFiles ลบไฟล์หลายไฟล์ในครั้งเดียว
	// ใช้ rollback ไฟล์ที่เก็บไปแล้วเมื่อ attach ล้มเหลว
	DeleteFiles(paths []string) error

	// DeleteFolder ลบไฟล์ทั้งหมดใน folder (prefix)
	DeleteFolder(prefix string) error

	// ListFiles คืน path ของไฟล์ทั้งหมดใต้ prefix
	ListFiles(prefix string) ([]string, error)

	// GetFileURL รับ URL สำหรับเข้าถึงไฟล์
	GetFileURL(path string) string

	// GetFileContent อ่านไฟล์จาก storage
	// return: io.ReadCloser, contentType, error
	GetFileContent(path string) (io.ReadCloser, string, error)

	// GetProviderName ชื่อ provider (local, s3)
	GetProviderName() string
}
