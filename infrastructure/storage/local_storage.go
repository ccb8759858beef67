package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"catalog-admin/domain/ports"
)

// LocalStorage implements StoragePort สำหรับเก็บไฟล์ใน local filesystem
type LocalStorage struct {
	basePath string // เส้นทางหลักที่เก็บไฟล์ (เช่น ./media)
	baseURL  string // URL สำหรับเข้าถึงไฟล์ (เช่น http://localhost:8080/files)
}

type LocalStorageConfig struct {
	BasePath string // ./media
	BaseURL  string // http://localhost:8080/files
}

// NewLocalStorage สร้าง LocalStorage instance
func NewLocalStorage(config LocalStorageConfig) (ports.StoragePort, error) {
	// สร้าง base directory ถ้ายังไม่มี
	if err := os.MkdirAll(config.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: config.BasePath,
		baseURL:  strings.TrimSuffix(config.BaseURL, "/"),
	}, nil
}

// UploadFile อัปโหลดไฟล์ไปยัง local filesystem
func (l *LocalStorage) UploadFile(file io.Reader, path string, contentType string) (string, error) {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	fullPath := filepath.Join(l.basePath, path)

	// สร้าง directory ถ้ายังไม่มี
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		// ลบไฟล์ที่เขียนไม่สำเร็จ
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

// DeleteFile ลบไฟล์จาก local filesystem
func (l *LocalStorage) DeleteFile(path string) error {
	path = strings.ReplaceAll(path, "\\", "/")
	fullPath := filepath.Join(l.basePath, path)

	// ไฟล์ไม่มีอยู่แล้ว ถือว่าสำเร็จ
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	// ลอง cleanup empty directories
	l.cleanupEmptyDirs(filepath.Dir(fullPath))

	return nil
}

// DeleteFiles ลบหลายไฟล์ต่อเนื่องกัน คืน error แรกที่พบหลังลองครบทุกไฟล์
func (l *LocalStorage) DeleteFiles(paths []string) error {
	var firstErr error
	for _, p := range paths {
		if err := l.DeleteFile(p); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// DeleteFolder ลบ folder ทั้งหมดจาก local filesystem
func (l *LocalStorage) DeleteFolder(prefix string) error {
	prefix = strings.ReplaceAll(prefix, "\\", "/")
	fullPath := filepath.Join(l.basePath, prefix)

	// folder ไม่มีอยู่แล้ว ถือว่าสำเร็จ
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}

	if err := os.RemoveAll(fullPath); err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}

	// Cleanup empty parent directories
	l.cleanupEmptyDirs(filepath.Dir(fullPath))

	return nil
}

// ListFiles list ไฟล์ทั้งหมดใน prefix (folder)
func (l *LocalStorage) ListFiles(prefix string) ([]string, error) {
	prefix = strings.ReplaceAll(prefix, "\\", "/")
	prefix = strings.TrimPrefix(prefix, "/")
	fullPath := filepath.Join(l.basePath, prefix)

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return []string{}, nil
	}

	var files []string
	err := filepath.Walk(fullPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		relPath, err := filepath.Rel(l.basePath, path)
		if err != nil {
			return err
		}
		// Normalize to forward slashes
		relPath = strings.ReplaceAll(relPath, "\\", "/")
		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	return files, nil
}

// GetFileURL สร้าง URL สำหรับเข้าถึงไฟล์
func (l *LocalStorage) GetFileURL(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return l.baseURL + path
}

// GetFileContent อ่านไฟล์จาก local filesystem
func (l *LocalStorage) GetFileContent(path string) (io.ReadCloser, string, error) {
	path = strings.ReplaceAll(path, "\\", "/")
	fullPath := filepath.Join(l.basePath, path)

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}

	// Detect content type from extension
	ext := strings.ToLower(filepath.Ext(path))
	contentType := "application/octet-stream"
	switch ext {
	case ".mp4":
		contentType = "video/mp4"
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".webp":
		contentType = "image/webp"
	}

	return file, contentType, nil
}

// GetProviderName return ชื่อ provider
func (l *LocalStorage) GetProviderName() string {
	return "local"
}

// cleanupEmptyDirs ลบ directory ว่างๆ ขึ้นไปจนถึง basePath
func (l *LocalStorage) cleanupEmptyDirs(dir string) {
	// ไม่ลบ basePath
	absBase, _ := filepath.Abs(l.basePath)
	absDir, _ := filepath.Abs(dir)

	for absDir != absBase && strings.HasPrefix(absDir, absBase) {
		entries, err := os.ReadDir(absDir)
		if err != nil || len(entries) > 0 {
			break
		}
		os.Remove(absDir)
		absDir = filepath.Dir(absDir)
	}
}
