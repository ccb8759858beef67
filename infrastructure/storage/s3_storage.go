package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"catalog-admin/domain/ports"
	"catalog-admin/pkg/logger"
)

// S3Storage implements StoragePort สำหรับ S3-Compatible Storage (MinIO / Cloudflare R2)
type S3Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string // URL สำหรับเข้าถึงไฟล์ public (ถ้ามี)
	endpoint  string
	useSSL    bool
}

type S3StorageConfig struct {
	Endpoint  string // minio:9000 หรือ xxx.r2.cloudflarestorage.com
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string // URL สำหรับเข้าถึงไฟล์ public (optional)
}

// NewS3Storage สร้าง S3Storage instance
func NewS3Storage(config S3StorageConfig) (ports.StoragePort, error) {
	// connection pool ใหญ่ขึ้นรองรับ media upload หลาย concurrent requests
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 50,
		MaxConnsPerHost:     100,
	}

	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure:    config.UseSSL,
		Region:    config.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// ตรวจสอบว่า bucket มีอยู่หรือไม่
	exists, err := client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	// สร้าง bucket ถ้ายังไม่มี
	if !exists {
		err = client.MakeBucket(ctx, config.Bucket, minio.MakeBucketOptions{
			Region: config.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logger.Info("S3 bucket created", "bucket", config.Bucket)
	}

	logger.Info("S3 storage initialized",
		"endpoint", config.Endpoint,
		"bucket", config.Bucket,
		"ssl", config.UseSSL,
	)

	return &S3Storage{
		client:    client,
		bucket:    config.Bucket,
		publicURL: strings.TrimSuffix(config.PublicURL, "/"),
		endpoint:  config.Endpoint,
		useSSL:    config.UseSSL,
	}, nil
}

func normalizeKey(path string) string {
	path = strings.TrimPrefix(path, "/")
	return strings.ReplaceAll(path, "\\", "/")
}

// UploadFile อัปโหลดไฟล์ไปยัง S3
func (s *S3Storage) UploadFile(file io.Reader, path string, contentType string) (string, error) {
	ctx := context.Background()
	path = normalizeKey(path)

	// ใช้ -1 สำหรับ size เพื่อให้ MinIO อ่านจนจบ (streaming)
	_, err := s.client.PutObject(ctx, s.bucket, path, file, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	logger.Debug("File uploaded to S3", "path", path, "content_type", contentType)

	return path, nil
}

// DeleteFile ลบไฟล์จาก S3
func (s *S3Storage) DeleteFile(path string) error {
	ctx := context.Background()
	path = normalizeKey(path)

	err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Debug("File deleted from S3", "path", path)
	return nil
}

// DeleteFiles ลบหลายไฟล์ในครั้งเดียว ผ่าน RemoveObjects batch API
func (s *S3Storage) DeleteFiles(paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	ctx := context.Background()

	objectsCh := make(chan minio.ObjectInfo, len(paths))
	go func() {
		defer close(objectsCh)
		for _, p := range paths {
			objectsCh <- minio.ObjectInfo{Key: normalizeKey(p)}
		}
	}()

	var firstErr error
	for rErr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rErr.Err != nil {
			logger.Warn("Failed to delete object", "key", rErr.ObjectName, "error", rErr.Err)
			if firstErr == nil {
				firstErr = rErr.Err
			}
		}
	}
	if firstErr != nil {
		return fmt.Errorf("failed to delete files: %w", firstErr)
	}

	logger.Debug("Files deleted from S3", "count", len(paths))
	return nil
}

// DeleteFolder ลบไฟล์ทั้งหมดใน folder (prefix)
// เช่น DeleteFolder("videos/abc123/") จะลบทุกไฟล์ที่ขึ้นต้นด้วย "videos/abc123/"
func (s *S3Storage) DeleteFolder(prefix string) error {
	keys, err := s.ListFiles(prefix)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		logger.Debug("No objects found to delete", "prefix", prefix)
		return nil
	}

	if err := s.DeleteFiles(keys); err != nil {
		return err
	}

	logger.Info("Folder deleted from S3", "prefix", prefix, "deleted", len(keys))
	return nil
}

// ListFiles คืน object keys ทั้งหมดใต้ prefix
func (s *S3Storage) ListFiles(prefix string) ([]string, error) {
	ctx := context.Background()

	prefix = normalizeKey(prefix)
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix = prefix + "/"
	}

	objectsCh := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	var keys []string
	for obj := range objectsCh {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// GetFileURL สร้าง URL สำหรับเข้าถึงไฟล์
func (s *S3Storage) GetFileURL(path string) string {
	path = normalizeKey(path)

	// ถ้ามี public URL ให้ใช้
	if s.publicURL != "" {
		return s.publicURL + "/" + path
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, path)
}

// GetFileContent อ่านไฟล์จาก S3 และ return io.ReadCloser
func (s *S3Storage) GetFileContent(path string) (io.ReadCloser, string, error) {
	ctx := context.Background()
	path = normalizeKey(path)

	obj, err := s.client.GetObject(ctx, s.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get object: %w", err)
	}

	// Get content type from object info
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, "", fmt.Errorf("failed to stat object: %w", err)
	}

	return obj, info.ContentType, nil
}

// GetProviderName return ชื่อ provider
func (s *S3Storage) GetProviderName() string {
	return "s3"
}
