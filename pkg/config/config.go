package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	NATS     NATSConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Log      LogConfig
	Storage  StorageConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NATSConfig configuration สำหรับ NATS JetStream
type NATSConfig struct {
	URL string // nats://localhost:4222
}

// RedisConfig สำหรับ cache read-side lookups
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int    // จำนวน backup files
	MaxAge     int    // วัน
	Compress   bool   // บีบอัด backup
}

type CORSConfig struct {
	AllowOrigins string // comma-separated origins
}

type StorageConfig struct {
	Type          string // local, s3
	BasePath      string // สำหรับ local: ./uploads
	BaseURL       string // URL สำหรับเข้าถึงไฟล์ (เช่น http://localhost:8080/files)
	MaxUploadSize int64  // ขนาดสูงสุดที่อัปโหลดได้ (bytes)
	CleanupCron   string // cron สำหรับลบไฟล์กำพร้า

	// S3-Compatible Storage (MinIO / Cloudflare R2)
	S3 S3Config
}

type S3Config struct {
	Endpoint  string // minio:9000 หรือ xxx.r2.cloudflarestorage.com
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool   // false สำหรับ MinIO local, true สำหรับ R2
	Region    string // auto สำหรับ R2
	PublicURL string // URL สำหรับเข้าถึงไฟล์ public (optional)
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// ไม่ error ถ้าไม่มี .env file (ใช้ environment variables แทน)
	}

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	maxUploadSize, _ := strconv.ParseInt(getEnv("STORAGE_MAX_UPLOAD_SIZE", "2147483648"), 10, 64) // 2GB default
	s3UseSSL := getEnv("S3_USE_SSL", "false") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Catalog Admin"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "catalog_admin"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", ""),
		},
		Storage: StorageConfig{
			Type:          getEnv("STORAGE_TYPE", "local"),
			BasePath:      getEnv("STORAGE_BASE_PATH", "./uploads"),
			BaseURL:       getEnv("STORAGE_BASE_URL", "http://localhost:8080/files"),
			MaxUploadSize: maxUploadSize,
			CleanupCron:   getEnv("STORAGE_CLEANUP_CRON", "0 3 * * *"),
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("S3_BUCKET", "videos"),
				UseSSL:    s3UseSSL,
				Region:    getEnv("S3_REGION", "auto"),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
