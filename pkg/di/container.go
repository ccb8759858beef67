package di

import (
	"fmt"

	"catalog-admin/application/serviceimpl"
	"catalog-admin/domain/ports"
	"catalog-admin/domain/repositories"
	"catalog-admin/domain/services"
	"catalog-admin/infrastructure/messaging"
	natspkg "catalog-admin/infrastructure/nats"
	"catalog-admin/infrastructure/postgres"
	redispkg "catalog-admin/infrastructure/redis"
	"catalog-admin/infrastructure/storage"
	"catalog-admin/infrastructure/websocket"
	"catalog-admin/interfaces/api/handlers"
	"catalog-admin/pkg/config"
	"catalog-admin/pkg/logger"
	"catalog-admin/pkg/scheduler"

	"gorm.io/gorm"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client  // Redis client สำหรับ cache (optional)
	NATSClient     *natspkg.Client   // NATS connection + JetStream
	NATSPublisher  *natspkg.Publisher
	NATSSubscriber *natspkg.Subscriber
	Storage        ports.StoragePort // Port/Adapter pattern
	EventScheduler scheduler.EventScheduler

	// Messaging Ports (Clean Architecture interfaces)
	EventPublisher    ports.EventPublisherPort
	EncoderSubscriber ports.EncoderSubscriberPort

	// Repositories
	UserRepository       repositories.UserRepository
	VideoRepository      repositories.VideoRepository
	CategoryRepository   repositories.CategoryRepository
	GenreRepository      repositories.GenreRepository
	CastMemberRepository repositories.CastMemberRepository

	// Services
	UserService       services.UserService
	VideoService      services.VideoService
	MediaService      services.MediaService
	CategoryService   services.CategoryService
	GenreService      services.GenreService
	CastMemberService services.CastMemberService
	StorageService    services.StorageService

	// WebSocket & Broadcasting
	StatusBroadcaster *websocket.StatusBroadcaster // Encoder results → DB + WebSocket
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initStorageCleanup(); err != nil {
		return err
	}

	if err := c.initStatusBroadcaster(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
		"file", c.Config.Log.FilePath,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Initialize Redis Client (optional - graceful degradation)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	// Initialize NATS Client + JetStream
	natsConfig := natspkg.ClientConfig{
		URL: c.Config.NATS.URL,
	}
	natsClient, err := natspkg.NewClient(natsConfig)
	if err != nil {
		logger.Warn("NATS client initialization failed", "error", err)
	} else {
		c.NATSClient = natsClient
		c.NATSPublisher = natspkg.NewPublisher(natsClient)
		logger.Info("NATS client initialized", "url", c.Config.NATS.URL)

		// Initialize Messaging Ports (Clean Architecture)
		c.initMessagingPorts()
	}

	// Initialize Storage (Port/Adapter pattern)
	if err := c.initStorage(); err != nil {
		return err
	}

	// Initialize Scheduler
	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()
	logger.Info("Event scheduler started")

	return nil
}

// initMessagingPorts สร้าง messaging adapters (Clean Architecture)
func (c *Container) initMessagingPorts() {
	if c.NATSClient == nil {
		logger.Warn("Skipping messaging ports initialization (NATS not available)")
		return
	}

	// Event Publisher Port (media.created → JetStream)
	c.EventPublisher = messaging.NewNATSEventPublisher(c.NATSPublisher)

	// Encoder Subscriber Port (encoder.results → reconciler)
	natsSubscriber := natspkg.NewSubscriber(c.NATSClient.Conn())
	c.NATSSubscriber = natsSubscriber // เก็บ concrete type สำหรับ cleanup
	c.EncoderSubscriber = messaging.NewNATSEncoderSubscriber(natsSubscriber)

	logger.Info("Messaging ports initialized (Clean Architecture)")
}

// initStorage สร้าง storage adapter ตาม config
func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		// S3-Compatible Storage (MinIO / Cloudflare R2)
		s3Config := storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		}
		s3Storage, err := storage.NewS3Storage(s3Config)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage
		logger.Info("S3 Storage initialized",
			"endpoint", c.Config.Storage.S3.Endpoint,
			"bucket", c.Config.Storage.S3.Bucket,
		)

	default:
		localConfig := storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		}
		localStorage, err := storage.NewLocalStorage(localConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Storage.BasePath)
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.VideoRepository = postgres.NewVideoRepository(c.DB)
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.GenreRepository = postgres.NewGenreRepository(c.DB)
	c.CastMemberRepository = postgres.NewCastMemberRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret)
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository)
	c.GenreService = serviceimpl.NewGenreService(c.GenreRepository, c.CategoryRepository)
	c.CastMemberService = serviceimpl.NewCastMemberService(c.CastMemberRepository)

	// Video Service (with optional Redis cache + Singleflight locking)
	c.VideoService = serviceimpl.NewVideoService(
		c.VideoRepository,
		c.CategoryRepository,
		c.GenreRepository,
		c.CastMemberRepository,
		c.Storage,
		c.RedisClient,
	)
	if c.RedisClient != nil {
		logger.Info("Video service initialized with Redis cache")
	} else {
		logger.Info("Video service initialized without cache")
	}

	// Media Service (upload + rollback + event publish)
	c.MediaService = serviceimpl.NewMediaService(
		c.VideoRepository,
		c.Storage,
		c.EventPublisher,
		c.RedisClient,
	)
	logger.Info("Media service initialized", "has_publisher", c.EventPublisher != nil)

	logger.Info("Services initialized")
	return nil
}

func (c *Container) initStorageCleanup() error {
	cleanupConfig := serviceimpl.StorageCleanupConfig{
		CleanupCron:   c.Config.Storage.CleanupCron,
		LocalBasePath: c.Config.Storage.BasePath,
	}

	c.StorageService = serviceimpl.NewStorageCleanupService(
		cleanupConfig,
		c.VideoRepository,
		c.Storage,
		c.EventScheduler,
	)

	// Register cleanup job with scheduler
	if err := c.StorageService.RegisterCleanupJob(); err != nil {
		logger.Warn("Failed to register storage cleanup job", "error", err)
	} else {
		logger.Info("Storage cleanup job registered", "cron", cleanupConfig.CleanupCron)
	}

	logger.Info("Storage Cleanup Service initialized")
	return nil
}

func (c *Container) initStatusBroadcaster() error {
	// ตรวจสอบว่ามี EncoderSubscriber (interface) หรือไม่
	if c.EncoderSubscriber == nil {
		logger.Warn("EncoderSubscriber not available, status broadcasting disabled")
		return nil
	}

	// สร้าง Status Broadcaster ใช้ interface (Clean Architecture)
	c.StatusBroadcaster = websocket.NewStatusBroadcaster(c.EncoderSubscriber, c.MediaService, c.VideoRepository)

	// เริ่ม broadcaster
	if err := c.StatusBroadcaster.Start(); err != nil {
		logger.Warn("Failed to start status broadcaster", "error", err)
		return nil
	}

	logger.Info("Status broadcaster started (encoder results → DB + WebSocket)")
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Stop status broadcaster
	if c.StatusBroadcaster != nil {
		c.StatusBroadcaster.Stop()
		logger.Info("Status broadcaster stopped")
	}

	// Stop NATS subscriber
	if c.NATSSubscriber != nil {
		c.NATSSubscriber.Stop()
		logger.Info("NATS subscriber stopped")
	}

	// Stop scheduler
	if c.EventScheduler != nil {
		if c.EventScheduler.IsRunning() {
			c.EventScheduler.Stop()
			logger.Info("Event scheduler stopped")
		}
	}

	// Close NATS connection
	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		} else {
			logger.Info("NATS connection closed")
		}
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:       c.UserService,
		VideoService:      c.VideoService,
		MediaService:      c.MediaService,
		CategoryService:   c.CategoryService,
		GenreService:      c.GenreService,
		CastMemberService: c.CastMemberService,
		StorageService:    c.StorageService,
		UserRepository:    c.UserRepository,
		NATSClient:        c.NATSClient,
		JWTSecret:         c.Config.JWT.Secret,
	}
}
