package handlers

import (
	"catalog-admin/domain/repositories"
	"catalog-admin/domain/services"
	natspkg "catalog-admin/infrastructure/nats"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService       services.UserService
	VideoService      services.VideoService
	MediaService      services.MediaService
	CategoryService   services.CategoryService
	GenreService      services.GenreService
	CastMemberService services.CastMemberService
	StorageService    services.StorageService
	UserRepository    repositories.UserRepository // สำหรับ websocket auth lookup
	NATSClient        *natspkg.Client // สำหรับ monitoring endpoint
	JWTSecret         string
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler       *AuthHandler
	VideoHandler      *VideoHandler
	MediaHandler      *MediaHandler
	CategoryHandler   *CategoryHandler
	GenreHandler      *GenreHandler
	CastMemberHandler *CastMemberHandler
	MonitoringHandler *MonitoringHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:       NewAuthHandler(services.UserService),
		VideoHandler:      NewVideoHandler(services.VideoService),
		MediaHandler:      NewMediaHandler(services.MediaService),
		CategoryHandler:   NewCategoryHandler(services.CategoryService),
		GenreHandler:      NewGenreHandler(services.GenreService),
		CastMemberHandler: NewCastMemberHandler(services.CastMemberService),
		MonitoringHandler: NewMonitoringHandler(services.NATSClient, services.StorageService),
	}
}
