package service

import (
	"github.com/ciphershare/go-cipher-share/internal/config"
	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	FileService    FileService
	CleanupService CleanupService
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, cfg.App, logger),
		UserService:    NewUserService(repositories.UserRepository, logger),
		FileService:    NewFileService(repositories.FileRepository, repositories.SharedLinkRepository, logger),
		CleanupService: NewCleanupService(repositories.SharedLinkRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
