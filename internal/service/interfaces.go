package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ciphershare/go-cipher-share/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (models.User, error)
	UpdateName(ctx context.Context, userID uuid.UUID, req models.UpdateNameRequest) (models.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, req models.UpdatePasswordRequest) error
	SavePublicKey(ctx context.Context, userID uuid.UUID, req models.SavePublicKeyRequest) error
	SearchUsers(ctx context.Context, selfID uuid.UUID, req models.SearchUsersRequest) (models.UserSearchResponse, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type FileService interface {
	Upload(ctx context.Context, ownerID uuid.UUID, req models.UploadFileRequest) (models.UploadFileResponse, error)
	GetShared(ctx context.Context, recipientID uuid.UUID, req models.SharedFileRequest) (models.SharedFileResponse, error)
	SentFiles(ctx context.Context, ownerID uuid.UUID, req models.ListRequest) (models.SentFilesResponse, error)
	ReceivedFiles(ctx context.Context, recipientID uuid.UUID, req models.ListRequest) (models.ReceivedFilesResponse, error)
}

// CleanupService removes shares whose expiration date has passed. It is
// driven by the background worker, not by HTTP handlers.
type CleanupService interface {
	DeleteExpired(ctx context.Context) (linksDeleted int64, filesDeleted int64, err error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
