package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/ciphershare/go-cipher-share/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// IdentityRepository persists the local account identity, including the
// password-sealed private key, in the client's SQLite database.
type IdentityRepository interface {
	SaveIdentity(ctx context.Context, identity models.ClientIdentity) error
	GetIdentity(ctx context.Context, email string) (models.ClientIdentity, error)
	DeleteIdentity(ctx context.Context, email string) error
}

// DownloadHistoryRepository records which shared files were retrieved and
// where they were saved on the local machine.
type DownloadHistoryRepository interface {
	RecordDownload(ctx context.Context, record models.DownloadRecord) error
	ListDownloads(ctx context.Context, userID uuid.UUID) ([]models.DownloadRecord, error)
}
