package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ciphershare/go-cipher-share/internal/adapter"
	"github.com/ciphershare/go-cipher-share/internal/crypto"
	"github.com/ciphershare/go-cipher-share/internal/store"
	"github.com/ciphershare/go-cipher-share/internal/utils"
	"github.com/ciphershare/go-cipher-share/models"
)

type clientFileService struct {
	localStore       *store.ClientStorages
	adapter          adapter.ServerAdapter
	fileCipher       crypto.FileCipherService
	clientKeyService ClientKeyService
	ids              *utils.UUIDGenerator
	downloadDir      string
}

func NewClientFileService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, fileCipher crypto.FileCipherService, keySvc ClientKeyService, downloadDir string) ClientFileService {
	return &clientFileService{
		localStore:       localStore,
		adapter:          serverAdapter,
		fileCipher:       fileCipher,
		clientKeyService: keySvc,
		ids:              utils.NewUUIDGenerator(),
		downloadDir:      downloadDir,
	}
}

func (f *clientFileService) SearchRecipients(ctx context.Context, req models.SearchUsersRequest) (models.UserSearchResponse, error) {
	page, err := f.adapter.SearchUsers(ctx, req)
	if err != nil {
		return models.UserSearchResponse{}, mapAdapterError(err)
	}

	return page, nil
}

func (f *clientFileService) Upload(ctx context.Context, req models.ClientUploadRequest) (models.UploadFileResponse, error) {
	content, err := os.ReadFile(req.FilePath)
	if err != nil {
		return models.UploadFileResponse{}, fmt.Errorf("read file: %w", err)
	}

	fileKey, err := f.fileCipher.GenerateFileKey()
	if err != nil {
		return models.UploadFileResponse{}, fmt.Errorf("generate file key: %w", err)
	}

	ciphertext, iv, err := f.fileCipher.EncryptFile(content, fileKey)
	if err != nil {
		return models.UploadFileResponse{}, fmt.Errorf("encrypt file: %w", err)
	}

	wrappedKey, err := f.clientKeyService.WrapFileKey(fileKey, req.RecipientPublicKey)
	if err != nil {
		return models.UploadFileResponse{}, err
	}

	created, err := f.adapter.Upload(ctx, models.UploadFileRequest{
		FileName:        filepath.Base(req.FilePath),
		FileSize:        int64(len(ciphertext)),
		EncryptedAESKey: wrappedKey,
		EncryptedFile:   ciphertext,
		IV:              iv,
		RecipientUserID: req.RecipientID,
		Password:        req.LinkPassword,
		ExpirationDate:  req.ExpirationDate,
	})
	if err != nil {
		return models.UploadFileResponse{}, mapAdapterError(err)
	}

	return created, nil
}

func (f *clientFileService) Retrieve(ctx context.Context, req models.ClientRetrieveRequest) (models.ClientRetrieveResult, error) {
	shared, err := f.adapter.GetSharedFile(ctx, models.SharedFileRequest{LinkID: req.LinkID, Password: req.Password})
	if err != nil {
		return models.ClientRetrieveResult{}, mapAdapterError(err)
	}

	fileKey, err := f.clientKeyService.UnwrapFileKey(shared.EncryptedAESKey)
	if err != nil {
		return models.ClientRetrieveResult{}, err
	}

	plaintext, err := f.fileCipher.DecryptFile(shared.EncryptedFile, fileKey, shared.IV)
	if err != nil {
		return models.ClientRetrieveResult{}, fmt.Errorf("decrypt file: %w", err)
	}

	savedTo, err := f.saveDownload(shared.FileName, plaintext)
	if err != nil {
		return models.ClientRetrieveResult{}, err
	}

	record := models.DownloadRecord{
		ID:           f.ids.Generate(),
		UserID:       req.UserID,
		LinkID:       req.LinkID,
		FileName:     shared.FileName,
		FileSize:     int64(len(plaintext)),
		SenderEmail:  req.SenderEmail,
		Checksum:     f.clientKeyService.Checksum(plaintext),
		SavedTo:      savedTo,
		DownloadedAt: time.Now().UTC(),
	}
	if err = f.localStore.DownloadHistoryRepository.RecordDownload(ctx, record); err != nil {
		return models.ClientRetrieveResult{}, fmt.Errorf("record download: %w", err)
	}

	return models.ClientRetrieveResult{
		FileName: shared.FileName,
		SavedTo:  savedTo,
		Size:     int64(len(plaintext)),
		Checksum: record.Checksum,
	}, nil
}

func (f *clientFileService) SentFiles(ctx context.Context, req models.ListRequest) (models.SentFilesResponse, error) {
	page, err := f.adapter.SentFiles(ctx, req)
	if err != nil {
		return models.SentFilesResponse{}, mapAdapterError(err)
	}

	return page, nil
}

func (f *clientFileService) ReceivedFiles(ctx context.Context, req models.ListRequest) (models.ReceivedFilesResponse, error) {
	page, err := f.adapter.ReceivedFiles(ctx, req)
	if err != nil {
		return models.ReceivedFilesResponse{}, mapAdapterError(err)
	}

	return page, nil
}

func (f *clientFileService) Downloads(ctx context.Context, userID uuid.UUID) ([]models.DownloadRecord, error) {
	records, err := f.localStore.DownloadHistoryRepository.ListDownloads(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list downloads: %w", err)
	}

	return records, nil
}

// saveDownload writes content into the download directory. The server-sent
// name is flattened to its base name so it cannot escape the directory, and
// an existing file is never overwritten: "report.pdf" becomes
// "report (1).pdf" and so on.
func (f *clientFileService) saveDownload(fileName string, content []byte) (string, error) {
	if err := os.MkdirAll(f.downloadDir, 0o700); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	name := filepath.Base(fileName)
	if name == "." || name == "/" {
		name = "download"
	}

	path := uniquePath(f.downloadDir, name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("save file: %w", err)
	}

	return path, nil
}

// uniquePath returns dir/name, appending " (N)" before the extension until
// the name is free.
func uniquePath(dir, name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	path := filepath.Join(dir, name)
	for n := 1; ; n++ {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
	}
}
