package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/ciphershare/go-cipher-share/internal/logger"
)

func newTestSharedLinkRepo(t *testing.T) (*sharedLinkRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &sharedLinkRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestGetLinkForRecipient_Success(t *testing.T) {
	repo, mock, db := newTestSharedLinkRepo(t)
	defer db.Close()

	ctx := context.Background()
	linkID := uuid.New()
	fileID := uuid.New()
	recipientID := uuid.New()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "file_id", "recipient_user_id", "password", "expiration_date", "created_at"}).
		AddRow(linkID.String(), fileID.String(), recipientID.String(), "$argon2id$hash", now.Add(24*time.Hour), now)

	mock.ExpectQuery("SELECT id, file_id, recipient_user_id").
		WithArgs(linkID, recipientID).
		WillReturnRows(rows)

	link, err := repo.GetLinkForRecipient(ctx, linkID, recipientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link.ID != linkID {
		t.Errorf("expected link id %s, got %s", linkID, link.ID)
	}
	if link.FileID != fileID {
		t.Errorf("expected file id %s, got %s", fileID, link.FileID)
	}
	if link.Password != "$argon2id$hash" {
		t.Errorf("expected stored password hash to round-trip, got %q", link.Password)
	}
}

func TestGetLinkForRecipient_NotFound(t *testing.T) {
	repo, mock, db := newTestSharedLinkRepo(t)
	defer db.Close()

	ctx := context.Background()
	linkID := uuid.New()
	recipientID := uuid.New()

	// expired links, foreign links and unknown ids all produce an empty
	// result set through the WHERE clause
	mock.ExpectQuery("SELECT id, file_id, recipient_user_id").
		WithArgs(linkID, recipientID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_id", "recipient_user_id", "password", "expiration_date", "created_at"}))

	_, err := repo.GetLinkForRecipient(ctx, linkID, recipientID)
	if !errors.Is(err, ErrSharedLinkNotFound) {
		t.Fatalf("expected ErrSharedLinkNotFound, got %v", err)
	}
}

func TestGetLinkForRecipient_QueryError(t *testing.T) {
	repo, mock, db := newTestSharedLinkRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, file_id, recipient_user_id").
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetLinkForRecipient(ctx, uuid.New(), uuid.New())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrSharedLinkNotFound) {
		t.Fatal("infrastructure failure must not look like a missing link")
	}
}

func TestDeleteExpired_Success(t *testing.T) {
	repo, mock, db := newTestSharedLinkRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM shared_links").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM files").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	linksDeleted, filesDeleted, err := repo.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if linksDeleted != 3 {
		t.Errorf("expected 3 links deleted, got %d", linksDeleted)
	}
	if filesDeleted != 2 {
		t.Errorf("expected 2 files deleted, got %d", filesDeleted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteExpired_NothingToDelete(t *testing.T) {
	repo, mock, db := newTestSharedLinkRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM shared_links").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM files").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	linksDeleted, filesDeleted, err := repo.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if linksDeleted != 0 || filesDeleted != 0 {
		t.Errorf("expected zero deletions, got links=%d files=%d", linksDeleted, filesDeleted)
	}
}

func TestDeleteExpired_LinkDeleteFails_RollsBack(t *testing.T) {
	repo, mock, db := newTestSharedLinkRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM shared_links").
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	_, _, err := repo.DeleteExpired(ctx)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteExpired_FileDeleteFails_RollsBack(t *testing.T) {
	repo, mock, db := newTestSharedLinkRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM shared_links").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec("DELETE FROM files").
		WillReturnError(errors.New("db failure"))
	mock.ExpectRollback()

	_, _, err := repo.DeleteExpired(ctx)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteExpired_CommitFails(t *testing.T) {
	repo, mock, db := newTestSharedLinkRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM shared_links").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM files").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, _, err := repo.DeleteExpired(ctx)
	if !errors.Is(err, ErrCommitingTransaction) {
		t.Fatalf("expected ErrCommitingTransaction, got %v", err)
	}
}
