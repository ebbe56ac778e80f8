package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userColumns() []string {
	return []string{"id", "name", "email", "password", "public_key", "created_at", "updated_at"}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Name:     "John",
		Email:    "john@example.com",
		Password: "hash",
	}

	id := uuid.New()
	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns()).
		AddRow(id.String(), user.Name, user.Email, user.Password, nil, now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.Password).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != id {
		t.Errorf("expected ID=%s, got %s", id, created.ID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if created.PublicKey != nil {
		t.Errorf("expected nil public key on a fresh account, got %q", *created.PublicKey)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected created_at and updated_at to be populated")
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow(uuid.New().String())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestGetUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()
	now := time.Now()
	publicKey := "-----BEGIN PUBLIC KEY-----\nMIIB\n-----END PUBLIC KEY-----\n"

	rows := sqlmock.
		NewRows(userColumns()).
		AddRow(id.String(), "John", "john@example.com", "hash", publicKey, now, now)

	mock.ExpectQuery("SELECT id, name, email").
		WithArgs("john@example.com").
		WillReturnRows(rows)

	found, err := repo.GetUserByEmail(ctx, "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "john@example.com" {
		t.Errorf("expected email john@example.com, got %s", found.Email)
	}
	if found.PublicKey == nil || *found.PublicKey != publicKey {
		t.Errorf("expected public key to round-trip, got %v", found.PublicKey)
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, name, email").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.GetUserByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestGetUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()
	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns()).
		AddRow(id.String(), "John", "john@example.com", "hash", nil, now, now)

	mock.ExpectQuery("SELECT id, name, email").
		WithArgs(id).
		WillReturnRows(rows)

	found, err := repo.GetUserByID(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != id {
		t.Errorf("expected id %s, got %s", id, found.ID)
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery("SELECT id, name, email").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.GetUserByID(ctx, id)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateUserName_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()
	now := time.Now()

	rows := sqlmock.
		NewRows(userColumns()).
		AddRow(id.String(), "Johnny", "john@example.com", "hash", nil, now.Add(-time.Hour), now)

	mock.ExpectQuery("UPDATE users").
		WithArgs("Johnny", id).
		WillReturnRows(rows)

	updated, err := repo.UpdateUserName(ctx, id, "Johnny")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Johnny" {
		t.Errorf("expected name Johnny, got %s", updated.Name)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Error("expected updated_at to move past created_at")
	}
}

func TestUpdateUserName_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery("UPDATE users").
		WithArgs("Johnny", id).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.UpdateUserName(ctx, id, "Johnny")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateUserPassword_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec("UPDATE users").
		WithArgs("new-hash", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateUserPassword(ctx, id, "new-hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateUserPassword_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec("UPDATE users").
		WithArgs("new-hash", id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateUserPassword(ctx, id, "new-hash")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestSaveUserPublicKey_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()
	publicKey := "-----BEGIN PUBLIC KEY-----\nMIIB\n-----END PUBLIC KEY-----\n"

	mock.ExpectExec("UPDATE users").
		WithArgs(publicKey, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveUserPublicKey(ctx, id, publicKey); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveUserPublicKey_ExecError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec("UPDATE users").
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnError(errors.New("connection reset"))

	err := repo.SaveUserPublicKey(ctx, id, "key")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestSearchUsersByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	selfID := uuid.New()
	aliceID := uuid.New()
	bobID := uuid.New()

	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "public_key"}).
		AddRow(aliceID.String(), "Alice", "alice@example.com", "key-a").
		AddRow(bobID.String(), "Bob", "bob@example.com", "key-b")

	mock.ExpectQuery("SELECT id, name, email, public_key FROM users").
		WithArgs("%example%", selfID).
		WillReturnRows(rows)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("%example%", selfID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	req := models.SearchUsersRequest{Query: "example", Page: 1, Limit: models.DefaultPageLimit}

	found, total, err := repo.SearchUsersByEmail(ctx, req, selfID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 users, got %d", len(found))
	}
	if found[0].ID != aliceID || found[0].PublicKey != "key-a" {
		t.Errorf("unexpected first entry: %+v", found[0])
	}
	if total != 7 {
		t.Errorf("expected total=7, got %d", total)
	}
}

func TestSearchUsersByEmail_NoMatches(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	selfID := uuid.New()

	mock.ExpectQuery("SELECT id, name, email, public_key FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "public_key"}))

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	req := models.SearchUsersRequest{Query: "zzz", Page: 1, Limit: models.DefaultPageLimit}

	found, total, err := repo.SearchUsersByEmail(ctx, req, selfID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("expected empty result, got %d entries", len(found))
	}
	if total != 0 {
		t.Errorf("expected total=0, got %d", total)
	}
}

func TestSearchUsersByEmail_QueryError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	selfID := uuid.New()

	mock.ExpectQuery("SELECT id, name, email, public_key FROM users").
		WillReturnError(errors.New("db failure"))

	req := models.SearchUsersRequest{Query: "a", Page: 1, Limit: models.DefaultPageLimit}

	_, _, err := repo.SearchUsersByEmail(ctx, req, selfID)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUser(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(ctx, id)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
