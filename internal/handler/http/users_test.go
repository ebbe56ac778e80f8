package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/internal/service"
	"github.com/ciphershare/go-cipher-share/internal/store"
	"github.com/ciphershare/go-cipher-share/internal/utils"
	"github.com/ciphershare/go-cipher-share/models"
)

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

// mockUserService implements service.UserService for unit tests.
// Each method field can be overridden per test case.
type mockUserService struct {
	getProfileFn     func(ctx context.Context, userID uuid.UUID) (models.User, error)
	updateNameFn     func(ctx context.Context, userID uuid.UUID, req models.UpdateNameRequest) (models.User, error)
	updatePasswordFn func(ctx context.Context, userID uuid.UUID, req models.UpdatePasswordRequest) error
	savePublicKeyFn  func(ctx context.Context, userID uuid.UUID, req models.SavePublicKeyRequest) error
	searchUsersFn    func(ctx context.Context, selfID uuid.UUID, req models.SearchUsersRequest) (models.UserSearchResponse, error)
	deleteAccountFn  func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockUserService) GetProfile(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockUserService) UpdateName(ctx context.Context, userID uuid.UUID, req models.UpdateNameRequest) (models.User, error) {
	return m.updateNameFn(ctx, userID, req)
}

func (m *mockUserService) UpdatePassword(ctx context.Context, userID uuid.UUID, req models.UpdatePasswordRequest) error {
	return m.updatePasswordFn(ctx, userID, req)
}

func (m *mockUserService) SavePublicKey(ctx context.Context, userID uuid.UUID, req models.SavePublicKeyRequest) error {
	return m.savePublicKeyFn(ctx, userID, req)
}

func (m *mockUserService) SearchUsers(ctx context.Context, selfID uuid.UUID, req models.SearchUsersRequest) (models.UserSearchResponse, error) {
	return m.searchUsersFn(ctx, selfID, req)
}

func (m *mockUserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return m.deleteAccountFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithUsers builds a Handler with the given UserService mock.
func newHandlerWithUsers(t *testing.T, users service.UserService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{UserService: users}, logger.Nop())
}

// withUserID injects the authenticated user's ID into ctx the same way the
// auth middleware does.
func withUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, utils.UserIDCtxKey, userID)
}

// authedRequest builds a request that carries userID in its context.
func authedRequest(method, target string, body string, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(withUserID(req.Context(), userID))
}

// ─────────────────────────────────────────────
// getProfile
// ─────────────────────────────────────────────

func TestGetProfile_Success(t *testing.T) {
	selfID := uuid.New()
	users := &mockUserService{
		getProfileFn: func(_ context.Context, userID uuid.UUID) (models.User, error) {
			return models.User{ID: userID, Name: "Alice", Email: "alice@example.com"}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	rec := httptest.NewRecorder()

	h.getProfile(rec, authedRequest(http.MethodGet, "/api/users/me", "", selfID))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, selfID, got.ID)
	assert.Equal(t, "alice@example.com", got.Email)

	// The password hash must never appear in any API response.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestGetProfile_NoUserID(t *testing.T) {
	h := newHandlerWithUsers(t, &mockUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()

	h.getProfile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no user ID provided")
}

func TestGetProfile_NotFound(t *testing.T) {
	users := &mockUserService{
		getProfileFn: func(_ context.Context, _ uuid.UUID) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithUsers(t, users)
	rec := httptest.NewRecorder()

	h.getProfile(rec, authedRequest(http.MethodGet, "/api/users/me", "", uuid.New()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// updateName
// ─────────────────────────────────────────────

func TestUpdateName_Success(t *testing.T) {
	selfID := uuid.New()
	users := &mockUserService{
		updateNameFn: func(_ context.Context, userID uuid.UUID, req models.UpdateNameRequest) (models.User, error) {
			return models.User{ID: userID, Name: req.Name}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	rec := httptest.NewRecorder()

	body := `{"name":"Alice Cooper"}`
	h.updateName(rec, authedRequest(http.MethodPatch, "/api/users/name", body, selfID))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Alice Cooper", got.Name)
}

func TestUpdateName_InvalidJSON(t *testing.T) {
	h := newHandlerWithUsers(t, &mockUserService{})
	rec := httptest.NewRecorder()

	h.updateName(rec, authedRequest(http.MethodPatch, "/api/users/name", "{broken", uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestUpdateName_InvalidData(t *testing.T) {
	users := &mockUserService{
		updateNameFn: func(_ context.Context, _ uuid.UUID, _ models.UpdateNameRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithUsers(t, users)
	rec := httptest.NewRecorder()

	h.updateName(rec, authedRequest(http.MethodPatch, "/api/users/name", `{"name":""}`, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// updatePassword
// ─────────────────────────────────────────────

func TestUpdatePassword_Success(t *testing.T) {
	var gotReq models.UpdatePasswordRequest
	users := &mockUserService{
		updatePasswordFn: func(_ context.Context, _ uuid.UUID, req models.UpdatePasswordRequest) error {
			gotReq = req
			return nil
		},
	}

	h := newHandlerWithUsers(t, users)
	rec := httptest.NewRecorder()

	body := `{"old_password":"old secret","new_password":"new secret","new_password_confirm":"new secret"}`
	h.updatePassword(rec, authedRequest(http.MethodPatch, "/api/users/password", body, uuid.New()))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "old secret", gotReq.OldPassword)
	assert.Equal(t, "new secret", gotReq.NewPassword)
}

func TestUpdatePassword_WrongOldPassword(t *testing.T) {
	users := &mockUserService{
		updatePasswordFn: func(_ context.Context, _ uuid.UUID, _ models.UpdatePasswordRequest) error {
			return service.ErrWrongPassword
		},
	}

	h := newHandlerWithUsers(t, users)
	rec := httptest.NewRecorder()

	body := `{"old_password":"wrong","new_password":"new secret","new_password_confirm":"new secret"}`
	h.updatePassword(rec, authedRequest(http.MethodPatch, "/api/users/password", body, uuid.New()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdatePassword_InvalidJSON(t *testing.T) {
	h := newHandlerWithUsers(t, &mockUserService{})
	rec := httptest.NewRecorder()

	h.updatePassword(rec, authedRequest(http.MethodPatch, "/api/users/password", "not json", uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// savePublicKey
// ─────────────────────────────────────────────

func TestSavePublicKey_Success(t *testing.T) {
	var gotKey string
	users := &mockUserService{
		savePublicKeyFn: func(_ context.Context, _ uuid.UUID, req models.SavePublicKeyRequest) error {
			gotKey = req.PublicKey
			return nil
		},
	}

	h := newHandlerWithUsers(t, users)
	rec := httptest.NewRecorder()

	h.savePublicKey(rec, authedRequest(http.MethodPut, "/api/users/key", `{"public_key":"-----BEGIN PUBLIC KEY-----"}`, uuid.New()))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "-----BEGIN PUBLIC KEY-----", gotKey)
}

func TestSavePublicKey_InvalidData(t *testing.T) {
	users := &mockUserService{
		savePublicKeyFn: func(_ context.Context, _ uuid.UUID, _ models.SavePublicKeyRequest) error {
			return service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithUsers(t, users)
	rec := httptest.NewRecorder()

	h.savePublicKey(rec, authedRequest(http.MethodPut, "/api/users/key", `{"public_key":"not a key"}`, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// searchUsers
// ─────────────────────────────────────────────

func TestSearchUsers_Success(t *testing.T) {
	selfID := uuid.New()
	var gotReq models.SearchUsersRequest

	users := &mockUserService{
		searchUsersFn: func(_ context.Context, _ uuid.UUID, req models.SearchUsersRequest) (models.UserSearchResponse, error) {
			gotReq = req
			return models.UserSearchResponse{
				Users: []models.UserSearchEntry{{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"}},
				Page:  req.Page,
				Limit: req.Limit,
				Total: 1,
			}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	rec := httptest.NewRecorder()

	h.searchUsers(rec, authedRequest(http.MethodGet, "/api/users/search?email=bob&page=2&limit=5", "", selfID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bob", gotReq.Query)
	assert.Equal(t, 2, gotReq.Page)
	assert.Equal(t, 5, gotReq.Limit)

	var resp models.UserSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "bob@example.com", resp.Users[0].Email)
}

// TestSearchUsers_OmittedPagingPassesZero verifies that absent page/limit
// parameters reach the service as zero values; the service substitutes its
// own defaults.
func TestSearchUsers_OmittedPagingPassesZero(t *testing.T) {
	var gotReq models.SearchUsersRequest

	users := &mockUserService{
		searchUsersFn: func(_ context.Context, _ uuid.UUID, req models.SearchUsersRequest) (models.UserSearchResponse, error) {
			gotReq = req
			return models.UserSearchResponse{}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	rec := httptest.NewRecorder()

	h.searchUsers(rec, authedRequest(http.MethodGet, "/api/users/search?email=bob", "", uuid.New()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, gotReq.Page)
	assert.Zero(t, gotReq.Limit)
}

func TestSearchUsers_BadPageParam(t *testing.T) {
	h := newHandlerWithUsers(t, &mockUserService{})
	rec := httptest.NewRecorder()

	h.searchUsers(rec, authedRequest(http.MethodGet, "/api/users/search?email=bob&page=abc", "", uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid data provided")
}

func TestSearchUsers_BadLimitParam(t *testing.T) {
	h := newHandlerWithUsers(t, &mockUserService{})
	rec := httptest.NewRecorder()

	h.searchUsers(rec, authedRequest(http.MethodGet, "/api/users/search?email=bob&limit=ten", "", uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchUsers_ServiceError(t *testing.T) {
	users := &mockUserService{
		searchUsersFn: func(_ context.Context, _ uuid.UUID, _ models.SearchUsersRequest) (models.UserSearchResponse, error) {
			return models.UserSearchResponse{}, store.ErrExecutingQuery
		},
	}

	h := newHandlerWithUsers(t, users)
	rec := httptest.NewRecorder()

	h.searchUsers(rec, authedRequest(http.MethodGet, "/api/users/search?email=bob", "", uuid.New()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// deleteAccount
// ─────────────────────────────────────────────

func TestDeleteAccount_Success(t *testing.T) {
	selfID := uuid.New()
	var gotID uuid.UUID

	users := &mockUserService{
		deleteAccountFn: func(_ context.Context, userID uuid.UUID) error {
			gotID = userID
			return nil
		},
	}

	h := newHandlerWithUsers(t, users)
	rec := httptest.NewRecorder()

	h.deleteAccount(rec, authedRequest(http.MethodDelete, "/api/users/me", "", selfID))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, selfID, gotID)
}

func TestDeleteAccount_NotFound(t *testing.T) {
	users := &mockUserService{
		deleteAccountFn: func(_ context.Context, _ uuid.UUID) error {
			return store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithUsers(t, users)
	rec := httptest.NewRecorder()

	h.deleteAccount(rec, authedRequest(http.MethodDelete, "/api/users/me", "", uuid.New()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteAccount_NoUserID(t *testing.T) {
	h := newHandlerWithUsers(t, &mockUserService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/users/me", nil)
	rec := httptest.NewRecorder()

	h.deleteAccount(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
