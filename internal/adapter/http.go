package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/ciphershare/go-cipher-share/internal/config"
	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/internal/utils"
	"github.com/ciphershare/go-cipher-share/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
// Safe for concurrent use.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the new account data to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&authResponse).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return authResponse, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns the auth
// payload with the full server-side user record. Returns an error if the
// request fails, the server returns a non-2xx status, or the token cannot be
// parsed.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&authResponse).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return authResponse, nil
}

// GetServerVersion implements [ServerAdapter]. It GETs /api/version and
// returns the plain-text version string.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// GetProfile implements [ServerAdapter]. It GETs /api/users/me and returns
// the decoded profile of the authenticated user. Requires a valid bearer
// token.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateName implements [ServerAdapter]. It PATCHes the new display name to
// PATCH /api/users/name and returns the updated profile. Requires a valid
// bearer token.
func (h *httpServerAdapter) UpdateName(ctx context.Context, req models.UpdateNameRequest) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Patch("/api/users/name")
	if err != nil {
		return models.User{}, fmt.Errorf("update name request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdatePassword implements [ServerAdapter]. It PATCHes the password change to
// PATCH /api/users/password. Returns [ErrUnauthorized] (wrapped) when the old
// password does not verify. Requires a valid bearer token.
func (h *httpServerAdapter) UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Patch("/api/users/password")
	if err != nil {
		return fmt.Errorf("update password request: %w", err)
	}

	return mapHTTPError(resp)
}

// SavePublicKey implements [ServerAdapter]. It PUTs the PEM-encoded RSA
// public key to PUT /api/users/key. Requires a valid bearer token.
func (h *httpServerAdapter) SavePublicKey(ctx context.Context, req models.SavePublicKeyRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/users/key")
	if err != nil {
		return fmt.Errorf("save public key request: %w", err)
	}

	return mapHTTPError(resp)
}

// SearchUsers implements [ServerAdapter]. It GETs /api/users/search with the
// email substring and pagination as query parameters and decodes the result
// page. Requires a valid bearer token.
func (h *httpServerAdapter) SearchUsers(ctx context.Context, req models.SearchUsersRequest) (models.UserSearchResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("email", req.Query).
		SetQueryParams(pagingParams(req.Page, req.Limit)).
		Get("/api/users/search")
	if err != nil {
		return models.UserSearchResponse{}, fmt.Errorf("search users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSearchResponse{}, err
	}

	var page models.UserSearchResponse
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.UserSearchResponse{}, fmt.Errorf("decode search users response: %w", err)
	}

	return page, nil
}

// DeleteAccount implements [ServerAdapter]. It sends DELETE /api/users/me.
// Requires a valid bearer token.
func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/users/me")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

// Upload implements [ServerAdapter]. It POSTs one encrypted file with its
// share terms to POST /api/files and decodes the created identifiers.
// Requires a valid bearer token.
func (h *httpServerAdapter) Upload(ctx context.Context, req models.UploadFileRequest) (models.UploadFileResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/files")
	if err != nil {
		return models.UploadFileResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadFileResponse{}, err
	}

	var created models.UploadFileResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.UploadFileResponse{}, fmt.Errorf("decode upload response: %w", err)
	}

	return created, nil
}

// GetSharedFile implements [ServerAdapter]. It POSTs the link ID and link
// password to POST /api/files/shared and decodes the encrypted payload.
// Returns [ErrUnauthorized] (wrapped) on a wrong link password and
// [ErrNotFound] (wrapped) when the link is unknown or expired. Requires a
// valid bearer token.
func (h *httpServerAdapter) GetSharedFile(ctx context.Context, req models.SharedFileRequest) (models.SharedFileResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/files/shared")
	if err != nil {
		return models.SharedFileResponse{}, fmt.Errorf("get shared file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SharedFileResponse{}, err
	}

	var file models.SharedFileResponse
	if err = json.Unmarshal(resp.Body(), &file); err != nil {
		return models.SharedFileResponse{}, fmt.Errorf("decode shared file response: %w", err)
	}

	return file, nil
}

// SentFiles implements [ServerAdapter]. It GETs one page of the sent-files
// listing from GET /api/files/sent. Requires a valid bearer token.
func (h *httpServerAdapter) SentFiles(ctx context.Context, req models.ListRequest) (models.SentFilesResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(pagingParams(req.Page, req.Limit)).
		Get("/api/files/sent")
	if err != nil {
		return models.SentFilesResponse{}, fmt.Errorf("sent files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SentFilesResponse{}, err
	}

	var page models.SentFilesResponse
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.SentFilesResponse{}, fmt.Errorf("decode sent files response: %w", err)
	}

	return page, nil
}

// ReceivedFiles implements [ServerAdapter]. It GETs one page of the
// received-files listing from GET /api/files/received. Requires a valid
// bearer token.
func (h *httpServerAdapter) ReceivedFiles(ctx context.Context, req models.ListRequest) (models.ReceivedFilesResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(pagingParams(req.Page, req.Limit)).
		Get("/api/files/received")
	if err != nil {
		return models.ReceivedFilesResponse{}, fmt.Errorf("received files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReceivedFilesResponse{}, err
	}

	var page models.ReceivedFilesResponse
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.ReceivedFilesResponse{}, fmt.Errorf("decode received files response: %w", err)
	}

	return page, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// pagingParams renders pagination as query parameters, leaving out zero
// values so the server applies its own defaults.
func pagingParams(page, limit int) map[string]string {
	params := make(map[string]string, 2)
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}
	return params
}
