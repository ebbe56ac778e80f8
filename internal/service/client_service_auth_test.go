package service

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ciphershare/go-cipher-share/internal/adapter"
	"github.com/ciphershare/go-cipher-share/internal/app"
	"github.com/ciphershare/go-cipher-share/internal/crypto"
	"github.com/ciphershare/go-cipher-share/internal/mock"
	"github.com/ciphershare/go-cipher-share/internal/store"
	"github.com/ciphershare/go-cipher-share/models"
)

// newTestAuthSvc builds a clientAuthService with every collaborator mocked.
// The key service is real; it only holds the session key.
func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientAuthService,
	*mock.MockServerAdapter,
	*mock.MockFileCipherService,
	*mock.MockIdentityRepository,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCipher := mock.NewMockFileCipherService(ctrl)
	mockIdentities := mock.NewMockIdentityRepository(ctrl)

	storages := &store.ClientStorages{IdentityRepository: mockIdentities}
	keySvc := NewClientKeyService(mockCipher, "test-hash-key")

	svc := NewClientAuthService(storages, mockAdapter, mockCipher, keySvc).(*clientAuthService)

	return svc, mockAdapter, mockCipher, mockIdentities
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCipher, mockIdentities := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	private := &rsa.PrivateKey{}
	publicPEM := "-----BEGIN PUBLIC KEY-----\nMIIB\n-----END PUBLIC KEY-----\n"
	salt := []byte("random-salt-16bb")
	sealed := []byte("sealed-private-key-blob")

	req := models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret-password"}
	created := models.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	gomock.InOrder(
		mockAdapter.EXPECT().Register(ctx, req).Return(models.AuthResponse{Token: "jwt", User: created}, nil),
		mockCipher.EXPECT().GenerateKeyPair().Return(private, nil),
		mockCipher.EXPECT().EncodePublicKeyPEM(&private.PublicKey).Return(publicPEM, nil),
		mockAdapter.EXPECT().SavePublicKey(ctx, models.SavePublicKeyRequest{PublicKey: publicPEM}).Return(nil),
		mockCipher.EXPECT().GenerateSalt().Return(salt, nil),
		mockCipher.EXPECT().SealPrivateKey(private, req.Password, salt).Return(sealed, nil),
		// The persisted identity must carry the server-assigned user ID and
		// the sealed key, never the password.
		mockIdentities.EXPECT().SaveIdentity(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, identity models.ClientIdentity) error {
				assert.Equal(t, created.ID, identity.UserID)
				assert.Equal(t, "alice@example.com", identity.Email)
				assert.Equal(t, "Alice", identity.Name)
				assert.Equal(t, publicPEM, identity.PublicKeyPEM)
				assert.Equal(t, sealed, identity.SealedPrivateKey)
				assert.Equal(t, salt, identity.KeySalt)
				return nil
			},
		),
	)

	got, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.True(t, svc.clientKeyService.HasPrivateKey(), "session key must be set after registration")
}

func TestClientAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret-password"}

	mockAdapter.EXPECT().Register(ctx, req).Return(models.AuthResponse{},
		fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgEmailAlreadyExists))

	_, err := svc.Register(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	assert.False(t, svc.clientKeyService.HasPrivateKey())
}

func TestClientAuthService_Register_ServerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.AuthResponse{},
		fmt.Errorf("%w: %s", adapter.ErrInternalServerError, app.MsgRegistrationFailed))

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@b.c", Password: "pass"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegisterOnServer)
}

func TestClientAuthService_Register_KeypairError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCipher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.AuthResponse{User: models.User{ID: uuid.New()}}, nil)
	mockCipher.EXPECT().GenerateKeyPair().Return(nil, errors.New("entropy exhausted"))

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@b.c", Password: "pass"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate keypair")
}

func TestClientAuthService_Register_PublishKeyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCipher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	private := &rsa.PrivateKey{}

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.AuthResponse{User: models.User{ID: uuid.New()}}, nil)
	mockCipher.EXPECT().GenerateKeyPair().Return(private, nil)
	mockCipher.EXPECT().EncodePublicKeyPEM(gomock.Any()).Return("PEM", nil)
	mockAdapter.EXPECT().SavePublicKey(ctx, gomock.Any()).Return(
		fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid))

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@b.c", Password: "pass"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish public key")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	assert.False(t, svc.clientKeyService.HasPrivateKey())
}

func TestClientAuthService_Register_SaveIdentityError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCipher, mockIdentities := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	private := &rsa.PrivateKey{}

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.AuthResponse{User: models.User{ID: uuid.New()}}, nil)
	mockCipher.EXPECT().GenerateKeyPair().Return(private, nil)
	mockCipher.EXPECT().EncodePublicKeyPEM(gomock.Any()).Return("PEM", nil)
	mockAdapter.EXPECT().SavePublicKey(ctx, gomock.Any()).Return(nil)
	mockCipher.EXPECT().GenerateSalt().Return([]byte("salt"), nil)
	mockCipher.EXPECT().SealPrivateKey(private, "pass", []byte("salt")).Return([]byte("sealed"), nil)
	mockIdentities.EXPECT().SaveIdentity(ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@b.c", Password: "pass"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save identity")
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_ExistingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCipher, mockIdentities := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	private := &rsa.PrivateKey{}
	sealed := []byte("sealed-private-key-blob")
	salt := []byte("key-salt")

	req := models.LoginRequest{Email: "alice@example.com", Password: "secret-password"}
	serverUser := models.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, req).Return(models.AuthResponse{Token: "jwt", User: serverUser}, nil),
		mockIdentities.EXPECT().GetIdentity(ctx, "alice@example.com").Return(models.ClientIdentity{
			UserID:           serverUser.ID,
			Email:            "alice@example.com",
			SealedPrivateKey: sealed,
			KeySalt:          salt,
		}, nil),
		mockCipher.EXPECT().OpenPrivateKey(sealed, req.Password, salt).Return(private, nil),
	)

	got, err := svc.Login(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, serverUser, got)
	assert.True(t, svc.clientKeyService.HasPrivateKey())
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.AuthResponse{},
		fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidEmailPassword))

	_, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "bad"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.False(t, svc.clientKeyService.HasPrivateKey())
}

func TestClientAuthService_Login_OpenKeyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCipher, mockIdentities := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	sealed := []byte("sealed-with-old-password")
	salt := []byte("key-salt")

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.AuthResponse{User: models.User{Email: "a@b.c"}}, nil)
	mockIdentities.EXPECT().GetIdentity(ctx, "a@b.c").Return(models.ClientIdentity{
		SealedPrivateKey: sealed,
		KeySalt:          salt,
	}, nil)
	mockCipher.EXPECT().OpenPrivateKey(sealed, "new-password", salt).Return(nil, crypto.ErrKeyOpenFailed)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "a@b.c", Password: "new-password"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open sealed private key")
	assert.False(t, svc.clientKeyService.HasPrivateKey())
}

func TestClientAuthService_Login_FreshMachineProvisionsKeypair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCipher, mockIdentities := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	private := &rsa.PrivateKey{}
	publicPEM := "-----BEGIN PUBLIC KEY-----\nfresh\n-----END PUBLIC KEY-----\n"

	req := models.LoginRequest{Email: "alice@example.com", Password: "secret-password"}
	serverUser := models.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, req).Return(models.AuthResponse{User: serverUser}, nil),
		mockIdentities.EXPECT().GetIdentity(ctx, "alice@example.com").
			Return(models.ClientIdentity{}, store.ErrIdentityNotFound),
		mockCipher.EXPECT().GenerateKeyPair().Return(private, nil),
		mockCipher.EXPECT().EncodePublicKeyPEM(&private.PublicKey).Return(publicPEM, nil),
		mockAdapter.EXPECT().SavePublicKey(ctx, models.SavePublicKeyRequest{PublicKey: publicPEM}).Return(nil),
		mockCipher.EXPECT().GenerateSalt().Return([]byte("salt"), nil),
		mockCipher.EXPECT().SealPrivateKey(private, req.Password, []byte("salt")).Return([]byte("sealed"), nil),
		mockIdentities.EXPECT().SaveIdentity(ctx, gomock.Any()).Return(nil),
	)

	got, err := svc.Login(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, serverUser, got)
	assert.True(t, svc.clientKeyService.HasPrivateKey())
}

func TestClientAuthService_Login_IdentityLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, mockIdentities := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.AuthResponse{User: models.User{Email: "a@b.c"}}, nil)
	mockIdentities.EXPECT().GetIdentity(ctx, "a@b.c").
		Return(models.ClientIdentity{}, errors.New("database is locked"))

	_, err := svc.Login(ctx, models.LoginRequest{Email: "a@b.c", Password: "pass"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load identity")
}

// ── Integration: real crypto, mocked adapter and local store ─────────────────

// newIntegrationAuthSvc builds an auth service with the real cipher and key
// service. Only the server adapter and the identity repository are mocked.
func newIntegrationAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientAuthService,
	*mock.MockServerAdapter,
	*mock.MockIdentityRepository,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockIdentities := mock.NewMockIdentityRepository(ctrl)

	storages := &store.ClientStorages{IdentityRepository: mockIdentities}
	fileCipher := crypto.NewFileCipherService()
	keySvc := NewClientKeyService(fileCipher, "test-hash-key")

	svc := NewClientAuthService(storages, mockAdapter, fileCipher, keySvc).(*clientAuthService)

	return svc, mockAdapter, mockIdentities
}

// TestIntegration_RegisterThenLogin walks the whole keypair lifecycle:
// Register provisions and seals a real RSA key, Login on the same machine
// opens it again, and the restored session can unwrap what the published
// public key wrapped.
func TestIntegration_RegisterThenLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockIdentities := newIntegrationAuthSvc(t, ctrl)
	ctx := context.Background()

	password := "my-strong-account-password"
	user := models.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	// The local database: keeps whatever Register saved.
	var savedIdentity models.ClientIdentity
	var publishedPEM string

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.AuthResponse{Token: "jwt", User: user}, nil)
	mockAdapter.EXPECT().SavePublicKey(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.SavePublicKeyRequest) error {
			publishedPEM = req.PublicKey
			assert.Contains(t, publishedPEM, "BEGIN PUBLIC KEY")
			return nil
		},
	)
	mockIdentities.EXPECT().SaveIdentity(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, identity models.ClientIdentity) error {
			savedIdentity = identity
			return nil
		},
	)

	_, err := svc.Register(ctx, models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: password})
	require.NoError(t, err)
	require.NotEmpty(t, savedIdentity.SealedPrivateKey)

	// Drop the session and log in again from the stored identity.
	svc.clientKeyService.SetPrivateKey(nil)

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.AuthResponse{Token: "jwt", User: user}, nil)
	mockIdentities.EXPECT().GetIdentity(ctx, "alice@example.com").Return(savedIdentity, nil)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: password})
	require.NoError(t, err)
	require.True(t, svc.clientKeyService.HasPrivateKey())

	// The restored private key must unwrap keys wrapped with the published
	// public key.
	fileKey := []byte("0123456789abcdef0123456789abcdef")
	wrapped, err := svc.clientKeyService.WrapFileKey(fileKey, publishedPEM)
	require.NoError(t, err)

	unwrapped, err := svc.clientKeyService.UnwrapFileKey(wrapped)
	require.NoError(t, err)
	assert.Equal(t, fileKey, unwrapped)
}

// TestIntegration_LoginWithWrongLocalPassword registers with one password and
// logs in with another. The mocked server lets the login through, but the
// sealed private key must refuse to open.
func TestIntegration_LoginWithWrongLocalPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockIdentities := newIntegrationAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: uuid.New(), Email: "bob@example.com"}

	var savedIdentity models.ClientIdentity

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.AuthResponse{User: user}, nil)
	mockAdapter.EXPECT().SavePublicKey(ctx, gomock.Any()).Return(nil)
	mockIdentities.EXPECT().SaveIdentity(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, identity models.ClientIdentity) error {
			savedIdentity = identity
			return nil
		},
	)

	_, err := svc.Register(ctx, models.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "correct-password"})
	require.NoError(t, err)

	svc.clientKeyService.SetPrivateKey(nil)

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.AuthResponse{User: user}, nil)
	mockIdentities.EXPECT().GetIdentity(ctx, "bob@example.com").Return(savedIdentity, nil)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "bob@example.com", Password: "wrong-password"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open sealed private key")
	assert.ErrorIs(t, err, crypto.ErrKeyOpenFailed)
	assert.False(t, svc.clientKeyService.HasPrivateKey())
}
