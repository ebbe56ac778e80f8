package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ciphershare/go-cipher-share/internal/crypto"
	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/internal/store"
	"github.com/ciphershare/go-cipher-share/internal/validators"
	"github.com/ciphershare/go-cipher-share/models"
)

// userService is the concrete implementation of UserService. It covers
// profile reads and updates, public key publication, recipient search, and
// account removal.
type userService struct {
	// userRepository is the data-access layer for user accounts.
	userRepository store.UserRepository

	// passwordHasher verifies the old password and hashes the new one on
	// password change.
	passwordHasher crypto.PasswordHasher

	// validator checks incoming request payloads before any work is done.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		passwordHasher: crypto.NewPasswordHasher(),
		validator:      validators.NewRequestValidator(),
		logger:         logger,
	}
}

// GetProfile returns the account record for the given user ID.
//
// Returns a wrapped store.ErrNoUserWasFound if the account does not exist.
func (u *userService) GetProfile(ctx context.Context, userID uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("user lookup ended with error")
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	return user, nil
}

// UpdateName changes the account's display name and returns the updated record.
//
// Returns ErrInvalidDataProvided if the new name fails validation, or a
// wrapped storage error if persistence fails.
func (u *userService) UpdateName(ctx context.Context, userID uuid.UUID, req models.UpdateNameRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("invalid name update data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updatedUser, err := u.userRepository.UpdateUserName(ctx, userID, req.Name)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("name update ended with error")
		return models.User{}, fmt.Errorf("name update ended with error: %w", err)
	}

	return updatedUser, nil
}

// UpdatePassword changes the account password.
//
// The old password must verify against the stored hash before the new one is
// accepted; the new password is hashed with Argon2id before storage.
//
// Returns:
//   - ErrInvalidDataProvided if the payload fails validation (including a
//     new-password confirmation mismatch).
//   - ErrWrongPassword if the old password does not match.
//   - A wrapped storage error if the lookup or update fails.
func (u *userService) UpdatePassword(ctx context.Context, userID uuid.UUID, req models.UpdatePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("invalid password update data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := u.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("user lookup ended with error")
		return fmt.Errorf("user lookup ended with error: %w", err)
	}

	ok, err := u.passwordHasher.Verify(req.OldPassword, user.Password)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("password verification ended with error")
		return fmt.Errorf("password verification ended with error: %w", err)
	}
	if !ok {
		log.Warn().Str("user_id", userID.String()).Msg("wrong old password on password change")
		return ErrWrongPassword
	}

	passwordHash, err := u.passwordHasher.Hash(req.NewPassword)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return fmt.Errorf("password hashing ended with error: %w", err)
	}

	if err := u.userRepository.UpdateUserPassword(ctx, userID, passwordHash); err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	return nil
}

// SavePublicKey stores the account's PEM-encoded RSA public key. Publishing a
// key makes the account discoverable through SearchUsers and able to receive
// shared files.
//
// Returns ErrInvalidDataProvided if the key is not a parseable public-key PEM
// block, or a wrapped storage error if persistence fails.
func (u *userService) SavePublicKey(ctx context.Context, userID uuid.UUID, req models.SavePublicKeyRequest) error {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("invalid public key provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := u.userRepository.SaveUserPublicKey(ctx, userID, req.PublicKey); err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("public key save ended with error")
		return fmt.Errorf("public key save ended with error: %w", err)
	}

	return nil
}

// SearchUsers returns a page of accounts whose email contains the query
// string, excluding the searching user and accounts that have not published a
// public key. Page and limit are clamped to their allowed ranges before the
// repository is queried.
//
// Returns ErrInvalidDataProvided if the query is empty, or a wrapped storage
// error if the search fails.
func (u *userService) SearchUsers(ctx context.Context, selfID uuid.UUID, req models.SearchUsersRequest) (models.UserSearchResponse, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("query", req.Query).Msg("invalid user search data provided")
		return models.UserSearchResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	req.Normalize()

	found, total, err := u.userRepository.SearchUsersByEmail(ctx, req, selfID)
	if err != nil {
		log.Err(err).Str("query", req.Query).Msg("user search ended with error")
		return models.UserSearchResponse{}, fmt.Errorf("user search ended with error: %w", err)
	}

	return models.UserSearchResponse{
		Users: found,
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	}, nil
}

// DeleteAccount removes the account. Uploaded files and shares addressed to
// the account are removed by the database's ON DELETE CASCADE rules.
//
// Returns a wrapped store.ErrNoUserWasFound if the account does not exist.
func (u *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("account deletion ended with error")
		return fmt.Errorf("account deletion ended with error: %w", err)
	}

	log.Info().Str("user_id", userID.String()).Msg("account deleted")
	return nil
}
