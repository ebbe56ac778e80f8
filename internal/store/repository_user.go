package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"

	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, profile updates, recipient search and
// account deletion against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.Password)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.PublicKey, &user.CreatedAt, &user.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, err
	}

	return user, nil
}

// GetUserByID retrieves the user record with the given primary key.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, getUserByID, userID)

	// find user by id
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.ID, &foundUser.Name, &foundUser.Email, &foundUser.Password, &foundUser.PublicKey, &foundUser.CreatedAt, &foundUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// GetUserByEmail retrieves the user record whose email matches exactly.
//
// Error handling mirrors [userRepository.GetUserByID]: an empty result set
// maps to [ErrNoUserWasFound] so callers can distinguish "unknown account"
// from infrastructure failures.
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, getUserByEmail, email)

	// find user by email
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.ID, &foundUser.Name, &foundUser.Email, &foundUser.Password, &foundUser.PublicKey, &foundUser.CreatedAt, &foundUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// UpdateUserName sets a new display name and returns the refreshed record.
// The updated_at column is bumped by the query itself via NOW().
func (r *userRepository) UpdateUserName(ctx context.Context, userID uuid.UUID, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	var updatedUser models.User
	row := r.db.QueryRowContext(ctx, updateUserName, name, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserName").Str("user_id", userID.String()).Msg("failed to execute update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&updatedUser.ID, &updatedUser.Name, &updatedUser.Email, &updatedUser.Password, &updatedUser.PublicKey, &updatedUser.CreatedAt, &updatedUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUserName").Str("user_id", userID.String()).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updatedUser, nil
}

// UpdateUserPassword stores a new password hash for the account.
// The updated_at column is bumped by the query itself via NOW().
func (r *userRepository) UpdateUserPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserPassword, passwordHash, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserPassword").Str("user_id", userID.String()).Msg("failed to execute update statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserPassword").Str("user_id", userID.String()).Msg("failed to read affected rows")
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// SaveUserPublicKey stores the PEM-encoded public key other users encrypt
// file keys with. Re-publishing replaces the previous key.
func (r *userRepository) SaveUserPublicKey(ctx context.Context, userID uuid.UUID, publicKey string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, saveUserPublicKey, publicKey, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SaveUserPublicKey").Str("user_id", userID.String()).Msg("failed to execute update statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SaveUserPublicKey").Str("user_id", userID.String()).Msg("failed to read affected rows")
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	log.Info().Str("func", "*userRepository.SaveUserPublicKey").Str("user_id", userID.String()).Msg("public key saved")

	return nil
}

// SearchUsersByEmail returns one page of recipient candidates whose email
// contains the query substring, together with the total number of matches.
//
// The searching user is excluded from the result, as are accounts that have
// not published a public key: nothing can be encrypted for them, so offering
// them as recipients would only produce failing uploads.
func (r *userRepository) SearchUsersByEmail(ctx context.Context, req models.SearchUsersRequest, selfID uuid.UUID) ([]models.UserSearchEntry, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchUsersQuery(req, selfID)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.SearchUsersByEmail").
			Str("user_id", selfID.String()).
			Msg("failed to build search query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.SearchUsersByEmail").
			Str("user_id", selfID.String()).
			Str("query", req.Query).
			Msg("failed to execute search query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	found := make([]models.UserSearchEntry, 0, req.Limit)

	for rows.Next() {
		var entry models.UserSearchEntry

		scanErr := rows.Scan(&entry.ID, &entry.Name, &entry.Email, &entry.PublicKey)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*userRepository.SearchUsersByEmail").
				Str("user_id", selfID.String()).
				Msg("failed to scan user row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		found = append(found, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*userRepository.SearchUsersByEmail").
			Str("user_id", selfID.String()).
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	countQuery, countArgs, err := buildCountSearchUsersQuery(req, selfID)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.SearchUsersByEmail").
			Str("user_id", selfID.String()).
			Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "*userRepository.SearchUsersByEmail").
			Str("user_id", selfID.String()).
			Msg("failed to count matching users")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, total, nil
}

// DeleteUser removes the account row. Uploaded files, shared links addressed
// to the user and links the user created all disappear with it through
// ON DELETE CASCADE on the referencing tables.
func (r *userRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID.String()).Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID.String()).Msg("failed to read affected rows")
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	log.Info().Str("func", "*userRepository.DeleteUser").Str("user_id", userID.String()).Msg("user account deleted")

	return nil
}
