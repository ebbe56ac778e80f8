package store

import (
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/ciphershare/go-cipher-share/models"
)

const (
	createUser = `INSERT INTO users (name, email, password)
    VALUES ($1, $2, $3)
    RETURNING id, name, email, password, public_key, created_at, updated_at;`

	getUserByID = `SELECT id, name, email, password, public_key, created_at, updated_at
    FROM users
    WHERE id = $1;`

	getUserByEmail = `SELECT id, name, email, password, public_key, created_at, updated_at
    FROM users
    WHERE email = $1;`

	updateUserName = `UPDATE users
    SET name = $1, updated_at = NOW()
    WHERE id = $2
    RETURNING id, name, email, password, public_key, created_at, updated_at;`

	updateUserPassword = `UPDATE users
    SET password = $1, updated_at = NOW()
    WHERE id = $2;`

	saveUserPublicKey = `UPDATE users
    SET public_key = $1, updated_at = NOW()
    WHERE id = $2;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	createFile = `INSERT INTO files (user_id, file_name, file_size, encrypted_aes_key, encrypted_file, iv)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, created_at;`

	createSharedLink = `INSERT INTO shared_links (file_id, recipient_user_id, password, expiration_date)
    VALUES ($1, $2, $3, $4)
    RETURNING id, created_at;`

	getFileByID = `SELECT id, user_id, file_name, file_size, encrypted_aes_key, encrypted_file, iv, created_at
    FROM files
    WHERE id = $1;`

	getLinkForRecipient = `SELECT id, file_id, recipient_user_id, password, expiration_date, created_at
    FROM shared_links
    WHERE id = $1 AND recipient_user_id = $2 AND expiration_date > NOW();`

	deleteExpiredLinks = `DELETE FROM shared_links
    WHERE expiration_date < NOW();`

	// A file with no remaining links is unreachable: uploads always create a
	// link alongside the file, so once the link is pruned the ciphertext can go.
	deleteOrphanFiles = `DELETE FROM files
    WHERE NOT EXISTS (SELECT 1 FROM shared_links WHERE shared_links.file_id = files.id);`
)

// psql builds queries with $N placeholders for the pgx driver.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildSearchUsersQuery selects recipient candidates: emails matching the
// query substring, key published, searching user excluded.
func buildSearchUsersQuery(req models.SearchUsersRequest, selfID uuid.UUID) (string, []any, error) {
	return psql.Select("id", "name", "email", "public_key").
		From(models.User{}.TableName()).
		Where(squirrel.ILike{"email": "%" + req.Query + "%"}).
		Where(squirrel.NotEq{"public_key": nil}).
		Where(squirrel.NotEq{"id": selfID}).
		OrderBy("email").
		Limit(uint64(req.Limit)).
		Offset(req.Offset()).
		ToSql()
}

// buildCountSearchUsersQuery counts all matches of the same search without
// pagination.
func buildCountSearchUsersQuery(req models.SearchUsersRequest, selfID uuid.UUID) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(models.User{}.TableName()).
		Where(squirrel.ILike{"email": "%" + req.Query + "%"}).
		Where(squirrel.NotEq{"public_key": nil}).
		Where(squirrel.NotEq{"id": selfID}).
		ToSql()
}

// buildSentFilesQuery selects one page of files uploaded by the owner, with
// the recipient email resolved through the link, newest shares first.
func buildSentFilesQuery(ownerID uuid.UUID, req models.ListRequest) (string, []any, error) {
	return psql.Select("f.id AS file_id", "f.file_name", "u.email AS recipient_email", "sl.expiration_date", "sl.created_at").
		From("files f").
		Join("shared_links sl ON sl.file_id = f.id").
		Join("users u ON u.id = sl.recipient_user_id").
		Where(squirrel.Eq{"f.user_id": ownerID}).
		OrderBy("sl.created_at DESC").
		Limit(uint64(req.Limit)).
		Offset(req.Offset()).
		ToSql()
}

// buildCountSentFilesQuery counts all shares created by the owner.
func buildCountSentFilesQuery(ownerID uuid.UUID) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From("files f").
		Join("shared_links sl ON sl.file_id = f.id").
		Where(squirrel.Eq{"f.user_id": ownerID}).
		ToSql()
}

// buildReceivedFilesQuery selects one page of shares addressed to the
// recipient, with the sender email resolved through the file owner. Expired
// shares stay visible here so the recipient can see what they missed.
func buildReceivedFilesQuery(recipientID uuid.UUID, req models.ListRequest) (string, []any, error) {
	return psql.Select("sl.id AS link_id", "f.file_name", "u.email AS sender_email", "sl.expiration_date", "sl.created_at").
		From("shared_links sl").
		Join("files f ON f.id = sl.file_id").
		Join("users u ON u.id = f.user_id").
		Where(squirrel.Eq{"sl.recipient_user_id": recipientID}).
		OrderBy("sl.created_at DESC").
		Limit(uint64(req.Limit)).
		Offset(req.Offset()).
		ToSql()
}

// buildCountReceivedFilesQuery counts all shares addressed to the recipient.
func buildCountReceivedFilesQuery(recipientID uuid.UUID) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From("shared_links sl").
		Where(squirrel.Eq{"sl.recipient_user_id": recipientID}).
		ToSql()
}
