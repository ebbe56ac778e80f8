package validators

import (
	"context"
	"encoding/pem"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ciphershare/go-cipher-share/models"
	"github.com/google/uuid"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldName targets the display name of an account.
	FieldName = "name"

	// FieldEmail targets the account email address.
	FieldEmail = "email"

	// FieldPassword targets a plaintext account password.
	FieldPassword = "password"

	// FieldOldPassword targets the current password in a password change.
	FieldOldPassword = "old_password"

	// FieldNewPassword targets the replacement password and its confirmation.
	FieldNewPassword = "new_password"

	// FieldPublicKey targets the PEM-encoded RSA public key.
	FieldPublicKey = "public_key"

	// FieldSearchQuery targets the email fragment of a recipient search.
	FieldSearchQuery = "query"

	// FieldFileName targets the original file name of an upload.
	FieldFileName = "file_name"

	// FieldFileSize targets the declared ciphertext length of an upload.
	FieldFileSize = "file_size"

	// FieldEncryptedAESKey targets the wrapped per-file AES key.
	FieldEncryptedAESKey = "encrypted_aes_key"

	// FieldEncryptedFile targets the AES-GCM ciphertext of an upload.
	FieldEncryptedFile = "encrypted_file"

	// FieldIV targets the AES-GCM nonce of an upload.
	FieldIV = "iv"

	// FieldRecipient targets the recipient user ID of a share.
	FieldRecipient = "recipient_user_id"

	// FieldLinkPassword targets the password protecting a share link.
	FieldLinkPassword = "link_password"

	// FieldExpirationDate targets the expiration moment of a share link.
	FieldExpirationDate = "expiration_date"

	// FieldLinkID targets the link identifier of a shared-file retrieval.
	FieldLinkID = "link_id"
)

// Length bounds mirror the column definitions of the users and files tables
// and the argon2id input limit.
const (
	maxNameLength     = 100
	maxEmailLength    = 255
	maxFileNameLength = 255
	minPasswordLength = 6
	maxPasswordLength = 72
)

// RequestValidator validates the request DTOs of the HTTP API. It is
// stateless and safe for concurrent use.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.UpdateNameRequest:
		return v.validateUpdateNameRequest(ctx, value, fields...)
	case *models.UpdateNameRequest:
		return v.validateUpdateNameRequest(ctx, *value, fields...)

	case models.UpdatePasswordRequest:
		return v.validateUpdatePasswordRequest(ctx, value, fields...)
	case *models.UpdatePasswordRequest:
		return v.validateUpdatePasswordRequest(ctx, *value, fields...)

	case models.SavePublicKeyRequest:
		return v.validateSavePublicKeyRequest(ctx, value, fields...)
	case *models.SavePublicKeyRequest:
		return v.validateSavePublicKeyRequest(ctx, *value, fields...)

	case models.SearchUsersRequest:
		return v.validateSearchUsersRequest(ctx, value, fields...)
	case *models.SearchUsersRequest:
		return v.validateSearchUsersRequest(ctx, *value, fields...)

	case models.UploadFileRequest:
		return v.validateUploadFileRequest(ctx, value, fields...)
	case *models.UploadFileRequest:
		return v.validateUploadFileRequest(ctx, *value, fields...)

	case models.SharedFileRequest:
		return v.validateSharedFileRequest(ctx, value, fields...)
	case *models.SharedFileRequest:
		return v.validateSharedFileRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isValidName accepts 1..100 characters. Counted in runes, matching the
// varchar(100) column.
func isValidName(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n >= 1 && n <= maxNameLength
}

// isValidEmail accepts a single RFC 5322 address without a display name,
// at most 255 bytes, matching the varchar(255) column.
func isValidEmail(email string) bool {
	if len(email) > maxEmailLength {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}

// isValidPassword accepts 6..72 bytes. The upper bound matches the limit the
// argon2id hasher enforces.
func isValidPassword(password string) bool {
	return len(password) >= minPasswordLength && len(password) <= maxPasswordLength
}

// isPEMPublicKey reports whether the text parses as a PEM block describing a
// public key.
func isPEMPublicKey(text string) bool {
	block, _ := pem.Decode([]byte(text))
	if block == nil {
		return false
	}
	return strings.Contains(block.Type, "PUBLIC KEY")
}

func (v *RequestValidator) validateRegisterRequest(ctx context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !isValidName(request.Name) {
				return ErrInvalidName
			}
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if !isValidPassword(request.Password) {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if request.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateNameRequest(ctx context.Context, request models.UpdateNameRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !isValidName(request.Name) {
				return ErrInvalidName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdatePasswordRequest(ctx context.Context, request models.UpdatePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldOldPassword:
			if request.OldPassword == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if !isValidPassword(request.NewPassword) {
				return ErrInvalidPassword
			}
			if request.NewPassword != request.NewPasswordConfirm {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSavePublicKeyRequest(ctx context.Context, request models.SavePublicKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPublicKey}
	}

	for _, f := range fields {
		switch f {
		case FieldPublicKey:
			if !isPEMPublicKey(request.PublicKey) {
				return ErrInvalidPublicKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSearchUsersRequest(ctx context.Context, request models.SearchUsersRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSearchQuery}
	}

	for _, f := range fields {
		switch f {
		case FieldSearchQuery:
			if strings.TrimSpace(request.Query) == "" {
				return ErrEmptySearchQuery
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUploadFileRequest(ctx context.Context, request models.UploadFileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldFileName, FieldFileSize,
			FieldEncryptedAESKey, FieldEncryptedFile, FieldIV,
			FieldRecipient, FieldLinkPassword, FieldExpirationDate,
		}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			n := utf8.RuneCountInString(request.FileName)
			if n < 1 || n > maxFileNameLength {
				return ErrInvalidFileName
			}
		case FieldFileSize:
			if request.FileSize <= 0 || request.FileSize != int64(len(request.EncryptedFile)) {
				return ErrInvalidFileSize
			}
		case FieldEncryptedAESKey:
			if len(request.EncryptedAESKey) == 0 {
				return ErrEmptyEncryptedKey
			}
		case FieldEncryptedFile:
			if len(request.EncryptedFile) == 0 {
				return ErrEmptyEncryptedFile
			}
		case FieldIV:
			if len(request.IV) == 0 {
				return ErrEmptyIV
			}
		case FieldRecipient:
			if request.RecipientUserID == uuid.Nil {
				return ErrInvalidRecipient
			}
		case FieldLinkPassword:
			if !isValidPassword(request.Password) {
				return ErrInvalidLinkPassword
			}
		case FieldExpirationDate:
			if !request.ExpirationDate.After(time.Now()) {
				return ErrExpirationNotInFuture
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSharedFileRequest(ctx context.Context, request models.SharedFileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLinkID, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLinkID:
			if request.LinkID == uuid.Nil {
				return ErrInvalidLinkID
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
