package store

import "github.com/ciphershare/go-cipher-share/internal/logger"

// Repositories bundles every server-side repository behind one constructor so
// the service layer receives a single dependency.
type Repositories struct {
	UserRepository       UserRepository
	FileRepository       FileRepository
	SharedLinkRepository SharedLinkRepository
}

// NewRepositories wires all repositories to the shared database connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db, log),
		FileRepository:       NewFileRepository(db, log),
		SharedLinkRepository: NewSharedLinkRepository(db, log),
	}
}
