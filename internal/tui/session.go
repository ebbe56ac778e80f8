package tui

import (
	"sync"

	"github.com/ciphershare/go-cipher-share/models"
)

// The signed-in user is shared between the auth flow and the main loop
// through package state, mirroring how the two Bubble Tea programs run one
// after another.
var (
	sessionMu   sync.RWMutex
	sessionUser models.User
)

func setSessionUser(user models.User) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	sessionUser = user
}

func getSessionUser() models.User {
	sessionMu.RLock()
	defer sessionMu.RUnlock()
	return sessionUser
}

func clearSessionUser() {
	setSessionUser(models.User{})
}
