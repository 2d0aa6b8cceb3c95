package tui

import (
	"sync"

	"github.com/andreaprogra/rapport-vocal/models"
)

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
	sessionMu.Lock()
	defer sessionMu.Unlock()
	sessionUser = models.User{}
}
