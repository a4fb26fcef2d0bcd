package session

import (
	"sync"

	"wikibot/internal/locale"
)

// Store keeps each user's chosen search language. Implementations are
// safe for concurrent use across users; calls for one user are assumed
// single-flight, which Telegram long polling provides.
type Store interface {
	Language(userID int64) string
	SetLanguage(userID int64, code string)
}

// Manager is the in-memory Store. State lives for the process lifetime
// only; a restart resets every user to the default language.
type Manager struct {
	mu    sync.RWMutex
	langs map[int64]string
}

func NewManager() *Manager {
	return &Manager{langs: make(map[int64]string)}
}

func (m *Manager) Language(userID int64) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if code, ok := m.langs[userID]; ok {
		return code
	}
	return locale.Default
}

// SetLanguage stores code for the user. Validation is the caller's
// responsibility; only supported codes ever reach this point.
func (m *Manager) SetLanguage(userID int64, code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.langs[userID] = code
}
