package dialog

import (
	"sync"
	"time"
)

// Manager keeps the active dialog session of each chat. At most one session
// exists per chat at a time; sessions for different chats are independent.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
	now      func() time.Time
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
		now:      time.Now,
	}
}

// Start creates a session for the chat. It fails when a session is already
// active: the running dialog is left untouched.
func (m *Manager) Start(chatID int64) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[chatID]; exists {
		return nil, false
	}

	sess := &Session{
		ChatID:    chatID,
		Step:      StepAskName,
		UpdatedAt: m.now(),
	}
	m.sessions[chatID] = sess
	return sess, true
}

// Get returns the active session of the chat, if any.
func (m *Manager) Get(chatID int64) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[chatID]
	return sess, ok
}

// Active reports whether the chat has a running dialog.
func (m *Manager) Active(chatID int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.sessions[chatID]
	return ok
}

// End discards the session of the chat.
func (m *Manager) End(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, chatID)
}

// ExpireIdle removes every session that saw no input for longer than maxIdle
// and returns the affected chat ids.
func (m *Manager) ExpireIdle(maxIdle time.Duration) []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	deadline := m.now().Add(-maxIdle)

	var expired []int64
	for chatID, sess := range m.sessions {
		if sess.UpdatedAt.Before(deadline) {
			delete(m.sessions, chatID)
			expired = append(expired, chatID)
		}
	}
	return expired
}
