package session

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Manager keeps one Session per browser session id. Sessions live in
// memory only and end on explicit End or after sitting idle.
type Manager struct {
	chat Chatter
	log  logrus.FieldLogger

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	session  *Session
	lastUsed time.Time
}

func NewManager(chat Chatter, log logrus.FieldLogger) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Manager{
		chat:     chat,
		log:      log,
		sessions: make(map[string]*entry),
	}
}

// Get returns the session for id, if it exists, and marks it used.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastUsed = time.Now()
	return e.session, true
}

// GetOrCreate returns the session for id, creating an empty one when
// needed. created reports whether a new session was made.
func (m *Manager) GetOrCreate(id string) (s *Session, created bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		e = &entry{session: New(m.chat, m.log.WithField("session", id))}
		m.sessions[id] = e
		created = true
	}
	e.lastUsed = time.Now()
	return e.session, created
}

// End discards the session for id.
func (m *Manager) End(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Cleanup ends sessions not used within maxAge and returns how many it
// removed.
func (m *Manager) Cleanup(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, e := range m.sessions {
		if now.Sub(e.lastUsed) > maxAge {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.log.WithField("removed", removed).Info("session: cleaned up idle sessions")
	}
	return removed
}
