package services

import (
	"aimodel-generator-backend/pkg/logger"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionManager keeps the live sessions and closes the ones left idle.
type SessionManager struct {
	mu          sync.RWMutex
	sessions    map[string]*sessionEntry
	opts        SessionOptions
	idleTimeout time.Duration
	now         func() time.Time
	stopChan    chan struct{}
	stopOnce    sync.Once
}

type sessionEntry struct {
	session  *Session
	lastSeen time.Time
}

// NewSessionManager creates a manager whose sessions share opts. A zero
// idleTimeout keeps sessions until they are removed.
func NewSessionManager(opts SessionOptions, idleTimeout time.Duration) *SessionManager {
	return &SessionManager{
		sessions:    make(map[string]*sessionEntry),
		opts:        opts,
		idleTimeout: idleTimeout,
		now:         time.Now,
		stopChan:    make(chan struct{}),
	}
}

// Create opens a new session under a fresh uuid.
func (m *SessionManager) Create() *Session {
	id := uuid.New().String()
	session := NewSession(id, m.opts)

	m.mu.Lock()
	m.sessions[id] = &sessionEntry{session: session, lastSeen: m.now()}
	m.mu.Unlock()

	logger.Log.Info("Session created", zap.String("session_id", id))
	return session
}

// Get looks up a session and marks it as used.
func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	entry.lastSeen = m.now()
	return entry.session, true
}

// Remove closes and forgets a session.
func (m *SessionManager) Remove(id string) bool {
	m.mu.Lock()
	entry, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return false
	}
	entry.session.Close()
	logger.Log.Info("Session removed", zap.String("session_id", id))
	return true
}

// Len reports the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep closes sessions idle for longer than the idle timeout and returns
// how many were removed.
func (m *SessionManager) Sweep() int {
	if m.idleTimeout <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.idleTimeout)

	m.mu.Lock()
	var expired []*Session
	for id, entry := range m.sessions {
		if entry.lastSeen.Before(cutoff) {
			expired = append(expired, entry.session)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, session := range expired {
		session.Close()
		logger.Log.Info("Session expired", zap.String("session_id", session.ID()))
	}
	return len(expired)
}

// Start runs Sweep every interval until Stop is called.
func (m *SessionManager) Start(interval time.Duration) {
	logger.Log.Info("Session janitor started", zap.Duration("interval", interval))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				logger.Log.Info("Expired idle sessions", zap.Int("count", n))
			}
		case <-m.stopChan:
			return
		}
	}
}

// Stop ends the janitor loop and closes every session.
func (m *SessionManager) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })

	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*sessionEntry)
	m.mu.Unlock()

	for _, entry := range sessions {
		entry.session.Close()
	}
}
