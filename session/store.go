package session

import (
	"context"
	"sync"
)

type sessionKeyContext struct{}

const defaultSessionKey = "default"

// WithSessionKey sets a routing key for session storage in the context, so a
// host can serve multiple isolated respondents.
func WithSessionKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, sessionKeyContext{}, key)
}

// SessionKeyFromContext gets the routing key from the context.
func SessionKeyFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(sessionKeyContext{})
	if value == nil {
		return "", false
	}
	key, ok := value.(string)
	return key, ok
}

func sessionKeyOrDefault(ctx context.Context) string {
	key, ok := SessionKeyFromContext(ctx)
	if ok && key != "" {
		return key
	}
	return defaultSessionKey
}

// MemoryStore keeps sessions in memory, routed by the context session key.
// Sessions share no mutable state with each other, so the store only guards
// its own map.
type MemoryStore struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	newSession func(ctx context.Context) *Session
}

func NewMemoryStore(newSession func(ctx context.Context) *Session) *MemoryStore {
	return &MemoryStore{
		sessions:   make(map[string]*Session),
		newSession: newSession,
	}
}

// Load returns the session for the context's key, creating and remembering
// one when absent.
func (m *MemoryStore) Load(ctx context.Context) *Session {
	key := sessionKeyOrDefault(ctx)
	m.mu.RLock()
	sess, ok := m.sessions[key]
	m.mu.RUnlock()
	if ok {
		return sess
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok = m.sessions[key]; ok {
		return sess
	}
	sess = m.newSession(ctx)
	m.sessions[key] = sess
	return sess
}

func (m *MemoryStore) Remove(ctx context.Context) {
	m.mu.Lock()
	delete(m.sessions, sessionKeyOrDefault(ctx))
	m.mu.Unlock()
}
