package cart

import "sync"

// Manager owns every live Store, keyed by session id. It is the only place a
// Store is created; handlers receive stores from here, never construct them.
type Manager struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

func NewManager() *Manager {
	return &Manager{stores: make(map[string]*Store)}
}

// Store returns the cart for a session, creating it on first use.
func (m *Manager) Store(sessionID string) *Store {
	m.mu.RLock()
	s, ok := m.stores[sessionID]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[sessionID]; ok {
		return s
	}
	s = NewStore()
	m.stores[sessionID] = s
	return s
}

// Drop closes a session's store and forgets it. Any reference still held
// fails fast on use.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	s, ok := m.stores[sessionID]
	delete(m.stores, sessionID)
	m.mu.Unlock()
	if ok {
		s.Close()
	}
}

// Range visits live stores until fn returns false. The snapshot is taken
// under the lock; fn runs outside it.
func (m *Manager) Range(fn func(sessionID string, s *Store) bool) {
	m.mu.RLock()
	snapshot := make(map[string]*Store, len(m.stores))
	for id, s := range m.stores {
		snapshot[id] = s
	}
	m.mu.RUnlock()

	for id, s := range snapshot {
		if !fn(id, s) {
			return
		}
	}
}

// Len reports the number of live carts (for logging).
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.stores)
}
