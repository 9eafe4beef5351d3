package session

import (
	"sync"
	"time"
)

// Manager é o registro em memória das sessões ativas. O RWMutex
// protege apenas o mapa; o estado de cada sessão é protegido pelo
// mutex da própria sessão.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// add registra uma sessão já montada no mapa de sessões ativas
func (m *Manager) add(sess *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sess.ID] = sess
}

// Get retorna a sessão pelo identificador
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[id]
	return sess, ok
}

// Delete remove a sessão do registro. Operações em andamento sobre a
// sessão removida executam até o fim sobre o ponteiro que já possuem.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
}

// Count retorna o número de sessões ativas
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// EvictIdle remove as sessões sem atividade há mais de ttl e retorna
// quantas foram removidas
func (m *Manager) EvictIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	m.mu.RLock()
	candidates := make([]*Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		candidates = append(candidates, sess)
	}
	m.mu.RUnlock()

	expired := make([]string, 0)
	for _, sess := range candidates {
		sess.mu.Lock()
		if sess.LastActiveAt.Before(cutoff) {
			expired = append(expired, sess.ID)
		}
		sess.mu.Unlock()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range expired {
		delete(m.sessions, id)
	}

	return len(expired)
}
