package questionnaire

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound indica que el id no refiere a una sesion viva.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore registra sesiones en memoria, claveadas por uuid.
// Las sesiones inactivas mas alla del TTL se barren de forma perezosa
// en cada operacion; la persistencia de sesiones no es un objetivo.
type SessionStore struct {
	mu       sync.Mutex
	catalog  *Catalog
	sessions map[string]*Session
	ttl      time.Duration
}

// NewSessionStore crea un store sobre el catalogo dado. ttl <= 0
// desactiva la expiracion.
func NewSessionStore(catalog *Catalog, ttl time.Duration) *SessionStore {
	return &SessionStore{
		catalog:  catalog,
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create registra una sesion nueva y devuelve su id opaco.
func (s *SessionStore) Create() (string, *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	id := uuid.NewString()
	sess := NewSession(s.catalog)
	s.sessions[id] = sess
	return id, sess
}

// Get devuelve la sesion id, o ErrSessionNotFound si no existe o expiro.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete descarta la sesion id; no-op si no existe.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len devuelve cuantas sesiones vivas hay.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	return len(s.sessions)
}

func (s *SessionStore) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := time.Now().UTC().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.LastSeen().Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
