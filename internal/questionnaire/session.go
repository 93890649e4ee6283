package questionnaire

import (
	"errors"
	"sync"
	"time"

	"bigfive-api/internal/domain"
)

// ErrSessionComplete indica que se intento responder con el cursor ya
// al final de la secuencia.
var ErrSessionComplete = errors.New("session already complete")

// Session es el estado mutable de un encuestado: catalogo + ledger +
// cursor detras de un unico mutex grueso. Cada sesion es independiente;
// no hay estado global del proceso.
type Session struct {
	mu       sync.Mutex
	catalog  *Catalog
	ledger   *Ledger
	cursor   *Cursor
	lastSeen time.Time
}

// NewSession crea una sesion nueva sobre el catalogo dado.
func NewSession(catalog *Catalog) *Session {
	return &Session{
		catalog:  catalog,
		ledger:   NewLedger(catalog),
		cursor:   NewCursor(catalog.Len()),
		lastSeen: time.Now().UTC(),
	}
}

// Catalog devuelve el catalogo de la sesion.
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// Current devuelve el item bajo el cursor; ok=false una vez completa.
func (s *Session) Current() (domain.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now().UTC()
	return s.catalog.ItemAt(s.cursor.Position())
}

// Answer registra value para el item actual y avanza el cursor.
// Con la secuencia completa devuelve ErrSessionComplete.
func (s *Session) Answer(value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now().UTC()

	item, ok := s.catalog.ItemAt(s.cursor.Position())
	if !ok {
		return ErrSessionComplete
	}
	if err := s.ledger.Upsert(item.ID, value); err != nil {
		return err
	}
	s.cursor.Advance()
	return nil
}

// AnswerItem registra value para un item arbitrario sin mover el cursor.
// Sirve para re-responder un item ya visitado.
func (s *Session) AnswerItem(itemID, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now().UTC()
	return s.ledger.Upsert(itemID, value)
}

// Back retrocede un item; no-op al inicio o con la sesion completa.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now().UTC()
	s.cursor.Retreat()
}

// ValueFor devuelve el valor ya elegido para itemID, si existe
// (el UI lo usa para preseleccionar al revisitar).
func (s *Session) ValueFor(itemID int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Get(itemID)
}

// Progress devuelve la fraccion recorrida del cuestionario.
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Progress()
}

// Position devuelve la posicion actual del cursor.
func (s *Session) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Position()
}

// IsComplete indica si la secuencia fue recorrida hasta el final.
func (s *Session) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.IsComplete()
}

// Answers devuelve un snapshot de las respuestas registradas.
func (s *Session) Answers() []domain.AnswerInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.All()
}

// AnsweredCount devuelve cuantos items tienen respuesta.
func (s *Session) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Len()
}

// Score puntua la sesion tal como esta. El calculo es sincrono y en
// memoria; la entrega del resultado al colaborador externo ocurre fuera.
func (s *Session) Score() (domain.TraitScores, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Score(s.catalog, s.ledger)
}

// Reset vacia el ledger y vuelve el cursor al inicio ("start over").
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now().UTC()
	s.ledger.Clear()
	s.cursor.Reset()
}

// LastSeen devuelve el instante de la ultima operacion sobre la sesion.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
