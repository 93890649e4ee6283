package questionnaire

import (
	"errors"
	"fmt"

	"bigfive-api/internal/domain"
)

const (
	// MinValue y MaxValue delimitan la escala Likert.
	MinValue = 1
	MaxValue = 5
)

var (
	ErrValueOutOfRange = errors.New("answer value out of range")
	ErrUnknownItem     = errors.New("unknown item id")
)

// Ledger guarda las respuestas de una sesion: a lo sumo una por item,
// claveada por id de item. El orden de insercion es irrelevante.
type Ledger struct {
	catalog *Catalog
	values  map[int]int
}

// NewLedger crea un ledger vacio atado a un catalogo.
func NewLedger(catalog *Catalog) *Ledger {
	return &Ledger{
		catalog: catalog,
		values:  make(map[int]int),
	}
}

// Upsert registra o reemplaza la respuesta del item itemID.
// Rechaza valores fuera de [1,5] e ids que no existen en el catalogo;
// nunca recorta en silencio (eso enmascararia bugs del UI).
func (l *Ledger) Upsert(itemID, value int) error {
	if value < MinValue || value > MaxValue {
		return fmt.Errorf("%w: %d", ErrValueOutOfRange, value)
	}
	if _, ok := l.catalog.ItemByID(itemID); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownItem, itemID)
	}
	l.values[itemID] = value
	return nil
}

// Get devuelve el valor registrado para itemID, si existe.
func (l *Ledger) Get(itemID int) (int, bool) {
	v, ok := l.values[itemID]
	return v, ok
}

// Len devuelve cuantos items tienen respuesta.
func (l *Ledger) Len() int {
	return len(l.values)
}

// All devuelve un snapshot de las respuestas como pares (item, valor).
// Al estar claveado por id, los duplicados son estructuralmente imposibles.
func (l *Ledger) All() []domain.AnswerInput {
	out := make([]domain.AnswerInput, 0, len(l.values))
	for _, it := range l.catalog.Items() {
		if v, ok := l.values[it.ID]; ok {
			out = append(out, domain.AnswerInput{ItemID: it.ID, Value: v})
		}
	}
	return out
}

// Clear vacia el ledger (reinicio del cuestionario).
func (l *Ledger) Clear() {
	l.values = make(map[int]int)
}
