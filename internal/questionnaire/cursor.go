package questionnaire

// Cursor recorre la secuencia ordenada de items: posiciones 0..N,
// donde N == largo del catalogo significa "completo". Completarse solo
// exige haber caminado la secuencia; no que cada item tenga respuesta.
type Cursor struct {
	pos int
	n   int
}

// NewCursor arranca en la posicion 0 sobre n items.
func NewCursor(n int) *Cursor {
	return &Cursor{pos: 0, n: n}
}

// Position devuelve la posicion actual (== n una vez completo).
func (c *Cursor) Position() int {
	return c.pos
}

// IsComplete indica si la secuencia fue recorrida hasta el final.
func (c *Cursor) IsComplete() bool {
	return c.pos >= c.n
}

// Advance avanza una posicion; no-op una vez completo.
func (c *Cursor) Advance() {
	if c.pos < c.n {
		c.pos++
	}
}

// Retreat retrocede una posicion; no-op en 0 y una vez completo
// (revisitar tras completar es un "restart" del colaborador externo).
func (c *Cursor) Retreat() {
	if c.pos > 0 && c.pos < c.n {
		c.pos--
	}
}

// Progress devuelve la fraccion recorrida: 0 al inicio, 1 al completar.
// Monotona no decreciente durante el avance.
func (c *Cursor) Progress() float64 {
	if c.n == 0 {
		return 1
	}
	return float64(c.pos) / float64(c.n)
}

// Reset vuelve al estado inicial.
func (c *Cursor) Reset() {
	c.pos = 0
}
