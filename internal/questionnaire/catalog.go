package questionnaire

import (
	"fmt"

	"bigfive-api/internal/domain"
)

// Catalog es el set ordenado e inmutable de items del cuestionario.
// Se construye una vez al arrancar; toda lectura es pura.
type Catalog struct {
	items []domain.Item
	byID  map[int]domain.Item
}

// NewCatalog valida y congela la lista de items.
// Invariantes: ids positivos y unicos, texto no vacio, rasgo conocido,
// y al menos un item por cada rasgo (si un rasgo quedara vacio, su
// promedio seria una division por cero en scoring).
func NewCatalog(items []domain.Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog: no items")
	}

	byID := make(map[int]domain.Item, len(items))
	perTrait := make(map[domain.Trait]int, 5)
	for _, it := range items {
		if it.ID <= 0 {
			return nil, fmt.Errorf("catalog: item id %d is not positive", it.ID)
		}
		if _, dup := byID[it.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate item id %d", it.ID)
		}
		if it.Text == "" {
			return nil, fmt.Errorf("catalog: item %d has empty text", it.ID)
		}
		if !it.Trait.Valid() {
			return nil, fmt.Errorf("catalog: item %d has unknown trait %q", it.ID, it.Trait)
		}
		byID[it.ID] = it
		perTrait[it.Trait]++
	}

	for _, t := range domain.AllTraits() {
		if perTrait[t] == 0 {
			return nil, fmt.Errorf("catalog: trait %q has no items", t)
		}
	}

	frozen := make([]domain.Item, len(items))
	copy(frozen, items)
	return &Catalog{items: frozen, byID: byID}, nil
}

// MustNewCatalog es NewCatalog con panic; para catalogos constantes
// cuya validez se verifica en tests.
func MustNewCatalog(items []domain.Item) *Catalog {
	c, err := NewCatalog(items)
	if err != nil {
		panic(err)
	}
	return c
}

// Len devuelve N, el largo fijo del cuestionario.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items devuelve la secuencia completa en su orden estable.
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// ItemAt devuelve el item en la posicion pos (0-based).
func (c *Catalog) ItemAt(pos int) (domain.Item, bool) {
	if pos < 0 || pos >= len(c.items) {
		return domain.Item{}, false
	}
	return c.items[pos], true
}

// ItemByID busca un item por su identificador.
func (c *Catalog) ItemByID(id int) (domain.Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// ItemsForTrait devuelve los items del rasgo t, preservando el orden del catalogo.
func (c *Catalog) ItemsForTrait(t domain.Trait) []domain.Item {
	var out []domain.Item
	for _, it := range c.items {
		if it.Trait == t {
			out = append(out, it)
		}
	}
	return out
}

// DefaultCatalog devuelve la escala IPIP Big Five de 50 items.
// Fuente: International Personality Item Pool (https://ipip.ori.org/),
// dominio publico.
func DefaultCatalog() *Catalog {
	return MustNewCatalog([]domain.Item{
		// Items 1-10: primera vuelta por los cinco rasgos, polaridad alternada.
		{ID: 1, Text: "Am the life of the party.", Trait: domain.TraitExtraversion, Reversed: false},
		{ID: 2, Text: "Feel little concern for others.", Trait: domain.TraitAgreeableness, Reversed: true},
		{ID: 3, Text: "Am always prepared.", Trait: domain.TraitConscientiousness, Reversed: false},
		{ID: 4, Text: "Get stressed out easily.", Trait: domain.TraitEmotionalStability, Reversed: true},
		{ID: 5, Text: "Have a rich vocabulary.", Trait: domain.TraitOpenness, Reversed: false},
		{ID: 6, Text: "Don't talk a lot.", Trait: domain.TraitExtraversion, Reversed: true},
		{ID: 7, Text: "Am interested in people.", Trait: domain.TraitAgreeableness, Reversed: false},
		{ID: 8, Text: "Leave my belongings around.", Trait: domain.TraitConscientiousness, Reversed: true},
		{ID: 9, Text: "Am relaxed most of the time.", Trait: domain.TraitEmotionalStability, Reversed: false},
		{ID: 10, Text: "Have difficulty understanding abstract ideas.", Trait: domain.TraitOpenness, Reversed: true},

		// Items 11-20.
		{ID: 11, Text: "Feel comfortable around people.", Trait: domain.TraitExtraversion, Reversed: false},
		{ID: 12, Text: "Insult people.", Trait: domain.TraitAgreeableness, Reversed: true},
		{ID: 13, Text: "Pay attention to details.", Trait: domain.TraitConscientiousness, Reversed: false},
		{ID: 14, Text: "Worry about things.", Trait: domain.TraitEmotionalStability, Reversed: true},
		{ID: 15, Text: "Have a vivid imagination.", Trait: domain.TraitOpenness, Reversed: false},
		{ID: 16, Text: "Keep in the background.", Trait: domain.TraitExtraversion, Reversed: true},
		{ID: 17, Text: "Sympathize with others' feelings.", Trait: domain.TraitAgreeableness, Reversed: false},
		{ID: 18, Text: "Make a mess of things.", Trait: domain.TraitConscientiousness, Reversed: true},
		{ID: 19, Text: "Seldom feel blue.", Trait: domain.TraitEmotionalStability, Reversed: false},
		{ID: 20, Text: "Am not interested in abstract ideas.", Trait: domain.TraitOpenness, Reversed: true},

		// Items 21-30.
		{ID: 21, Text: "Start conversations.", Trait: domain.TraitExtraversion, Reversed: false},
		{ID: 22, Text: "Am not interested in other people's problems.", Trait: domain.TraitAgreeableness, Reversed: true},
		{ID: 23, Text: "Get chores done right away.", Trait: domain.TraitConscientiousness, Reversed: false},
		{ID: 24, Text: "Am easily disturbed.", Trait: domain.TraitEmotionalStability, Reversed: true},
		{ID: 25, Text: "Have excellent ideas.", Trait: domain.TraitOpenness, Reversed: false},
		{ID: 26, Text: "Have little to say.", Trait: domain.TraitExtraversion, Reversed: true},
		{ID: 27, Text: "Have a soft heart.", Trait: domain.TraitAgreeableness, Reversed: false},
		{ID: 28, Text: "Often forget to put things back in their proper place.", Trait: domain.TraitConscientiousness, Reversed: true},
		{ID: 29, Text: "Get upset easily.", Trait: domain.TraitEmotionalStability, Reversed: true},
		{ID: 30, Text: "Do not have a good imagination.", Trait: domain.TraitOpenness, Reversed: true},

		// Items 31-40.
		{ID: 31, Text: "Talk to a lot of different people at parties.", Trait: domain.TraitExtraversion, Reversed: false},
		{ID: 32, Text: "Am not really interested in others.", Trait: domain.TraitAgreeableness, Reversed: true},
		{ID: 33, Text: "Like order.", Trait: domain.TraitConscientiousness, Reversed: false},
		{ID: 34, Text: "Change my mood a lot.", Trait: domain.TraitEmotionalStability, Reversed: true},
		{ID: 35, Text: "Am quick to understand things.", Trait: domain.TraitOpenness, Reversed: false},
		{ID: 36, Text: "Don't like to draw attention to myself.", Trait: domain.TraitExtraversion, Reversed: true},
		{ID: 37, Text: "Take time out for others.", Trait: domain.TraitAgreeableness, Reversed: false},
		{ID: 38, Text: "Shirk my duties.", Trait: domain.TraitConscientiousness, Reversed: true},
		{ID: 39, Text: "Have frequent mood swings.", Trait: domain.TraitEmotionalStability, Reversed: true},
		{ID: 40, Text: "Use difficult words.", Trait: domain.TraitOpenness, Reversed: false},

		// Items 41-50.
		{ID: 41, Text: "Don't mind being the center of attention.", Trait: domain.TraitExtraversion, Reversed: false},
		{ID: 42, Text: "Feel others' emotions.", Trait: domain.TraitAgreeableness, Reversed: false},
		{ID: 43, Text: "Follow a schedule.", Trait: domain.TraitConscientiousness, Reversed: false},
		{ID: 44, Text: "Get irritated easily.", Trait: domain.TraitEmotionalStability, Reversed: true},
		{ID: 45, Text: "Spend time reflecting on things.", Trait: domain.TraitOpenness, Reversed: false},
		{ID: 46, Text: "Am quiet around strangers.", Trait: domain.TraitExtraversion, Reversed: true},
		{ID: 47, Text: "Make people feel at ease.", Trait: domain.TraitAgreeableness, Reversed: false},
		{ID: 48, Text: "Am exacting in my work.", Trait: domain.TraitConscientiousness, Reversed: false},
		{ID: 49, Text: "Often feel blue.", Trait: domain.TraitEmotionalStability, Reversed: true},
		{ID: 50, Text: "Am full of ideas.", Trait: domain.TraitOpenness, Reversed: false},
	})
}
