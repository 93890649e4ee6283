package questionnaire

import (
	"errors"
	"fmt"
	"math"

	"bigfive-api/internal/domain"
)

// ErrIncompleteTrait se devuelve cuando un rasgo no tiene ningun item
// respondido al momento de puntuar. Nunca se degrada a un 0 silencioso.
var ErrIncompleteTrait = errors.New("trait has no answered items")

// Score calcula un puntaje normalizado 0-100 por rasgo a partir del
// catalogo y el ledger. Funcion pura: sin efectos, sin suspension.
//
// Por rasgo: cada respuesta v se corrige por polaridad (items invertidos
// aportan 6-v), se promedia y se mapea linealmente de [1,5] a [0,100]
// con round(((avg-1)/4)*100). math.Round redondea .5 alejandose de cero,
// que sobre este dominio no negativo equivale a redondear hacia arriba.
// Como avg esta en [1,5], el resultado cae en [0,100] sin clamp.
//
// Un item sin respuesta dentro de un rasgo que si tiene otras se excluye
// de numerador y denominador (contrato defensivo: sustituir un valor por
// defecto sesgaria el promedio).
func Score(catalog *Catalog, ledger *Ledger) (domain.TraitScores, error) {
	scores := make(domain.TraitScores, 5)

	for _, trait := range domain.AllTraits() {
		sum := 0
		count := 0
		for _, it := range catalog.ItemsForTrait(trait) {
			v, ok := ledger.Get(it.ID)
			if !ok {
				continue
			}
			if it.Reversed {
				v = 6 - v
			}
			sum += v
			count++
		}

		if count == 0 {
			return nil, fmt.Errorf("%w: %s", ErrIncompleteTrait, trait)
		}

		average := float64(sum) / float64(count)
		scores[trait] = int(math.Round(((average - 1) / 4) * 100))
	}

	return scores, nil
}
