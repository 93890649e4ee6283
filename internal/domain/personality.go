package domain

import "time"

// Trait es uno de los cinco rasgos del modelo Big Five.
// El set es fijo: nunca se extiende en runtime.
type Trait string

const (
	TraitExtraversion       Trait = "extraversion"
	TraitAgreeableness      Trait = "agreeableness"
	TraitConscientiousness  Trait = "conscientiousness"
	TraitEmotionalStability Trait = "emotionalStability"
	TraitOpenness           Trait = "openness"
)

// AllTraits devuelve los cinco rasgos en orden canonico.
func AllTraits() []Trait {
	return []Trait{
		TraitExtraversion,
		TraitAgreeableness,
		TraitConscientiousness,
		TraitEmotionalStability,
		TraitOpenness,
	}
}

// Valid indica si el tag corresponde a un rasgo conocido.
func (t Trait) Valid() bool {
	switch t {
	case TraitExtraversion, TraitAgreeableness, TraitConscientiousness,
		TraitEmotionalStability, TraitOpenness:
		return true
	}
	return false
}

// DisplayName devuelve el nombre alemán del rasgo (el producto es de-DE).
func (t Trait) DisplayName() string {
	switch t {
	case TraitExtraversion:
		return "Extraversion"
	case TraitAgreeableness:
		return "Verträglichkeit"
	case TraitConscientiousness:
		return "Gewissenhaftigkeit"
	case TraitEmotionalStability:
		return "Emotionale Stabilität"
	case TraitOpenness:
		return "Offenheit für Erfahrungen"
	default:
		return string(t)
	}
}

// Item es una pregunta del cuestionario IPIP.
// Inmutable: el catalogo se define una vez al arrancar el proceso.
type Item struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Trait    Trait  `json:"trait"`
	Reversed bool   `json:"reversed"`
}

// AnswerInput es un par (item, valor Likert 1-5) tal como llega del cliente.
type AnswerInput struct {
	ItemID int `json:"item_id"`
	Value  int `json:"value"`
}

// TraitScores mapea cada rasgo a su puntaje normalizado 0-100.
type TraitScores map[Trait]int

// PersonalityResult es el resultado derivado de una sesion completa.
// Inmutable una vez calculado; una nueva corrida produce un resultado nuevo.
type PersonalityResult struct {
	ID                 string           `json:"id"`
	SessionID          string           `json:"session_id"`
	Extraversion       int              `json:"extraversion"`
	Agreeableness      int              `json:"agreeableness"`
	Conscientiousness  int              `json:"conscientiousness"`
	EmotionalStability int              `json:"emotional_stability"`
	Openness           int              `json:"openness"`
	CreatedAt          time.Time        `json:"created_at"`
	Interpretations    map[Trait]string `json:"interpretations,omitempty"`
}

// Scores reexpone los cinco campos como mapa por rasgo.
func (r *PersonalityResult) Scores() TraitScores {
	return TraitScores{
		TraitExtraversion:       r.Extraversion,
		TraitAgreeableness:      r.Agreeableness,
		TraitConscientiousness:  r.Conscientiousness,
		TraitEmotionalStability: r.EmotionalStability,
		TraitOpenness:           r.Openness,
	}
}

// ApplyScores copia un TraitScores sobre los campos planos del resultado.
func (r *PersonalityResult) ApplyScores(scores TraitScores) {
	r.Extraversion = scores[TraitExtraversion]
	r.Agreeableness = scores[TraitAgreeableness]
	r.Conscientiousness = scores[TraitConscientiousness]
	r.EmotionalStability = scores[TraitEmotionalStability]
	r.Openness = scores[TraitOpenness]
}

// TraitInterpretation es la interpretacion generada por LLM para un rasgo de un resultado.
type TraitInterpretation struct {
	ID             string    `json:"id"`
	ResultID       string    `json:"result_id"`
	Trait          Trait     `json:"trait"`
	Interpretation string    `json:"interpretation"`
	CreatedAt      time.Time `json:"created_at"`
}
