package service

import (
	"fmt"
	"strings"

	"bigfive-api/internal/domain"
)

// Bandas cualitativas del puntaje normalizado 0-100. El corte coincide
// con el del producto original: >=60 alto, <40 bajo, el resto balanceado.
const (
	scoreBandHigh = 60
	scoreBandLow  = 40
)

// promptLanguage agrupa los textos dependientes de idioma. Hoy el
// producto soporta aleman (default) e ingles.
type promptLanguage struct {
	systemPrompt string
	bandHigh     string
	bandBalanced string
	bandLow      string
	traitNames   map[domain.Trait]string
	template     string
}

func languageFor(code string) promptLanguage {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en":
		return englishPrompts()
	default:
		return germanPrompts()
	}
}

func germanPrompts() promptLanguage {
	return promptLanguage{
		systemPrompt: "Du bist ein erfahrener Persönlichkeitspsychologe. " +
			"Du erklärst Big-Five-Ergebnisse verständlich, wertschätzend und ohne Fachjargon. " +
			"Antworte auf Deutsch, in 3 bis 5 kurzen Sätzen, direkt an die Person gerichtet.",
		bandHigh:     "hoch",
		bandBalanced: "ausgewogen",
		bandLow:      "niedrig",
		traitNames: map[domain.Trait]string{
			domain.TraitExtraversion:       "Extraversion",
			domain.TraitAgreeableness:      "Verträglichkeit",
			domain.TraitConscientiousness:  "Gewissenhaftigkeit",
			domain.TraitEmotionalStability: "Emotionale Stabilität",
			domain.TraitOpenness:           "Offenheit für Erfahrungen",
		},
		template: "Die Person hat beim Merkmal %q einen Wert von %d von 100 erreicht (%s). " +
			"Beschreibe, was dieser Wert im Alltag bedeutet, und nenne eine Stärke, die damit verbunden ist.",
	}
}

func englishPrompts() promptLanguage {
	return promptLanguage{
		systemPrompt: "You are an experienced personality psychologist. " +
			"You explain Big Five results in plain, encouraging language without jargon. " +
			"Answer in English, in 3 to 5 short sentences, addressing the person directly.",
		bandHigh:     "high",
		bandBalanced: "balanced",
		bandLow:      "low",
		traitNames: map[domain.Trait]string{
			domain.TraitExtraversion:       "Extraversion",
			domain.TraitAgreeableness:      "Agreeableness",
			domain.TraitConscientiousness:  "Conscientiousness",
			domain.TraitEmotionalStability: "Emotional Stability",
			domain.TraitOpenness:           "Openness to Experience",
		},
		template: "The person scored %[2]d out of 100 on the trait %[1]q (%[3]s). " +
			"Describe what this score means in everyday life and name one strength that comes with it.",
	}
}

// SystemPrompt devuelve el prompt de sistema para el idioma dado.
func SystemPrompt(language string) string {
	return languageFor(language).systemPrompt
}

// BuildInterpretationPrompt arma el prompt de usuario para un rasgo y puntaje.
func BuildInterpretationPrompt(trait domain.Trait, score int, language string) string {
	lang := languageFor(language)

	band := lang.bandBalanced
	switch {
	case score >= scoreBandHigh:
		band = lang.bandHigh
	case score < scoreBandLow:
		band = lang.bandLow
	}

	name, ok := lang.traitNames[trait]
	if !ok {
		name = string(trait)
	}

	return fmt.Sprintf(lang.template, name, score, band)
}
