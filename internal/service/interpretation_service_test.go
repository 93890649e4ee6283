package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bigfive-api/internal/domain"
	"bigfive-api/internal/llm"
)

func TestBuildInterpretationPromptBands(t *testing.T) {
	cases := []struct {
		score int
		lang  string
		want  string
	}{
		{score: 80, lang: "de", want: "hoch"},
		{score: 60, lang: "de", want: "hoch"},
		{score: 50, lang: "de", want: "ausgewogen"},
		{score: 40, lang: "de", want: "ausgewogen"},
		{score: 20, lang: "de", want: "niedrig"},
		{score: 80, lang: "en", want: "high"},
		{score: 20, lang: "en", want: "low"},
	}
	for _, tc := range cases {
		prompt := BuildInterpretationPrompt(domain.TraitOpenness, tc.score, tc.lang)
		if !strings.Contains(prompt, tc.want) {
			t.Fatalf("expected band %q in prompt for score %d (%s), got %q", tc.want, tc.score, tc.lang, prompt)
		}
	}
}

func TestBuildInterpretationPromptUsesLocalizedTraitName(t *testing.T) {
	de := BuildInterpretationPrompt(domain.TraitAgreeableness, 50, "de")
	if !strings.Contains(de, "Verträglichkeit") {
		t.Fatalf("expected German trait name, got %q", de)
	}
	en := BuildInterpretationPrompt(domain.TraitAgreeableness, 50, "en")
	if !strings.Contains(en, "Agreeableness") {
		t.Fatalf("expected English trait name, got %q", en)
	}
	// Idioma desconocido cae en aleman, el default del producto.
	fallback := BuildInterpretationPrompt(domain.TraitAgreeableness, 50, "xx")
	if !strings.Contains(fallback, "Verträglichkeit") {
		t.Fatalf("expected fallback to German, got %q", fallback)
	}
}

func TestGenerateOneReturnsLLMText(t *testing.T) {
	mock := &llm.MockClient{Response: "Du bist sehr offen."}
	svc := NewInterpretationService(mock, nil)

	text, err := svc.GenerateOne(context.Background(), domain.TraitOpenness, 80, "de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Du bist sehr offen." {
		t.Fatalf("unexpected text: %q", text)
	}
	prompts := mock.Prompts()
	if len(prompts) != 1 || !strings.Contains(prompts[0], "Offenheit") {
		t.Fatalf("expected trait name in prompt, got %+v", prompts)
	}
}

// flakyClient falla una vez y luego responde; cubre el camino de reintento.
type flakyClient struct {
	calls int
}

func (c *flakyClient) Generate(_ context.Context, _ string) (string, error) {
	c.calls++
	if c.calls == 1 {
		return "", errors.New("transient")
	}
	return "ok", nil
}

func TestGenerateOneRetriesOnTransientError(t *testing.T) {
	client := &flakyClient{}
	svc := NewInterpretationService(client, nil)

	text, err := svc.GenerateOne(context.Background(), domain.TraitOpenness, 50, "de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "ok" || client.calls != 2 {
		t.Fatalf("expected success on second attempt, got text=%q calls=%d", text, client.calls)
	}
}

func TestGenerateOneNotConfigured(t *testing.T) {
	svc := NewInterpretationService(nil, nil)
	if _, err := svc.GenerateOne(context.Background(), domain.TraitOpenness, 50, "de"); !errors.Is(err, ErrInterpreterNotConfigured) {
		t.Fatalf("expected ErrInterpreterNotConfigured, got %v", err)
	}
}

func TestGenerateAllProducesOnePerTrait(t *testing.T) {
	mock := &llm.MockClient{Response: "text"}
	svc := NewInterpretationService(mock, nil)

	result := &domain.PersonalityResult{ID: "res-1"}
	result.ApplyScores(domain.TraitScores{
		domain.TraitExtraversion:       10,
		domain.TraitAgreeableness:      30,
		domain.TraitConscientiousness:  50,
		domain.TraitEmotionalStability: 70,
		domain.TraitOpenness:           90,
	})

	interps, err := svc.GenerateAll(context.Background(), result, "de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(interps) != 5 {
		t.Fatalf("expected 5 interpretations, got %d", len(interps))
	}

	seen := make(map[domain.Trait]bool)
	for _, interp := range interps {
		if interp.ResultID != "res-1" {
			t.Fatalf("expected result id res-1, got %q", interp.ResultID)
		}
		if interp.ID == "" {
			t.Fatalf("expected interpretation id to be assigned")
		}
		seen[interp.Trait] = true
	}
	if len(seen) != 5 {
		t.Fatalf("expected one interpretation per trait, got %v", seen)
	}
}
