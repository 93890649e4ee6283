package service

import (
	"context"
	"errors"
	"testing"

	"bigfive-api/internal/domain"
	"bigfive-api/internal/questionnaire"
	"bigfive-api/internal/repository"
)

type mockResultRepo struct {
	results  map[string]*domain.PersonalityResult
	interps  map[string]map[domain.Trait]string
	saveErr  error
	saveCall int
}

func newMockResultRepo() *mockResultRepo {
	return &mockResultRepo{
		results: make(map[string]*domain.PersonalityResult),
		interps: make(map[string]map[domain.Trait]string),
	}
}

func (m *mockResultRepo) Save(_ context.Context, result *domain.PersonalityResult) error {
	m.saveCall++
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := *result
	m.results[result.ID] = &copied
	return nil
}

func (m *mockResultRepo) GetByID(_ context.Context, id string) (*domain.PersonalityResult, error) {
	r, ok := m.results[id]
	if !ok {
		return nil, repository.ErrResultNotFound
	}
	copied := *r
	return &copied, nil
}

func (m *mockResultRepo) GetBySessionID(_ context.Context, sessionID string) ([]*domain.PersonalityResult, error) {
	var out []*domain.PersonalityResult
	for _, r := range m.results {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockResultRepo) GetAll(_ context.Context) ([]*domain.PersonalityResult, error) {
	var out []*domain.PersonalityResult
	for _, r := range m.results {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockResultRepo) SaveInterpretations(_ context.Context, interps []*domain.TraitInterpretation) error {
	for _, interp := range interps {
		if m.interps[interp.ResultID] == nil {
			m.interps[interp.ResultID] = make(map[domain.Trait]string)
		}
		m.interps[interp.ResultID][interp.Trait] = interp.Interpretation
	}
	return nil
}

func (m *mockResultRepo) InterpretationsByResultID(_ context.Context, resultID string) (map[domain.Trait]string, error) {
	return m.interps[resultID], nil
}

func (m *mockResultRepo) DeleteInterpretationsByResultID(_ context.Context, resultID string) error {
	delete(m.interps, resultID)
	return nil
}

func allNeutralAnswers(cat *questionnaire.Catalog) []domain.AnswerInput {
	var answers []domain.AnswerInput
	for _, it := range cat.Items() {
		answers = append(answers, domain.AnswerInput{ItemID: it.ID, Value: 3})
	}
	return answers
}

func TestSubmitAnswersPersistsNormalizedScores(t *testing.T) {
	cat := questionnaire.DefaultCatalog()
	repo := newMockResultRepo()
	svc := NewPersonalityService(cat, repo, nil, nil, "de")

	result, err := svc.SubmitAnswers(context.Background(), "sess-1", allNeutralAnswers(cat), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID == "" {
		t.Fatalf("expected result id to be assigned")
	}
	if result.SessionID != "sess-1" {
		t.Fatalf("expected session id to be attached, got %q", result.SessionID)
	}
	for trait, score := range result.Scores() {
		if score != 50 {
			t.Fatalf("expected 50 for %s, got %d", trait, score)
		}
	}
	if _, ok := repo.results[result.ID]; !ok {
		t.Fatalf("expected result to be persisted")
	}
}

func TestSubmitAnswersRejectsEmptySet(t *testing.T) {
	cat := questionnaire.DefaultCatalog()
	svc := NewPersonalityService(cat, newMockResultRepo(), nil, nil, "de")

	if _, err := svc.SubmitAnswers(context.Background(), "s", nil, ""); !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}
}

func TestSubmitAnswersRejectsInvalidValue(t *testing.T) {
	cat := questionnaire.DefaultCatalog()
	svc := NewPersonalityService(cat, newMockResultRepo(), nil, nil, "de")

	_, err := svc.SubmitAnswers(context.Background(), "s", []domain.AnswerInput{{ItemID: 1, Value: 9}}, "")
	if !errors.Is(err, questionnaire.ErrValueOutOfRange) {
		t.Fatalf("expected ErrValueOutOfRange, got %v", err)
	}
}

func TestSubmitAnswersRejectsIncompleteTrait(t *testing.T) {
	cat := questionnaire.DefaultCatalog()
	repo := newMockResultRepo()
	svc := NewPersonalityService(cat, repo, nil, nil, "de")

	// Todo menos openness respondido: error de envio incompleto, nunca 0.
	var answers []domain.AnswerInput
	for _, it := range cat.Items() {
		if it.Trait == domain.TraitOpenness {
			continue
		}
		answers = append(answers, domain.AnswerInput{ItemID: it.ID, Value: 3})
	}

	_, err := svc.SubmitAnswers(context.Background(), "s", answers, "")
	if !errors.Is(err, ErrIncompleteSubmission) {
		t.Fatalf("expected ErrIncompleteSubmission, got %v", err)
	}
	if len(repo.results) != 0 {
		t.Fatalf("did not expect a result to be persisted")
	}
}

func TestSubmitSessionRetryAfterSaveFailure(t *testing.T) {
	cat := questionnaire.DefaultCatalog()
	repo := newMockResultRepo()
	repo.saveErr = errors.New("db down")
	svc := NewPersonalityService(cat, repo, nil, nil, "de")

	sess := questionnaire.NewSession(cat)
	for range cat.Items() {
		if err := sess.Answer(4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if _, err := svc.SubmitSession(context.Background(), "sess-retry", sess, ""); err == nil {
		t.Fatalf("expected save failure to surface")
	}

	// La sesion queda intacta: el reintento no exige recalcular nada.
	repo.saveErr = nil
	result, err := svc.SubmitSession(context.Background(), "sess-retry", sess, "")
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	// Extraversion: 5 items directos (4) y 5 invertidos (6-4=2) => promedio 3.0 => 50.
	if result.Extraversion != 50 {
		t.Fatalf("expected retried score 50, got %d", result.Extraversion)
	}
}

func TestGetResultMergesInterpretations(t *testing.T) {
	cat := questionnaire.DefaultCatalog()
	repo := newMockResultRepo()
	svc := NewPersonalityService(cat, repo, nil, nil, "de")

	result, err := svc.SubmitAnswers(context.Background(), "s", allNeutralAnswers(cat), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.interps[result.ID] = map[domain.Trait]string{
		domain.TraitOpenness: "offen für Neues",
	}

	got, err := svc.GetResult(context.Background(), result.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Interpretations[domain.TraitOpenness] != "offen für Neues" {
		t.Fatalf("expected interpretation to be merged, got %+v", got.Interpretations)
	}
}

func TestGetResultNotFound(t *testing.T) {
	cat := questionnaire.DefaultCatalog()
	svc := NewPersonalityService(cat, newMockResultRepo(), nil, nil, "de")

	_, err := svc.GetResult(context.Background(), "nope")
	if !errors.Is(err, repository.ErrResultNotFound) {
		t.Fatalf("expected ErrResultNotFound, got %v", err)
	}
}
