package questionnaire

import (
	"errors"
	"testing"
	"time"
)

func TestSessionAnswerAdvancesThroughCatalog(t *testing.T) {
	cat := testCatalog(t)
	sess := NewSession(cat)

	for i := 0; i < cat.Len(); i++ {
		item, ok := sess.Current()
		if !ok {
			t.Fatalf("expected current item at step %d", i)
		}
		if item.ID != i+1 {
			t.Fatalf("expected item %d, got %d", i+1, item.ID)
		}
		if err := sess.Answer(3); err != nil {
			t.Fatalf("unexpected error answering item %d: %v", item.ID, err)
		}
	}

	if !sess.IsComplete() {
		t.Fatalf("expected session complete after answering all items")
	}
	if err := sess.Answer(3); !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("expected ErrSessionComplete, got %v", err)
	}
}

func TestSessionBackAndRevisit(t *testing.T) {
	cat := testCatalog(t)
	sess := NewSession(cat)

	if err := sess.Answer(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sess.Back()

	item, ok := sess.Current()
	if !ok || item.ID != 1 {
		t.Fatalf("expected to be back on item 1, got %+v", item)
	}
	// El valor previo queda disponible para preseleccionar el control.
	if v, ok := sess.ValueFor(item.ID); !ok || v != 2 {
		t.Fatalf("expected previous value 2, got %d ok=%v", v, ok)
	}

	// Re-responder reemplaza, no duplica.
	if err := sess.Answer(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.AnsweredCount() != 1 {
		t.Fatalf("expected single answer after re-answer, got %d", sess.AnsweredCount())
	}
	if v, _ := sess.ValueFor(1); v != 5 {
		t.Fatalf("expected replaced value 5, got %d", v)
	}
}

func TestSessionRejectsInvalidValueWithoutAdvancing(t *testing.T) {
	cat := testCatalog(t)
	sess := NewSession(cat)

	if err := sess.Answer(7); !errors.Is(err, ErrValueOutOfRange) {
		t.Fatalf("expected ErrValueOutOfRange, got %v", err)
	}
	if sess.Position() != 0 {
		t.Fatalf("expected cursor unchanged after rejected answer, got pos=%d", sess.Position())
	}
	if sess.AnsweredCount() != 0 {
		t.Fatalf("expected ledger unchanged after rejected answer")
	}
}

func TestSessionProgress(t *testing.T) {
	cat := testCatalog(t)
	sess := NewSession(cat)

	if p := sess.Progress(); p != 0 {
		t.Fatalf("expected progress 0, got %v", p)
	}
	for i := 0; i < cat.Len()/2; i++ {
		if err := sess.Answer(3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if p := sess.Progress(); p != 0.5 {
		t.Fatalf("expected progress 0.5, got %v", p)
	}
}

func TestSessionResetClearsEverything(t *testing.T) {
	cat := testCatalog(t)
	sess := NewSession(cat)

	for i := 0; i < cat.Len(); i++ {
		if err := sess.Answer(4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	sess.Reset()

	if sess.IsComplete() || sess.Position() != 0 {
		t.Fatalf("expected cursor back at 0 after reset")
	}
	if sess.AnsweredCount() != 0 {
		t.Fatalf("expected empty ledger after reset, got %d", sess.AnsweredCount())
	}
}

func TestSessionScoreEndToEnd(t *testing.T) {
	cat := testCatalog(t)
	sess := NewSession(cat)

	for i := 0; i < cat.Len(); i++ {
		if err := sess.Answer(3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	scores, err := sess.Score()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scores) != 5 {
		t.Fatalf("expected 5 trait scores, got %d", len(scores))
	}
}

func TestSessionStoreLifecycle(t *testing.T) {
	cat := testCatalog(t)
	store := NewSessionStore(cat, time.Hour)

	id, sess := store.Create()
	if id == "" || sess == nil {
		t.Fatalf("expected session with opaque id")
	}

	got, err := store.Get(id)
	if err != nil || got != sess {
		t.Fatalf("expected same session back, err=%v", err)
	}

	if _, err := store.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	store.Delete(id)
	if _, err := store.Get(id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestSessionStoreSweepsExpiredSessions(t *testing.T) {
	cat := testCatalog(t)
	store := NewSessionStore(cat, time.Nanosecond)

	id, _ := store.Create()
	time.Sleep(2 * time.Millisecond)

	if _, err := store.Get(id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected expired session to be swept, got %v", err)
	}
}
