package questionnaire

import "testing"

func TestCursorWalkToCompletion(t *testing.T) {
	const n = 10
	cur := NewCursor(n)

	if cur.Position() != 0 || cur.IsComplete() {
		t.Fatalf("expected fresh cursor at 0, got pos=%d complete=%v", cur.Position(), cur.IsComplete())
	}

	for i := 0; i < n; i++ {
		if cur.IsComplete() {
			t.Fatalf("cursor complete too early at step %d", i)
		}
		cur.Advance()
	}

	if !cur.IsComplete() || cur.Position() != n {
		t.Fatalf("expected complete at pos %d, got pos=%d complete=%v", n, cur.Position(), cur.IsComplete())
	}

	// Avanzar de nuevo no cambia el estado.
	cur.Advance()
	if cur.Position() != n {
		t.Fatalf("expected advance past completion to be a no-op, got pos=%d", cur.Position())
	}
}

func TestCursorRetreatAtZeroIsNoOp(t *testing.T) {
	cur := NewCursor(5)
	cur.Retreat()
	if cur.Position() != 0 {
		t.Fatalf("expected retreat at 0 to be a no-op, got pos=%d", cur.Position())
	}
}

func TestCursorRetreatAfterCompleteIsNoOp(t *testing.T) {
	cur := NewCursor(2)
	cur.Advance()
	cur.Advance()
	cur.Retreat()
	if !cur.IsComplete() {
		t.Fatalf("expected retreat from complete to be a no-op, got pos=%d", cur.Position())
	}
}

func TestCursorProgressIsMonotonic(t *testing.T) {
	const n = 10
	cur := NewCursor(n)

	prev := cur.Progress()
	if prev != 0 {
		t.Fatalf("expected progress 0 at start, got %v", prev)
	}
	for i := 0; i < n; i++ {
		cur.Advance()
		p := cur.Progress()
		if p < prev {
			t.Fatalf("progress decreased: %v -> %v", prev, p)
		}
		prev = p
	}
	if prev != 1 {
		t.Fatalf("expected progress 1 once complete, got %v", prev)
	}
}

func TestCursorReset(t *testing.T) {
	cur := NewCursor(3)
	cur.Advance()
	cur.Advance()
	cur.Reset()
	if cur.Position() != 0 || cur.IsComplete() {
		t.Fatalf("expected reset cursor at 0, got pos=%d", cur.Position())
	}
}
