package snake

import "testing"

func TestHistoryNewestFirst(t *testing.T) {
	h := NewHistory(3)
	if _, ok := h.At(0); ok {
		t.Fatal("empty history should have no entries")
	}

	h.Push(Cell{X: 1})
	h.Push(Cell{X: 2})

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	if c, _ := h.At(0); c.X != 2 {
		t.Errorf("At(0) = %v, want newest (2,0)", c)
	}
	if c, _ := h.At(1); c.X != 1 {
		t.Errorf("At(1) = %v, want (1,0)", c)
	}
	if _, ok := h.At(2); ok {
		t.Error("At(2) should not exist yet")
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.Push(Cell{X: i})
	}

	if h.Len() != 3 || h.Cap() != 3 {
		t.Fatalf("Len/Cap = %d/%d, want 3/3", h.Len(), h.Cap())
	}
	for i, want := range []int{5, 4, 3} {
		c, ok := h.At(i)
		if !ok || c.X != want {
			t.Errorf("At(%d) = %v, %v; want X=%d", i, c, ok, want)
		}
	}
	if _, ok := h.At(3); ok {
		t.Error("evicted entry still reachable")
	}
	if _, ok := h.At(-1); ok {
		t.Error("negative index should not exist")
	}
}
