package utils

import "testing"

func TestPRNGServiceIsDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.IntRange(-800, 800), b.IntRange(-800, 800); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("seed %d, want 42", a.Seed())
	}
}

func TestIntRangeBounds(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := s.IntRange(-3, 3)
		if v < -3 || v >= 3 {
			t.Fatalf("value %d out of [-3, 3)", v)
		}
	}
	if got := s.IntRange(5, 5); got != 5 {
		t.Errorf("empty range: got %d, want 5", got)
	}
}

func TestZeroSeedUsesClock(t *testing.T) {
	if NewPRNGService(0).Seed() == 0 {
		t.Errorf("zero seed was not replaced")
	}
}
