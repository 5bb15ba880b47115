package random

import "testing"

func TestPCGDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := range 100 {
		if x, y := a.Float(0, 1), b.Float(0, 1); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
		if x, y := a.Int(20, 36), b.Int(20, 36); x != y {
			t.Fatalf("int draw %d: %v != %v", i, x, y)
		}
	}
}

func TestPCGBounds(t *testing.T) {
	r := New(7)
	seen := map[int]bool{}
	for range 2000 {
		v := r.Int(12, 20)
		if v < 12 || v > 20 {
			t.Fatalf("Int(12, 20) = %d out of range", v)
		}
		seen[v] = true

		f := r.Float(-0.05, 0.07)
		if f < -0.05 || f > 0.07 {
			t.Fatalf("Float(-0.05, 0.07) = %v out of range", f)
		}
	}
	if !seen[12] || !seen[20] {
		t.Error("Int should reach both inclusive bounds")
	}
}

func TestDegenerateRanges(t *testing.T) {
	r := New(1)
	if got := r.Float(1, 1); got != 1 {
		t.Errorf("Float(1, 1) = %v, want 1", got)
	}
	if got := r.Int(20, 20); got != 20 {
		t.Errorf("Int(20, 20) = %v, want 20", got)
	}
}

func TestSeedRange(t *testing.T) {
	for range 50 {
		if s := Seed(); s > 9999 {
			t.Fatalf("Seed() = %d, want <= 9999", s)
		}
	}
}
