package random

import "testing"

func TestNewRNGKeepsGivenSeed(t *testing.T) {
	rng, seed, err := NewRNG(99)
	if err != nil {
		t.Fatalf("NewRNG returned error: %v", err)
	}
	if seed != 99 {
		t.Fatalf("seed = %d, want 99", seed)
	}

	other, _, _ := NewRNG(99)
	for i := 0; i < 10; i++ {
		if a, b := rng.Intn(1000), other.Intn(1000); a != b {
			t.Fatalf("draw %d differs for the same seed: %d != %d", i, a, b)
		}
	}
}

func TestNewRNGDrawsSeedForZero(t *testing.T) {
	rng, seed, err := NewRNG(0)
	if err != nil {
		t.Fatalf("NewRNG returned error: %v", err)
	}
	if rng == nil {
		t.Fatal("expected a generator")
	}
	if seed == 0 {
		t.Fatal("expected a drawn seed")
	}
}
