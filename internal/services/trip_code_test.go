package services

import (
	"strings"
	"sync"
	"testing"
)

func TestTripCodeShapeAndAlphabet(t *testing.T) {
	g := NewTripCodeGenerator()
	for i := 0; i < 5000; i++ {
		code := g.Next()
		if len(code) != TripCodeLength {
			t.Fatalf("code %q has length %d", code, len(code))
		}
		for _, r := range code {
			if !strings.ContainsRune(tripCodeAlphabet, r) {
				t.Fatalf("code %q contains %q outside [A-Za-z0-9]", code, r)
			}
		}
	}
}

func TestTripCodeSeededIsDeterministic(t *testing.T) {
	a := NewSeededTripCodeGenerator(42)
	b := NewSeededTripCodeGenerator(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d differs: %q vs %q", i, x, y)
		}
	}
	if NewSeededTripCodeGenerator(1).Next() == NewSeededTripCodeGenerator(2).Next() {
		t.Fatalf("different seeds should diverge")
	}
}

func TestTripCodeCoversAlphabet(t *testing.T) {
	g := NewSeededTripCodeGenerator(7)
	seen := map[rune]bool{}
	for i := 0; i < 2000; i++ {
		for _, r := range g.Next() {
			seen[r] = true
		}
	}
	if len(seen) != len(tripCodeAlphabet) {
		t.Fatalf("expected all %d symbols, saw %d", len(tripCodeAlphabet), len(seen))
	}
}

func TestTripCodeConcurrentUse(t *testing.T) {
	g := NewSeededTripCodeGenerator(3)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if len(g.Next()) != TripCodeLength {
					t.Error("bad code length")
					return
				}
			}
		}()
	}
	wg.Wait()
}
