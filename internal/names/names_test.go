package names_test

import (
	"strings"
	"testing"

	"github.com/forlang/forc/internal/names"
)

func TestCounterSupplySequential(t *testing.T) {
	s := names.NewCounterSupply()
	if got := s.Fresh("e"); got != "$e1" {
		t.Errorf("first name = %q, want %q", got, "$e1")
	}
	if got := s.Fresh("e"); got != "$e2" {
		t.Errorf("second name = %q, want %q", got, "$e2")
	}
	// the counter is shared across hints so names never collide
	if got := s.Fresh("t"); got != "$t3" {
		t.Errorf("third name = %q, want %q", got, "$t3")
	}
}

func TestCounterSupplyIndependentInstances(t *testing.T) {
	a := names.NewCounterSupply()
	b := names.NewCounterSupply()
	if a.Fresh("e") != b.Fresh("e") {
		t.Error("fresh supplies must be deterministic")
	}
}

func TestUUIDSupply(t *testing.T) {
	s := names.NewUUIDSupply()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := s.Fresh("e")
		if !strings.HasPrefix(name, "$e_") {
			t.Fatalf("name %q should carry prefix $e_", name)
		}
		if seen[name] {
			t.Fatalf("name %q issued twice", name)
		}
		seen[name] = true
	}
}
