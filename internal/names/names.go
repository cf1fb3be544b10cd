// Package names provides the fresh-name supplies injected into the rewrite
// engine. The engine itself holds no counter state, so a call to Desugar
// stays pure and independently testable; uniqueness is the supply's
// contract.
package names

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/forlang/forc/internal/config"
)

// Supply hands out names guaranteed unused elsewhere in the enclosing scope.
// Every name carries the synthetic prefix so it cannot collide with a
// surface identifier.
type Supply interface {
	Fresh(hint string) string
}

// CounterSupply numbers names from one shared counter: $e1, $e2, $t3, ...
// Deterministic, which keeps snapshots and golden tests stable.
type CounterSupply struct {
	n atomic.Int64
}

func NewCounterSupply() *CounterSupply {
	return &CounterSupply{}
}

func (s *CounterSupply) Fresh(hint string) string {
	return fmt.Sprintf("%s%s%d", config.SyntheticNamePrefix, hint, s.n.Add(1))
}

// UUIDSupply derives names from random UUIDs. For hosts that splice trees
// from several desugaring runs into one scope, where per-run counters could
// collide.
type UUIDSupply struct{}

func NewUUIDSupply() *UUIDSupply {
	return &UUIDSupply{}
}

func (s *UUIDSupply) Fresh(hint string) string {
	id := uuid.New()
	return fmt.Sprintf("%s%s_%x", config.SyntheticNamePrefix, hint, id[:4])
}
