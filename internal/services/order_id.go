package service

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// OrderIDGenerator produces order identifiers. The strategy is pluggable; the
// default mirrors the storefront's "ORD" prefix plus a random integer.
type OrderIDGenerator interface {
	NewOrderID() string
}

// RandomOrderIDGenerator draws from a space of one million ids and does not
// check collisions against existing orders. Whether that risk is acceptable
// is an open product question; swap in a different generator rather than
// silently changing the format.
type RandomOrderIDGenerator struct{}

func (RandomOrderIDGenerator) NewOrderID() string {
	return fmt.Sprintf("ORD%d", rand.IntN(1_000_000))
}

// SequentialOrderIDGenerator is the collision-free alternative: a monotonic
// counter. Used in tests and available for deployments that prefer it.
type SequentialOrderIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (g *SequentialOrderIDGenerator) NewOrderID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next++

	return fmt.Sprintf("ORD%06d", g.next)
}
