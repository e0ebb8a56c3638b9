package sim

// IDGenerator hands out monotonically increasing process identifiers.
// It is engine-scoped rather than a package-level counter so that
// repeated runs and parallel tests are not order-dependent. A single
// generator may be shared across engines when comparing policies on
// identically numbered process sets.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type IDGenerator struct {
	next int
}

// NewIDGenerator creates a generator whose first PID is 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{next: 1}
}

// Next returns the next unused PID.
func (g *IDGenerator) Next() int {
	id := g.next
	g.next++
	return id
}
