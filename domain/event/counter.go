package event

import "sync"

// Counter accumulates per-type event counts for the debug dashboard.
type Counter struct {
	mu     sync.Mutex
	counts map[Type]uint64
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[Type]uint64)}
}

func (c *Counter) Increment(t Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[t]++
}

func (c *Counter) Get(t Type) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[t]
}

// Snapshot returns a copy safe to hand to the stats provider.
func (c *Counter) Snapshot() map[Type]uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make(map[Type]uint64, len(c.counts))
	for t, n := range c.counts {
		snapshot[t] = n
	}
	return snapshot
}
