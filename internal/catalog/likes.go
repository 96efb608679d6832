package catalog

import (
	"sync"
)

// LikeCounter counts likes for ephemeral videos, which have no catalog
// row to increment. Keys are the synthetic identifiers assigned when a
// roster is built, never display titles. Counts live for the process
// only.
type LikeCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewLikeCounter creates an empty ephemeral like counter
func NewLikeCounter() *LikeCounter {
	return &LikeCounter{counts: make(map[string]int)}
}

// Increment bumps the count for a synthetic id and returns the new
// count.
func (c *LikeCounter) Increment(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[id]++
	return c.counts[id]
}

// Count returns the current count for a synthetic id
func (c *LikeCounter) Count(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[id]
}
