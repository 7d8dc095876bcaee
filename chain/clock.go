package chain

import "sync"

// Clock supplies the logical time ("chain height") the stores read for expiry
// and scheduling checks. Heights never decrease.
type Clock interface {
	Height() uint64
}

// Counter is the process-local Clock: a monotonically non-decreasing height
// advanced by the environment. In the API server a cron tick advances it; in
// tests the test drives it directly.
type Counter struct {
	mu     sync.RWMutex
	height uint64
}

func NewCounter(start uint64) *Counter {
	return &Counter{height: start}
}

func (c *Counter) Height() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.height
}

// Advance moves the height forward one unit and returns the new value.
func (c *Counter) Advance() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height++
	return c.height
}

// AdvanceTo raises the height to h. Lower values are ignored so the counter
// stays monotone.
func (c *Counter) AdvanceTo(h uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if h > c.height {
		c.height = h
	}
}
