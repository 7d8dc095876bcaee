package chain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterAdvance(t *testing.T) {
	c := NewCounter(5)
	assert.Equal(t, uint64(5), c.Height())
	assert.Equal(t, uint64(6), c.Advance())
	assert.Equal(t, uint64(6), c.Height())
}

func TestCounterAdvanceToIsMonotone(t *testing.T) {
	c := NewCounter(10)

	c.AdvanceTo(20)
	assert.Equal(t, uint64(20), c.Height())

	c.AdvanceTo(15)
	assert.Equal(t, uint64(20), c.Height(), "the height never moves backwards")
}

func TestCounterConcurrentAdvance(t *testing.T) {
	c := NewCounter(0)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Advance()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(100), c.Height())
}
