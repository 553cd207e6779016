package tips

import (
	"math/rand"
	"sync/atomic"
)

// Selector picks the next tip to display from an ordered list.
type Selector interface {
	Next(tips []string) string
}

type cyclicSelector struct {
	current uint64
}

func (c *cyclicSelector) Next(tips []string) string {
	if len(tips) == 0 {
		return ""
	}

	n := atomic.AddUint64(&c.current, 1)

	index := (n - 1) % uint64(len(tips))

	return tips[index]
}

// NewCyclic returns a selector that rotates through the list in order,
// wrapping around at the end.
func NewCyclic() Selector {
	return &cyclicSelector{
		current: 0,
	}
}

type randomSelector struct{}

func (r *randomSelector) Next(tips []string) string {
	if len(tips) == 0 {
		return ""
	}

	index := rand.Intn(len(tips))
	return tips[index]
}

// NewRandom returns a selector that picks a tip uniformly at random.
func NewRandom() Selector {
	return &randomSelector{}
}
