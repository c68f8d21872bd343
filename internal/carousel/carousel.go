// Package carousel drives the rotating "conveyor belt" of shared
// memories: one record shown at a time, advanced by a timer or by
// next/previous controls, wrapping at both ends.
package carousel

import "sync"

// Carousel holds the rotation state over a list of a given length.
// The index invariant is 0 <= index < length whenever length > 0; an
// empty carousel has no index and callers render an empty state.
type Carousel struct {
	mu     sync.Mutex
	length int
	index  int
}

func New(length int) *Carousel {
	if length < 0 {
		length = 0
	}
	return &Carousel{length: length}
}

// Next advances one position, wrapping past the end back to zero
func (c *Carousel) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.length == 0 {
		return
	}
	c.index = (c.index + 1) % c.length
}

// Prev retreats one position, wrapping before zero to the last entry
func (c *Carousel) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.length == 0 {
		return
	}
	c.index = (c.index - 1 + c.length) % c.length
}

// Tick is the timer's advance; identical to Next
func (c *Carousel) Tick() {
	c.Next()
}

// SetLength adjusts to a refetched list. A shrink that strands the
// index clamps it back into range; growing never moves it.
func (c *Carousel) SetLength(length int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if length < 0 {
		length = 0
	}
	c.length = length
	if length == 0 {
		c.index = 0
		return
	}
	if c.index >= length {
		c.index = length - 1
	}
}

// Index returns the current position and whether there is anything to
// show. ok is false for an empty list; never index with ok false.
func (c *Carousel) Index() (i int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.length == 0 {
		return 0, false
	}
	return c.index, true
}

// Len returns the current list length
func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.length
}
