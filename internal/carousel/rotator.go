package carousel

import "time"

// DefaultInterval matches the reference rotation speed of the memories
// conveyor belt.
const DefaultInterval = 5 * time.Second

// Rotator ticks a Carousel on a fixed interval in its own goroutine.
// It is the only autonomous activity in the system and must be stopped
// when the display goes away, or the timer keeps mutating state nobody
// renders.
type Rotator struct {
	carousel *Carousel
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewRotator starts rotating immediately. A non-positive interval falls
// back to DefaultInterval.
func NewRotator(c *Carousel, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}

	r := &Rotator{
		carousel: c,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *Rotator) run() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.carousel.Tick()
		case <-r.stop:
			return
		}
	}
}

// Stop tears the timer down and waits for the goroutine to exit.
// Safe to call once; the carousel itself stays usable for manual
// next/previous.
func (r *Rotator) Stop() {
	close(r.stop)
	<-r.done
}
