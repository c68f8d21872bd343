package carousel

import (
	"testing"
	"time"
)

func TestNextWrapsAround(t *testing.T) {
	c := New(3)

	c.Next()
	c.Next()
	if i, _ := c.Index(); i != 2 {
		t.Fatalf("expected index 2, got %d", i)
	}

	c.Next()
	if i, _ := c.Index(); i != 0 {
		t.Fatalf("expected wrap to 0, got %d", i)
	}
}

func TestPrevWrapsAround(t *testing.T) {
	c := New(3)

	c.Prev()
	if i, _ := c.Index(); i != 2 {
		t.Fatalf("expected wrap to 2, got %d", i)
	}
}

func TestIndexEmpty(t *testing.T) {
	c := New(0)
	if _, ok := c.Index(); ok {
		t.Fatal("expected no index for an empty carousel")
	}

	c.Next()
	c.Prev()
	if _, ok := c.Index(); ok {
		t.Fatal("navigation on an empty carousel must not produce an index")
	}
}

func TestSetLengthClampsIndex(t *testing.T) {
	c := New(5)
	c.Next()
	c.Next()
	c.Next()
	c.Next() // index 4

	c.SetLength(3)
	if i, _ := c.Index(); i != 0 {
		t.Fatalf("expected index reset after shrink past position, got %d", i)
	}

	c.SetLength(0)
	if _, ok := c.Index(); ok {
		t.Fatal("expected no index after shrinking to zero")
	}
}

func TestSetLengthKeepsValidIndex(t *testing.T) {
	c := New(5)
	c.Next() // index 1

	c.SetLength(3)
	if i, _ := c.Index(); i != 1 {
		t.Fatalf("expected index 1 to survive the shrink, got %d", i)
	}
}

func TestRotatorAdvances(t *testing.T) {
	c := New(3)
	r := NewRotator(c, 10*time.Millisecond)
	defer r.Stop()

	deadline := time.After(2 * time.Second)
	for {
		if i, _ := c.Index(); i != 0 {
			return
		}
		select {
		case <-deadline:
			t.Fatal("rotator never advanced the carousel")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestRotatorStop(t *testing.T) {
	c := New(3)
	r := NewRotator(c, time.Millisecond)
	r.Stop()

	i1, _ := c.Index()
	time.Sleep(20 * time.Millisecond)
	i2, _ := c.Index()
	if i1 != i2 {
		t.Fatalf("carousel advanced after Stop: %d -> %d", i1, i2)
	}
}
