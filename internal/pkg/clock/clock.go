package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// ZonedClock reports the time of the wrapped clock in a fixed location, so
// "today" and the current slot follow the business timezone.
type ZonedClock struct {
	base Clock
	loc  *time.Location
}

func NewZonedClock(base Clock, loc *time.Location) *ZonedClock {
	if loc == nil {
		loc = time.UTC
	}
	return &ZonedClock{base: base, loc: loc}
}

func (c *ZonedClock) Now() time.Time {
	return c.base.Now().In(c.loc)
}

func (c *ZonedClock) Location() *time.Location {
	return c.loc
}

type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
