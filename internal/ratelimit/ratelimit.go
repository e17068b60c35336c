// Package ratelimit implements the sliding-window counter that gates build
// submissions.
package ratelimit

import (
	"sync"
	"time"
)

// Defaults for the submission limiter.
const (
	DefaultMaxRequests = 3
	DefaultWindow      = 60 * time.Second
)

// Clock supplies the current time. Tests inject a fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Limiter allows at most maxRequests acquisitions within any trailing window.
// A denied call does not record a timestamp.
type Limiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	clock       Clock
	requests    []time.Time
}

// New creates a limiter. A nil clock uses the wall clock.
func New(maxRequests int, window time.Duration, clock Clock) *Limiter {
	if clock == nil {
		clock = SystemClock
	}
	return &Limiter{
		maxRequests: maxRequests,
		window:      window,
		clock:       clock,
	}
}

// NewDefault creates a limiter allowing 3 submissions per minute.
func NewDefault() *Limiter {
	return New(DefaultMaxRequests, DefaultWindow, nil)
}

// TryAcquire records an attempt and reports whether it is allowed.
func (l *Limiter) TryAcquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	windowStart := now.Add(-l.window)

	// Timestamps are appended in order, so expired ones sit at the front.
	drop := 0
	for drop < len(l.requests) && l.requests[drop].Before(windowStart) {
		drop++
	}
	l.requests = l.requests[drop:]

	if len(l.requests) >= l.maxRequests {
		return false
	}
	l.requests = append(l.requests, now)
	return true
}

// Remaining returns how many acquisitions would currently succeed.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	windowStart := l.clock.Now().Add(-l.window)
	active := 0
	for _, ts := range l.requests {
		if !ts.Before(windowStart) {
			active++
		}
	}
	return max(l.maxRequests-active, 0)
}
