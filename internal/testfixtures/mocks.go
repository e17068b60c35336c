// Package testfixtures provides mock implementations and test utilities for
// wizard and TUI testing.
//
// This file contains mocks for the controller's collaborators:
//   - MockStore: in-memory draft store with call counters, injectable errors
//     and an optional gate holding saves
//   - MockEndpoint: records submitted builds and can block until released
//   - FakeClock: manually advanced clock for the rate limiter
//
// All mocks are thread-safe and provide verification methods for assertions.
//
// Example usage:
//
//	func TestMyComponent(t *testing.T) {
//	    st := testfixtures.NewMockStore()
//	    ep := testfixtures.NewMockEndpoint()
//
//	    c := wizard.New(wizard.Options{Store: st, Endpoint: ep})
//	    // ...
//	    require.Equal(t, 1, ep.Calls())
//	}
package testfixtures

import (
	"context"
	"sync"
	"time"

	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/store"
)

// MockStore is an in-memory draft store for testing.
type MockStore struct {
	mu sync.RWMutex

	data map[string][]byte

	// Errors to return from the matching method
	SaveError   error
	LoadError   error
	RemoveError error

	// SaveGate blocks Save until closed. SaveStarted receives once per
	// blocked Save when non-nil.
	SaveGate    chan struct{}
	SaveStarted chan struct{}

	// Call tracking
	SaveCalls   int
	LoadCalls   int
	RemoveCalls int
	LastKey     string
}

// NewMockStore creates an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string][]byte)}
}

func (m *MockStore) Save(_ context.Context, key string, value []byte) error {
	m.mu.RLock()
	gate, started := m.SaveGate, m.SaveStarted
	m.mu.RUnlock()

	if gate != nil {
		if started != nil {
			select {
			case started <- struct{}{}:
			default:
			}
		}
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveCalls++
	m.LastKey = key
	if m.SaveError != nil {
		return m.SaveError
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MockStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LoadCalls++
	m.LastKey = key
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	v, ok := m.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MockStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RemoveCalls++
	m.LastKey = key
	if m.RemoveError != nil {
		return m.RemoveError
	}
	if _, ok := m.data[key]; !ok {
		return store.ErrNotFound
	}
	delete(m.data, key)
	return nil
}

// BlockSaves makes every following Save wait until release is called.
// started receives when a Save begins waiting.
func (m *MockStore) BlockSaves() (started <-chan struct{}, release func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveGate = make(chan struct{})
	m.SaveStarted = make(chan struct{}, 1)
	gate := m.SaveGate
	return m.SaveStarted, func() { close(gate) }
}

// Put seeds a raw value under key without counting a Save.
func (m *MockStore) Put(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
}

// Get returns the raw value under key.
func (m *MockStore) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

// Saves returns the number of Save calls.
func (m *MockStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.SaveCalls
}

// MockEndpoint records submitted builds. When Gate is set, Submit blocks
// until a value is sent on it or the context ends.
type MockEndpoint struct {
	mu sync.Mutex

	// Error to return from Submit
	Err error
	// Gate blocks Submit until released
	Gate chan struct{}
	// Started receives once per Submit call when non-nil
	Started chan struct{}

	builds []buildform.Build
}

// NewMockEndpoint creates a MockEndpoint that accepts everything.
func NewMockEndpoint() *MockEndpoint {
	return &MockEndpoint{}
}

// NewBlockingEndpoint creates a MockEndpoint whose Submit waits for Release.
func NewBlockingEndpoint() *MockEndpoint {
	return &MockEndpoint{
		Gate:    make(chan struct{}),
		Started: make(chan struct{}, 1),
	}
}

func (m *MockEndpoint) Submit(ctx context.Context, build buildform.Build) error {
	m.mu.Lock()
	m.builds = append(m.builds, build)
	gate, started, err := m.Gate, m.Started, m.Err
	m.mu.Unlock()

	if started != nil {
		select {
		case started <- struct{}{}:
		default:
		}
	}

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// Release unblocks one pending Submit.
func (m *MockEndpoint) Release() {
	m.Gate <- struct{}{}
}

// Calls returns the number of Submit calls.
func (m *MockEndpoint) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.builds)
}

// Builds returns the submitted builds in order.
func (m *MockEndpoint) Builds() []buildform.Build {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]buildform.Build, len(m.builds))
	copy(out, m.builds)
	return out
}

// FakeClock is a manually advanced clock.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock creates a clock stopped at start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
