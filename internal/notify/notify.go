// Package notify carries transient user-facing messages from the wizard to
// whatever front end is showing it.
package notify

import (
	"sync"
	"time"

	"github.com/mark3labs/rigwizard/internal/logger"
)

// Kind distinguishes informational messages from failures.
type Kind string

const (
	KindInfo  Kind = "info"
	KindError Kind = "error"
)

// Notification is a single message. A zero Duration lets the sink pick its
// default display time.
type Notification struct {
	Kind     Kind          `json:"kind"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"duration,omitempty"`
}

// Sink receives notifications. Notify must not block for long and its
// outcome is never consulted.
type Sink interface {
	Notify(n Notification)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Notification)

func (f SinkFunc) Notify(n Notification) { f(n) }

// Discard drops every notification.
var Discard Sink = SinkFunc(func(Notification) {})

// LogSink writes notifications to the logger. Used by headless commands.
type LogSink struct{}

func (LogSink) Notify(n Notification) {
	if n.Kind == KindError {
		logger.Warn("%s: %s", n.Title, n.Message)
		return
	}
	logger.Info("%s: %s", n.Title, n.Message)
}

// Multi fans a notification out to several sinks in order.
type Multi []Sink

func (m Multi) Notify(n Notification) {
	for _, s := range m {
		if s != nil {
			s.Notify(n)
		}
	}
}

// Recorder keeps every notification it receives.
type Recorder struct {
	mu  sync.Mutex
	all []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = append(r.all, n)
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.all))
	copy(out, r.all)
	return out
}

// Drain returns the recorded notifications and forgets them.
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.all
	r.all = nil
	return out
}
