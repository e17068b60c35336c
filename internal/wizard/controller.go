// Package wizard drives the build intake: it owns the draft, moves between
// steps, runs the validator on every forward transition, persists the draft
// on change and gates submission behind a rate limiter.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/logger"
	"github.com/mark3labs/rigwizard/internal/notify"
	"github.com/mark3labs/rigwizard/internal/sanitize"
	"github.com/mark3labs/rigwizard/internal/store"
	"github.com/mark3labs/rigwizard/internal/validate"
)

// DefaultDraftKey is the store key the draft is saved under.
const DefaultDraftKey = "pcBuilderFormData"

var (
	// ErrRateLimited is returned by Submit when the limiter denies the attempt.
	ErrRateLimited = errors.New("submission rate limit exceeded")
	// ErrSubmitting is returned by transitions attempted while a submission
	// is in flight.
	ErrSubmitting = errors.New("submission in progress")
	// ErrSubmissionFailed wraps the endpoint's failure.
	ErrSubmissionFailed = errors.New("submission failed")
)

// Store persists the serialized draft. Load returns store.ErrNotFound when
// nothing is saved under key.
type Store interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
}

// Endpoint accepts a finished build. It is the hand-off to the external
// recommendation process.
type Endpoint interface {
	Submit(ctx context.Context, build buildform.Build) error
}

// EndpointFunc adapts a function to Endpoint.
type EndpointFunc func(ctx context.Context, build buildform.Build) error

func (f EndpointFunc) Submit(ctx context.Context, build buildform.Build) error {
	return f(ctx, build)
}

// Limiter gates submissions.
type Limiter interface {
	TryAcquire() bool
}

// ChangeFunc observes the draft after every change.
type ChangeFunc func(draft buildform.Draft)

// Options configures a Controller. Nil collaborators fall back to no-ops.
type Options struct {
	Store    Store
	Notifier notify.Sink
	Endpoint Endpoint
	Limiter  Limiter

	// OnComplete is called once per successful submission with the
	// submitted build.
	OnComplete func(buildform.Build)
	// OnScrollTop is called whenever the current step changes.
	OnScrollTop func()

	// DraftKey overrides DefaultDraftKey.
	DraftKey string
	// Steps overrides DefaultSteps.
	Steps []StepDef
}

// Controller is the wizard state machine. It is safe for concurrent use.
type Controller struct {
	mu sync.Mutex
	// hookMu keeps change hooks running in the order the changes happened.
	hookMu sync.Mutex

	store       Store
	notifier    notify.Sink
	endpoint    Endpoint
	limiter     Limiter
	onComplete  func(buildform.Build)
	onScrollTop func()
	key         string
	defs        []StepDef

	draft      buildform.Draft
	errs       validate.Errors
	current    int
	submitting bool

	hooks    map[int]ChangeFunc
	nextHook int
}

// New creates a controller on step 1 with an empty draft and registers the
// persistence hook. Call Initialize to restore a saved draft.
func New(opts Options) *Controller {
	c := &Controller{
		store:       opts.Store,
		notifier:    opts.Notifier,
		endpoint:    opts.Endpoint,
		limiter:     opts.Limiter,
		onComplete:  opts.OnComplete,
		onScrollTop: opts.OnScrollTop,
		key:         opts.DraftKey,
		defs:        opts.Steps,
		current:     1,
		hooks:       make(map[int]ChangeFunc),
	}
	if c.notifier == nil {
		c.notifier = notify.Discard
	}
	if c.endpoint == nil {
		c.endpoint = EndpointFunc(func(context.Context, buildform.Build) error { return nil })
	}
	if c.limiter == nil {
		c.limiter = unlimited{}
	}
	if c.key == "" {
		c.key = DefaultDraftKey
	}
	if len(c.defs) == 0 {
		c.defs = DefaultSteps
	}
	if c.store != nil {
		c.OnChange(c.persist)
	}
	return c
}

type unlimited struct{}

func (unlimited) TryAcquire() bool { return true }

// Initialize restores a saved draft if one exists. A missing or unreadable
// draft leaves the empty draft in place and is only logged.
func (c *Controller) Initialize(ctx context.Context) {
	if c.store == nil {
		return
	}

	data, err := c.store.Load(ctx, c.key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			logger.Debug("No saved draft under %s", c.key)
		} else {
			logger.Warn("Failed to load saved draft: %v", err)
		}
		return
	}

	draft, err := buildform.Unmarshal(data)
	if err != nil {
		logger.Warn("Failed to load saved draft: %v", err)
		return
	}

	c.mu.Lock()
	c.draft = draft
	c.mu.Unlock()

	logger.Info("Restored saved draft from %s", c.key)
	c.notifier.Notify(msgRestored)
}

// UpdateDraft merges partial into the draft and clears the current errors.
// Free text in AdditionalNotes is sanitized on the way in.
func (c *Controller) UpdateDraft(partial buildform.Draft) {
	if partial.AdditionalNotes != nil {
		partial.AdditionalNotes = buildform.Ptr(sanitize.String(*partial.AdditionalNotes))
	}

	c.mu.Lock()
	c.draft = c.draft.Merge(partial)
	c.errs = nil
	c.changedLocked()
}

// Advance validates the current step and moves forward when it passes.
// On failure the returned error is the validate.Errors that blocked it.
// Advancing from the last step is a no-op.
func (c *Controller) Advance() error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitting
	}

	errs, notesChanged := c.validateLocked()
	c.errs = errs
	if len(errs) > 0 {
		c.finishLocked(notesChanged)
		logger.Debug("Step %d failed validation: %v", c.CurrentStep(), errs.Fields())
		c.notifier.Notify(msgAdvanceInvalid)
		return errs
	}

	moved := c.current < len(c.defs)
	if moved {
		c.current++
	}
	c.finishLocked(notesChanged)

	if moved {
		c.scrollTop()
	}
	return nil
}

// Retreat moves back one step without validating.
func (c *Controller) Retreat() error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitting
	}
	if c.current <= 1 {
		c.mu.Unlock()
		return nil
	}
	c.current--
	c.errs = nil
	c.mu.Unlock()

	c.scrollTop()
	return nil
}

// Submit sends the draft to the endpoint. It checks the rate limiter first,
// then validates the current step. The build is captured at call time; edits
// made while the endpoint runs are kept in the draft but not sent.
//
// On success the saved draft is removed, OnComplete runs and the wizard
// starts over with an empty draft on step 1. On failure the draft is kept.
//
// Once the endpoint is called the submission runs to completion; cancelling
// ctx does not abort it.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitting
	}

	if !c.limiter.TryAcquire() {
		c.mu.Unlock()
		logger.Warn("Submission rate limited")
		c.notifier.Notify(msgRateLimited)
		return ErrRateLimited
	}

	errs, notesChanged := c.validateLocked()
	c.errs = errs
	if len(errs) > 0 {
		c.finishLocked(notesChanged)
		c.notifier.Notify(msgSubmitInvalid)
		return errs
	}

	c.submitting = true
	build := buildform.Build(c.draft.Clone())
	c.finishLocked(notesChanged)

	ctx = context.WithoutCancel(ctx)
	logger.Info("Submitting build")
	err := c.endpoint.Submit(ctx, build)

	if err != nil {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()

		logger.Error("Form submission error: %v", err)
		c.notifier.Notify(msgSubmitFailed)
		return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	c.mu.Lock()
	c.submitting = false
	c.draft = buildform.Draft{}
	c.errs = nil
	c.current = 1
	// Saves queued by edits made during the call land before the removal.
	c.hookMu.Lock()
	c.mu.Unlock()
	if c.store != nil {
		if err := c.store.Remove(ctx, c.key); err != nil && !errors.Is(err, store.ErrNotFound) {
			logger.Warn("Failed to clear saved draft: %v", err)
		}
	}
	c.hookMu.Unlock()

	logger.Info("Build submitted")
	c.notifier.Notify(msgSubmitted)
	if c.onComplete != nil {
		c.onComplete(build)
	}

	c.scrollTop()
	return nil
}

// Reset discards the draft, the errors and the saved copy, and returns to
// step 1. Rejected while a submission is in flight.
func (c *Controller) Reset(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitting
	}
	c.draft = buildform.Draft{}
	c.errs = nil
	c.current = 1
	c.mu.Unlock()

	if c.store != nil {
		if err := c.store.Remove(ctx, c.key); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("clearing saved draft: %w", err)
		}
	}
	return nil
}

// OnChange registers fn to run after every draft change and returns a func
// that unregisters it. fn runs outside the controller lock but must not
// change the draft itself.
func (c *Controller) OnChange(fn ChangeFunc) (unregister func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextHook
	c.nextHook++
	c.hooks[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.hooks, id)
	}
}

// Snapshot returns a copy of the draft.
func (c *Controller) Snapshot() buildform.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

// Errors returns the errors of the last validation pass.
func (c *Controller) Errors() validate.Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.errs == nil {
		return nil
	}
	out := make(validate.Errors, len(c.errs))
	copy(out, c.errs)
	return out
}

// CurrentStep returns the 1-based current step.
func (c *Controller) CurrentStep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// TotalSteps returns the number of steps.
func (c *Controller) TotalSteps() int {
	return len(c.defs)
}

// Steps returns the step indicator for the current step.
func (c *Controller) Steps() []Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return DeriveSteps(c.defs, c.current)
}

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Progress returns the completion percentage of the current step.
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ProgressPercent(c.current, len(c.defs))
}

// validateLocked runs the current step's rules against the draft and reports
// whether sanitizing changed the notes.
func (c *Controller) validateLocked() (validate.Errors, bool) {
	before := buildform.Text(c.draft.AdditionalNotes)
	errs := validate.Validate(&c.draft, c.current)
	return errs, buildform.Text(c.draft.AdditionalNotes) != before
}

// finishLocked releases c.mu, firing change hooks first if the draft changed.
func (c *Controller) finishLocked(changed bool) {
	if changed {
		c.changedLocked()
		return
	}
	c.mu.Unlock()
}

// changedLocked snapshots the draft, releases c.mu and runs the change hooks.
func (c *Controller) changedLocked() {
	snapshot := c.draft.Clone()
	hooks := make([]ChangeFunc, 0, len(c.hooks))
	for id := 0; id < c.nextHook; id++ {
		if fn, ok := c.hooks[id]; ok {
			hooks = append(hooks, fn)
		}
	}

	c.hookMu.Lock()
	defer c.hookMu.Unlock()
	c.mu.Unlock()

	for _, fn := range hooks {
		fn(snapshot)
	}
}

func (c *Controller) persist(draft buildform.Draft) {
	data, err := buildform.Marshal(draft)
	if err != nil {
		logger.Warn("Failed to save draft: %v", err)
		return
	}
	if err := c.store.Save(context.Background(), c.key, data); err != nil {
		logger.Warn("Failed to save draft: %v", err)
	}
}

func (c *Controller) scrollTop() {
	if c.onScrollTop != nil {
		c.onScrollTop()
	}
}
