// Package viewport classifies the live display size as compact or regular.
//
// A Classifier reads the size from a Host, listens for its resize
// notifications and recomputes once the resizes have been quiet for the
// debounce delay. When the host has no viewport at all (a pipe instead of a
// terminal, a renderer that has not reported a size yet) the classification
// is false.
package viewport

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Dicklesworthstone/compactview/pkg/debounce"
)

// Host is the environment a Classifier observes.
type Host interface {
	// Snapshot returns the current size. ok is false when the host has no
	// viewport.
	Snapshot() (s Snapshot, ok bool)
	// Subscribe registers fn to be called on every resize and returns a
	// function that removes the registration.
	Subscribe(fn func()) (unsubscribe func())
}

// Option configures a Classifier.
type Option func(*settings)

type settings struct {
	threshold int
	delay     time.Duration
	mode      Mode
	clock     debounce.Clock
	logger    *zap.Logger
}

// WithThreshold sets the compact threshold. Zero and negative values are
// accepted as is.
func WithThreshold(threshold int) Option {
	return func(s *settings) { s.threshold = threshold }
}

// WithDebounce sets the quiet period before a resize is applied.
func WithDebounce(d time.Duration) Option {
	return func(s *settings) { s.delay = d }
}

// WithOrientation switches to ModeOrientation when on is true.
func WithOrientation(on bool) Option {
	return func(s *settings) {
		if on {
			s.mode = ModeOrientation
		} else {
			s.mode = ModeWidth
		}
	}
}

// WithClock replaces the timer source, mainly for tests.
func WithClock(c debounce.Clock) Option {
	return func(s *settings) { s.clock = c }
}

// WithLogger makes the classifier log recomputations at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// Classifier tracks whether the host's viewport is compact.
type Classifier struct {
	host      Host
	threshold int
	mode      Mode
	debouncer *debounce.Debouncer
	logger    *zap.Logger

	unsubscribe func()
	closeOnce   sync.Once

	// notifyMu is held while callbacks run so Close can wait them out.
	notifyMu sync.Mutex

	mu          sync.Mutex
	compact     bool
	snapshot    Snapshot
	hasSnapshot bool
	closed      bool
	stopScope   func() bool
	recomputes  uint64
	nextSubID   int
	subscribers map[int]subscriber
}

type subscriber struct {
	fn func(compact bool)
	// every is set for OnRecompute registrations.
	every bool
}

// New creates a Classifier and registers it with h. The initial value is
// computed from h's current snapshot, or false when h has none. Callers must
// Close the classifier to release the registration.
func New(h Host, opts ...Option) *Classifier {
	cfg := settings{
		threshold: DefaultThreshold,
		delay:     DefaultDebounceDelay,
		mode:      ModeWidth,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Classifier{
		host:        h,
		threshold:   cfg.threshold,
		mode:        cfg.mode,
		debouncer:   debounce.NewDebouncer(cfg.delay, cfg.clock),
		logger:      cfg.logger,
		subscribers: make(map[int]subscriber),
	}

	// Subscribe before reading the size so a resize in between arms the
	// timer instead of going unnoticed.
	c.unsubscribe = h.Subscribe(c.handleResize)

	s, ok := h.Snapshot()
	c.mu.Lock()
	// A zero-delay recompute may already have stored a newer snapshot.
	if ok && !c.hasSnapshot {
		c.snapshot = s
		c.hasSnapshot = true
		c.compact = Classify(s, c.threshold, c.mode)
	}
	hasViewport, compact := c.hasSnapshot, c.compact
	c.mu.Unlock()

	c.logger.Debug("viewport classifier created",
		zap.Int("threshold", c.threshold),
		zap.Duration("debounce", c.debouncer.Duration()),
		zap.Stringer("mode", c.mode),
		zap.Bool("has_viewport", hasViewport),
		zap.Bool("compact", compact))

	return c
}

// NewScoped is New with the classifier closed when ctx is done.
func NewScoped(ctx context.Context, h Host, opts ...Option) *Classifier {
	c := New(h, opts...)
	stop := context.AfterFunc(ctx, c.Close)
	c.mu.Lock()
	c.stopScope = stop
	c.mu.Unlock()
	return c
}

func (c *Classifier) handleResize() {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}
	c.debouncer.Trigger(c.recompute)
}

// recompute runs when the debounce window settles. The snapshot is read now,
// not at the time of the resize that armed the timer.
func (c *Classifier) recompute() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	s, ok := c.host.Snapshot()
	if !ok {
		c.mu.Unlock()
		c.logger.Debug("viewport unavailable at recompute, keeping classification")
		return
	}

	c.recomputes++
	prev := c.compact
	c.snapshot = s
	c.hasSnapshot = true
	c.compact = Classify(s, c.threshold, c.mode)
	compact := c.compact

	changed := compact != prev

	var notify []func(bool)
	for _, sub := range c.subscribers {
		if changed || sub.every {
			notify = append(notify, sub.fn)
		}
	}
	c.mu.Unlock()

	c.logger.Debug("viewport recomputed",
		zap.Int("width", s.Width),
		zap.Int("height", s.Height),
		zap.Bool("compact", compact),
		zap.Bool("changed", changed))

	if len(notify) == 0 {
		return
	}

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}
	for _, fn := range notify {
		fn(compact)
	}
}

// Compact returns the current classification.
func (c *Classifier) Compact() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compact
}

// Snapshot returns the size the current classification was computed from.
func (c *Classifier) Snapshot() (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot, c.hasSnapshot
}

// OnChange registers fn to be called with the new value whenever a
// recomputation flips the classification. fn runs outside the classifier's
// lock, on whichever goroutine fired the debounce timer. fn must not call
// Close.
func (c *Classifier) OnChange(fn func(compact bool)) (cancel func()) {
	return c.register(subscriber{fn: fn})
}

// OnRecompute is like OnChange but fn runs after every recomputation, also
// when the classification stayed the same.
func (c *Classifier) OnRecompute(fn func(compact bool)) (cancel func()) {
	return c.register(subscriber{fn: fn, every: true})
}

func (c *Classifier) register(sub subscriber) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = sub

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers, id)
			c.mu.Unlock()
		})
	}
}

// Armed reports whether a recomputation is waiting for its debounce window.
func (c *Classifier) Armed() bool {
	return c.debouncer.Pending()
}

// Recomputations returns how many times the debounce timer has fired and
// produced a new classification.
func (c *Classifier) Recomputations() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recomputes
}

func (c *Classifier) Threshold() int { return c.threshold }

func (c *Classifier) Delay() time.Duration { return c.debouncer.Duration() }

func (c *Classifier) Mode() Mode { return c.mode }

// Close deregisters from the host and drops any pending recomputation. The
// classification stays frozen at its last value. Close waits for callbacks
// that are already running, so none runs after it returns. Close is safe to
// call more than once.
func (c *Classifier) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.subscribers = make(map[int]subscriber)
		stopScope := c.stopScope
		c.mu.Unlock()

		c.notifyMu.Lock()
		c.notifyMu.Unlock() //nolint:staticcheck // waits for running callbacks

		if c.unsubscribe != nil {
			c.unsubscribe()
		}
		c.debouncer.Cancel()
		if stopScope != nil {
			stopScope()
		}
		c.logger.Debug("viewport classifier closed")
	})
}
