// Package playback drives the preview clock: it advances the playhead on
// every tick, requests interpolated property application, and stops when a
// bounded duration elapses.
package playback

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/motif/internal/logging"
	"github.com/aretw0/motif/pkg/ports"
)

// State is the scheduler's lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StatePlaying State = "playing"
)

// Applier applies interpolated properties for the given playhead time.
// The scheduler awaits it to completion within the tick: ticks never
// overlap, even when application involves storage round-trips.
type Applier interface {
	ApplyAt(ctx context.Context, t float64) error
}

// ApplierFunc adapts a function to the Applier interface.
type ApplierFunc func(ctx context.Context, t float64) error

// ApplyAt calls f.
func (f ApplierFunc) ApplyAt(ctx context.Context, t float64) error {
	return f(ctx, t)
}

// DefaultFrameInterval approximates the host's per-frame callback cadence.
const DefaultFrameInterval = time.Second / 60

// Scheduler is the playback state machine: Idle -> Playing -> Idle.
//
// Play records a virtual start reference (now minus the current playhead),
// so resuming from a paused position continues where it left off. The
// auto-stop path resets the playhead to zero; a manual Stop retains it.
// Starting Play while already playing first invalidates the running loop:
// two concurrent loops driving the same scene is a correctness bug, not a
// performance concern.
type Scheduler struct {
	applier       Applier
	clock         ports.Clock
	frameInterval time.Duration
	logger        *slog.Logger

	mu          sync.Mutex
	state       State
	currentTime float64
	generation  uint64
	cancel      context.CancelFunc
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock swaps the time source (used by tests for virtual time).
func WithClock(clock ports.Clock) Option {
	return func(s *Scheduler) {
		s.clock = clock
	}
}

// WithFrameInterval sets the tick cadence.
func WithFrameInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.frameInterval = d
		}
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// New creates an idle scheduler driving the given applier.
func New(applier Applier, opts ...Option) *Scheduler {
	s := &Scheduler{
		applier:       applier,
		clock:         systemClock{},
		frameInterval: DefaultFrameInterval,
		logger:        logging.NewNop(),
		state:         StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentTime returns the playhead position in seconds.
func (s *Scheduler) CurrentTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTime
}

// Seek moves the playhead while idle. Seeking during playback is ignored;
// the running loop owns the playhead.
func (s *Scheduler) Seek(t float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateIdle && t >= 0 {
		s.currentTime = t
	}
}

// Play transitions Idle -> Playing and starts the tick loop for the given
// duration (seconds). A loop already in flight is invalidated first.
func (s *Scheduler) Play(ctx context.Context, duration float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.generation++
	gen := s.generation

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = StatePlaying

	startRef := s.clock.Now().Add(-secondsToDuration(s.currentTime))
	s.logger.Debug("playback started", "duration", duration, "from", s.currentTime)

	go s.loop(loopCtx, gen, startRef, duration)
}

// Stop transitions Playing -> Idle, retaining the playhead at its last
// value. Stopping an idle scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.state == StatePlaying {
		s.state = StateIdle
		s.logger.Debug("playback stopped", "at", s.currentTime)
	}
}

func (s *Scheduler) loop(ctx context.Context, gen uint64, startRef time.Time, duration float64) {
	ticker := s.clock.NewTicker(s.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Invalidated: no further side effects.
			return
		case <-ticker.C():
		}

		// A canceled tick that raced the ticker channel must not apply.
		if ctx.Err() != nil {
			return
		}

		elapsed := s.clock.Now().Sub(startRef).Seconds()

		if elapsed >= duration {
			s.finish(gen)
			return
		}

		if !s.advance(gen, elapsed) {
			return
		}

		if err := s.applier.ApplyAt(ctx, elapsed); err != nil {
			s.logger.Warn("tick application failed", "err", err, "at", elapsed)
		}
	}
}

// advance publishes the playhead for this tick; returns false when the
// loop generation went stale.
func (s *Scheduler) advance(gen uint64, elapsed float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.currentTime = elapsed
	return true
}

// finish is the auto-stop path: playhead resets to zero.
func (s *Scheduler) finish(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.currentTime = 0
	s.state = StateIdle
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.logger.Debug("playback finished")
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
