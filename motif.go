package motif

import (
	"context"
	"log/slog"

	"github.com/aretw0/motif/internal/logging"
	"github.com/aretw0/motif/internal/observability"
	"github.com/aretw0/motif/internal/playback"
	"github.com/aretw0/motif/internal/protocol"
	"github.com/aretw0/motif/internal/store"
	"github.com/aretw0/motif/pkg/adapters/memory"
	"github.com/aretw0/motif/pkg/domain"
	"github.com/aretw0/motif/pkg/ports"
)

// Version is the module version. Release builds override it with
// -ldflags "-X github.com/aretw0/motif.Version=...".
var Version = "0.1.0"

// Engine is the high-level entry point for the Motif library.
// It wraps the protocol host and provides a simplified API for consumers
// that embed the animation engine directly instead of speaking the
// message protocol over a transport.
type Engine struct {
	host     *protocol.Host
	kv       ports.KVStore
	scene    ports.Scene
	notifier ports.Notifier
	metrics  *observability.Metrics
	logger   *slog.Logger
	hostOpts []protocol.HostOption
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore injects a key-value backend for animation groups, bypassing
// the default in-memory store.
func WithStore(kv ports.KVStore) Option {
	return func(e *Engine) {
		e.kv = kv
	}
}

// WithNotifier registers the channel user-facing notifications go to.
func WithNotifier(n ports.Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics sets the metric sink.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithPlayback forwards options to the playback scheduler (frame
// cadence, virtual clock in tests).
func WithPlayback(opts ...playback.Option) Option {
	return func(e *Engine) {
		e.hostOpts = append(e.hostOpts, protocol.WithPlayback(opts...))
	}
}

// New initializes a Motif Engine over the given scene.
// By default animation groups live in process memory; inject a
// persistent backend with WithStore.
func New(sceneGraph ports.Scene, opts ...Option) (*Engine, error) {
	eng := &Engine{scene: sceneGraph}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.kv == nil {
		eng.kv = memory.NewStore()
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	groups := store.New(eng.kv, store.WithLogger(eng.logger))

	hostOpts := []protocol.HostOption{
		protocol.WithLogger(eng.logger),
	}
	if eng.notifier != nil {
		hostOpts = append(hostOpts, protocol.WithNotifier(eng.notifier))
	}
	if eng.metrics != nil {
		hostOpts = append(hostOpts, protocol.WithMetrics(eng.metrics))
	}
	hostOpts = append(hostOpts, eng.hostOpts...)

	eng.host = protocol.NewHost(groups, sceneGraph, hostOpts...)
	return eng, nil
}

// Handle processes one protocol message envelope. The returned value is
// non-nil only for message types that answer with an event.
func (e *Engine) Handle(ctx context.Context, env protocol.Envelope) (any, error) {
	return e.host.Handle(ctx, env)
}

// Frames returns the scene snapshot the load-frames message would carry.
func (e *Engine) Frames(ctx context.Context) ([]domain.Frame, error) {
	event, err := e.host.Handle(ctx, protocol.Envelope{"type": string(protocol.MsgLoadFrames)})
	if err != nil {
		return nil, err
	}
	return event.(*protocol.FramesLoadedEvent).Frames, nil
}

// Preview applies every stored group at the given time without starting
// playback, and moves the playhead there.
func (e *Engine) Preview(ctx context.Context, at float64) error {
	_, err := e.host.Handle(ctx, protocol.Envelope{
		"type":        string(protocol.MsgPreview),
		"previewTime": at,
	})
	return err
}

// Play starts timed playback from the current playhead. A non-positive
// duration plays to the end of the longest stored group.
func (e *Engine) Play(ctx context.Context, duration float64) error {
	_, err := e.host.Handle(ctx, protocol.Envelope{
		"type":     string(protocol.MsgPlay),
		"duration": duration,
	})
	return err
}

// Stop halts playback, leaving the playhead where it stopped.
func (e *Engine) Stop(ctx context.Context) error {
	_, err := e.host.Handle(ctx, protocol.Envelope{"type": string(protocol.MsgStop)})
	return err
}

// Host exposes the underlying protocol host for transports (HTTP, MCP).
func (e *Engine) Host() *protocol.Host {
	return e.host
}

// Groups exposes the animation group store.
func (e *Engine) Groups() *store.GroupStore {
	return e.host.Groups()
}

// Scheduler exposes the playback scheduler for state inspection.
func (e *Engine) Scheduler() *playback.Scheduler {
	return e.host.Scheduler()
}
