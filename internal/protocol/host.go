package protocol

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/motif/internal/logging"
	"github.com/aretw0/motif/internal/observability"
	"github.com/aretw0/motif/internal/playback"
	"github.com/aretw0/motif/internal/scene"
	"github.com/aretw0/motif/internal/store"
	"github.com/aretw0/motif/pkg/domain"
	"github.com/aretw0/motif/pkg/ports"
	"github.com/aretw0/motif/pkg/tween"
)

// Host owns the scene and the storage side of the protocol boundary. It
// processes messages strictly sequentially; the only concurrency in the
// system is the playback loop, which funnels back through ApplyAt.
type Host struct {
	groups    *store.GroupStore
	scene     ports.Scene
	scheduler *playback.Scheduler
	notifier  ports.Notifier
	logger    *slog.Logger
	metrics   *observability.Metrics

	playbackOpts []playback.Option

	// mu serializes all host work: message handling and playback ticks.
	mu sync.Mutex
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithNotifier sets the user-facing notification channel.
func WithNotifier(n ports.Notifier) HostOption {
	return func(h *Host) {
		h.notifier = n
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) HostOption {
	return func(h *Host) {
		h.logger = logger
	}
}

// WithMetrics sets the metric sink.
func WithMetrics(m *observability.Metrics) HostOption {
	return func(h *Host) {
		h.metrics = m
	}
}

// WithPlayback forwards options to the playback scheduler (frame cadence,
// virtual clock in tests).
func WithPlayback(opts ...playback.Option) HostOption {
	return func(h *Host) {
		h.playbackOpts = append(h.playbackOpts, opts...)
	}
}

// NewHost wires a host over its two collaborators.
func NewHost(groups *store.GroupStore, sceneGraph ports.Scene, opts ...HostOption) *Host {
	h := &Host{
		groups:   groups,
		scene:    sceneGraph,
		notifier: ports.NotifierFunc(func(context.Context, domain.Notification) {}),
		logger:   logging.NewNop(),
		metrics:  observability.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	playbackOpts := append([]playback.Option{playback.WithLogger(h.logger)}, h.playbackOpts...)
	h.scheduler = playback.New(playback.ApplierFunc(h.ApplyAt), playbackOpts...)
	return h
}

// Scheduler exposes the playback scheduler (CLI and tests).
func (h *Host) Scheduler() *playback.Scheduler {
	return h.scheduler
}

// Groups exposes the group store (CLI introspection).
func (h *Host) Groups() *store.GroupStore {
	return h.groups
}

// Handle processes one protocol message. The returned envelope is non-nil
// only for message types that answer with an event (load-frames). Errors
// are also pushed to the notification channel; mutating commands stay
// fire-and-forget for the surface either way.
func (h *Host) Handle(ctx context.Context, env Envelope) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	msgType := env.Type()
	event, err := h.dispatch(ctx, msgType, env)
	h.metrics.ObserveMessage(string(msgType), err)
	if err != nil {
		h.logger.Warn("message failed", "type", msgType, "err", err)
		h.notifyError(ctx, err)
	}
	return event, err
}

func (h *Host) dispatch(ctx context.Context, msgType MessageType, env Envelope) (any, error) {
	switch msgType {
	case MsgLoadFrames:
		return h.handleLoadFrames(ctx)
	case MsgCreateGroup:
		return nil, h.handleCreateGroup(ctx, env)
	case MsgUpdateKeyframe:
		return nil, h.handleUpdateKeyframe(ctx, env)
	case MsgPreview:
		return nil, h.handlePreview(ctx, env)
	case MsgPlay:
		return nil, h.handlePlay(ctx, env)
	case MsgStop:
		h.scheduler.Stop()
		return nil, nil
	case MsgExport:
		return nil, fmt.Errorf("animation export: %w", domain.ErrUnsupported)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMessage, msgType)
	}
}

func (h *Host) handleLoadFrames(ctx context.Context) (*FramesLoadedEvent, error) {
	frames, err := h.scene.Frames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene frames: %w", err)
	}
	return &FramesLoadedEvent{
		Type:   MsgFramesLoaded,
		Frames: scene.Describe(frames),
	}, nil
}

func (h *Host) handleCreateGroup(ctx context.Context, env Envelope) error {
	var cmd CreateGroupCommand
	if err := decode(env, &cmd); err != nil {
		return err
	}

	group := cmd.AnimationGroup
	group.SortKeyframes()

	h.metrics.StorageOpsTotal.WithLabelValues("set").Inc()
	if err := h.groups.Create(ctx, &group); err != nil {
		return err
	}

	frames, err := h.scene.Frames(ctx)
	if err != nil {
		return fmt.Errorf("failed to read scene frames: %w", err)
	}
	matched := scene.ResolveGroup(&group, frames)

	h.notify(ctx, domain.NotifyInfo,
		fmt.Sprintf("Created animation group for %d layers", len(matched)))
	return nil
}

func (h *Host) handleUpdateKeyframe(ctx context.Context, env Envelope) error {
	var cmd UpdateKeyframeCommand
	if err := decode(env, &cmd); err != nil {
		return err
	}

	h.metrics.StorageOpsTotal.WithLabelValues("update").Inc()
	group, err := h.groups.UpdateKeyframe(ctx, cmd.AnimationGroup.ID, cmd.Keyframe.ID, cmd.Keyframe.Properties)
	if err != nil {
		return err
	}

	// The edit is reflected on the live scene immediately, without waiting
	// for a preview pass.
	frames, err := h.scene.Frames(ctx)
	if err != nil {
		return fmt.Errorf("failed to read scene frames: %w", err)
	}
	scene.ApplyAll(scene.ResolveGroup(group, frames), cmd.Keyframe.Properties)
	return nil
}

func (h *Host) handlePreview(ctx context.Context, env Envelope) error {
	var cmd PreviewCommand
	if err := decode(env, &cmd); err != nil {
		return err
	}
	h.scheduler.Seek(cmd.PreviewTime)
	return h.applyAt(ctx, cmd.PreviewTime)
}

func (h *Host) handlePlay(ctx context.Context, env Envelope) error {
	var cmd PlayCommand
	if err := decode(env, &cmd); err != nil {
		return err
	}

	duration := cmd.Duration
	if duration <= 0 {
		groups, err := h.listGroups(ctx)
		if err != nil {
			return err
		}
		for _, g := range groups {
			if d := g.Duration(); d > duration {
				duration = d
			}
		}
	}
	if duration <= 0 {
		h.notify(ctx, domain.NotifyInfo, "Nothing to play: no keyframes")
		return nil
	}

	h.scheduler.Play(context.WithoutCancel(ctx), duration)
	return nil
}

// ApplyAt runs one interpolation pass: every persisted group is re-read
// from storage, sampled at time t, and the result applied to all resolved
// scene objects. Groups with no active keyframe pair at t apply nothing.
// It serializes against message handling, so playback ticks and commands
// never interleave mid-pass.
func (h *Host) ApplyAt(ctx context.Context, t float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.applyAt(ctx, t)
}

func (h *Host) applyAt(ctx context.Context, t float64) error {
	h.metrics.TicksTotal.Inc()
	h.metrics.Playhead.Set(t)

	groups, err := h.listGroups(ctx)
	if err != nil {
		return err
	}

	frames, err := h.scene.Frames(ctx)
	if err != nil {
		return fmt.Errorf("failed to read scene frames: %w", err)
	}

	for _, group := range groups {
		group.SortKeyframes()
		props, ok := tween.Sample(group.Keyframes, t)
		if !ok {
			continue
		}
		scene.ApplyAll(scene.ResolveGroup(group, frames), props)
	}
	return nil
}

func (h *Host) listGroups(ctx context.Context) ([]*domain.AnimationGroup, error) {
	h.metrics.StorageOpsTotal.WithLabelValues("scan").Inc()
	groups, err := h.groups.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan animation groups: %w", err)
	}
	return groups, nil
}

func (h *Host) notify(ctx context.Context, level domain.NotificationLevel, msg string) {
	h.notifier.Notify(ctx, domain.Notification{
		Level:     level,
		Message:   msg,
		Timestamp: time.Now(),
	})
}

func (h *Host) notifyError(ctx context.Context, err error) {
	h.notify(ctx, domain.NotifyError, err.Error())
}
