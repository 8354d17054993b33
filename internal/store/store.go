// Package store implements the animation group store: the exclusive owner
// of AnimationGroups, layered on the host's key-value storage collaborator.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/motif/internal/logging"
	"github.com/aretw0/motif/pkg/domain"
	"github.com/aretw0/motif/pkg/ports"
)

// KeyPrefix namespaces group entries in the key-value space.
// One entry per group, no separate keyframe storage.
const KeyPrefix = "animation-group-"

// Key returns the storage key for a group id.
func Key(groupID string) string {
	return KeyPrefix + groupID
}

// GroupStore persists AnimationGroups through a ports.KVStore.
//
// Every mutating operation performs a full round-trip to storage, and
// ListAll re-reads every persisted group: there is no in-memory index the
// host could consult instead of storage during preview. Storage is assumed
// single-writer (the host); concurrent external edits are undefined.
type GroupStore struct {
	kv     ports.KVStore
	logger *slog.Logger
}

// Option configures a GroupStore.
type Option func(*GroupStore)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *GroupStore) {
		s.logger = logger
	}
}

// New creates a GroupStore over the given key-value storage.
func New(kv ports.KVStore, opts ...Option) *GroupStore {
	s := &GroupStore{
		kv:     kv,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create inserts a new group and persists it under its key.
//
// Group ids are caller responsibility: no uniqueness check is performed, so
// a colliding id overwrites the previous entry.
func (s *GroupStore) Create(ctx context.Context, group *domain.AnimationGroup) error {
	if err := s.save(ctx, group); err != nil {
		return fmt.Errorf("failed to create group %s: %w", group.ID, err)
	}
	s.logger.Debug("group created", "group_id", group.ID, "layers", len(group.LayerNames))
	return nil
}

// Get loads one group by id.
// Returns domain.ErrGroupNotFound if no entry exists.
func (s *GroupStore) Get(ctx context.Context, groupID string) (*domain.AnimationGroup, error) {
	data, err := s.kv.Get(ctx, Key(groupID))
	if err != nil {
		if err == domain.ErrKeyNotFound {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to load group %s: %w", groupID, err)
	}

	var group domain.AnimationGroup
	if err := json.Unmarshal(data, &group); err != nil {
		return nil, fmt.Errorf("failed to unmarshal group %s: %w", groupID, err)
	}
	return &group, nil
}

// UpdateKeyframe replaces the properties of one keyframe (matched by id)
// and persists the updated group. An unknown keyframe id leaves the group
// unchanged and is still persisted: a silent no-op, not an error.
func (s *GroupStore) UpdateKeyframe(ctx context.Context, groupID, keyframeID string, props domain.KeyframeProperties) (*domain.AnimationGroup, error) {
	group, err := s.Get(ctx, groupID)
	if err != nil {
		return nil, err
	}

	group.ReplaceKeyframe(keyframeID, props)

	if err := s.save(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group %s: %w", groupID, err)
	}
	return group, nil
}

// ListAll enumerates every persisted group by scanning keys with the group
// prefix and loading each entry. Playback scans groups through this path on
// every preview request.
func (s *GroupStore) ListAll(ctx context.Context) ([]*domain.AnimationGroup, error) {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage keys: %w", err)
	}

	groups := make([]*domain.AnimationGroup, 0, len(keys))
	for _, key := range keys {
		if !strings.HasPrefix(key, KeyPrefix) {
			continue
		}
		group, err := s.Get(ctx, strings.TrimPrefix(key, KeyPrefix))
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// Delete removes a group. Deleting a missing group is not an error.
func (s *GroupStore) Delete(ctx context.Context, groupID string) error {
	if err := s.kv.Delete(ctx, Key(groupID)); err != nil {
		return fmt.Errorf("failed to delete group %s: %w", groupID, err)
	}
	return nil
}

func (s *GroupStore) save(ctx context.Context, group *domain.AnimationGroup) error {
	data, err := json.Marshal(group)
	if err != nil {
		return fmt.Errorf("failed to marshal group: %w", err)
	}
	if err := s.kv.Set(ctx, Key(group.ID), data); err != nil {
		return fmt.Errorf("failed to persist group: %w", err)
	}
	return nil
}
