package dsl

import (
	"fmt"

	"github.com/aretw0/motif/pkg/domain"
)

// Builder manages timeline construction.
type Builder struct {
	groups map[string]*GroupBuilder
	order  []string
}

// New creates a new timeline builder.
func New() *Builder {
	return &Builder{
		groups: make(map[string]*GroupBuilder),
	}
}

// Group creates a new animation group in the timeline.
// If the group already exists, it returns the existing builder.
func (b *Builder) Group(id string) *GroupBuilder {
	if gb, ok := b.groups[id]; ok {
		return gb
	}
	gb := &GroupBuilder{
		group: domain.AnimationGroup{
			ID:     id,
			Easing: domain.EasingLinear,
		},
		builder: b,
	}
	b.groups[id] = gb
	b.order = append(b.order, id)
	return gb
}

// Build compiles the timeline into animation groups, in declaration order.
// Keyframes come out sorted by time.
func (b *Builder) Build() ([]*domain.AnimationGroup, error) {
	groups := make([]*domain.AnimationGroup, 0, len(b.order))
	for _, id := range b.order {
		group, err := b.groups[id].Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build group %s: %w", id, err)
		}
		groups = append(groups, group)
	}
	return groups, nil
}
