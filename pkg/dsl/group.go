package dsl

import (
	"fmt"

	"github.com/aretw0/motif/pkg/domain"
)

// GroupBuilder provides a fluent API for configuring an animation group.
type GroupBuilder struct {
	group     domain.AnimationGroup
	keyframes []*domain.Keyframe
	builder   *Builder
}

// Layers names the layers the group animates.
func (g *GroupBuilder) Layers(names ...string) *GroupBuilder {
	g.group.LayerNames = append(g.group.LayerNames, names...)
	return g
}

// Easing sets the group's declared easing curve.
func (g *GroupBuilder) Easing(easing domain.Easing) *GroupBuilder {
	g.group.Easing = easing
	return g
}

// Key starts a keyframe at the given time. Property setters on the
// returned builder fill it in; fields left unset stay nil and are not
// animated.
func (g *GroupBuilder) Key(id string, t float64) *KeyframeBuilder {
	kf := &domain.Keyframe{ID: id, Time: t}
	g.keyframes = append(g.keyframes, kf)
	return &KeyframeBuilder{keyframe: kf, group: g}
}

// Build returns the underlying animation group with keyframes sorted by
// time. It fails on an invalid easing name or a duplicate keyframe id.
func (g *GroupBuilder) Build() (*domain.AnimationGroup, error) {
	if !g.group.Easing.Valid() {
		return nil, fmt.Errorf("unknown easing %q", g.group.Easing)
	}

	seen := make(map[string]bool, len(g.keyframes))
	group := g.group
	group.Keyframes = make([]domain.Keyframe, 0, len(g.keyframes))
	for _, kf := range g.keyframes {
		if seen[kf.ID] {
			return nil, fmt.Errorf("duplicate keyframe id %q", kf.ID)
		}
		seen[kf.ID] = true
		group.Keyframes = append(group.Keyframes, *kf)
	}
	group.SortKeyframes()
	return &group, nil
}

// KeyframeBuilder provides a fluent API for one keyframe's properties.
type KeyframeBuilder struct {
	keyframe *domain.Keyframe
	group    *GroupBuilder
}

// Layer attributes the keyframe to a scene object id.
func (k *KeyframeBuilder) Layer(layerID string) *KeyframeBuilder {
	k.keyframe.LayerID = layerID
	return k
}

// Opacity pins the opacity at this keyframe.
func (k *KeyframeBuilder) Opacity(v float64) *KeyframeBuilder {
	k.keyframe.Properties.Opacity = domain.Float(v)
	return k
}

// MoveTo pins both coordinates at this keyframe.
func (k *KeyframeBuilder) MoveTo(x, y float64) *KeyframeBuilder {
	k.keyframe.Properties.X = domain.Float(x)
	k.keyframe.Properties.Y = domain.Float(y)
	return k
}

// Scale pins the scale factor at this keyframe.
func (k *KeyframeBuilder) Scale(v float64) *KeyframeBuilder {
	k.keyframe.Properties.Scale = domain.Float(v)
	return k
}

// Rotate pins the rotation (degrees) at this keyframe.
func (k *KeyframeBuilder) Rotate(deg float64) *KeyframeBuilder {
	k.keyframe.Properties.Rotation = domain.Float(deg)
	return k
}

// Defaults fills the keyframe with the standard full property set.
func (k *KeyframeBuilder) Defaults() *KeyframeBuilder {
	k.keyframe.Properties = domain.DefaultProperties()
	return k
}

// Key starts a sibling keyframe in the same group.
func (k *KeyframeBuilder) Key(id string, t float64) *KeyframeBuilder {
	return k.group.Key(id, t)
}

// Done returns to the group builder.
func (k *KeyframeBuilder) Done() *GroupBuilder {
	return k.group
}
