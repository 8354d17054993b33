package domain

import "sort"

// Easing identifies the declared easing mode of a group.
// The timeline currently samples every group with a linear blend;
// the mode is carried and persisted so hosts can opt into curves
// without a storage migration. See pkg/tween for the curve functions.
type Easing string

const (
	EasingLinear       Easing = "linear"
	EasingEaseIn       Easing = "ease-in"
	EasingEaseOut      Easing = "ease-out"
	EasingEaseInAndOut Easing = "ease-in-and-out"
)

// Valid reports whether e is one of the declared easing modes.
func (e Easing) Valid() bool {
	switch e {
	case EasingLinear, EasingEaseIn, EasingEaseOut, EasingEaseInAndOut:
		return true
	}
	return false
}

// AnimationGroup binds a set of layer names to one keyframe timeline.
//
// Membership is a name match, not an id match: every scene object whose
// name appears in LayerNames is treated as one animated entity. Keyframes
// must be sorted by Time ascending before interpolation; duplicate times
// are undefined behavior and are not deduplicated here.
type AnimationGroup struct {
	ID         string     `json:"id" yaml:"id"`
	LayerNames []string   `json:"layerNames" yaml:"layerNames"`
	Keyframes  []Keyframe `json:"keyframes" yaml:"keyframes"`
	Easing     Easing     `json:"easing" yaml:"easing"`
}

// NewAnimationGroup creates an empty group with linear easing.
func NewAnimationGroup(id string, layerNames ...string) *AnimationGroup {
	return &AnimationGroup{
		ID:         id,
		LayerNames: layerNames,
		Keyframes:  []Keyframe{},
		Easing:     EasingLinear,
	}
}

// SortKeyframes orders the keyframes by time ascending (stable, so the
// relative order of duplicate times is at least deterministic).
func (g *AnimationGroup) SortKeyframes() {
	sort.SliceStable(g.Keyframes, func(i, j int) bool {
		return g.Keyframes[i].Time < g.Keyframes[j].Time
	})
}

// ReplaceKeyframe swaps the properties of the keyframe with the given id,
// producing a new keyframe slice. An unknown id leaves the list unchanged;
// no error is signaled.
func (g *AnimationGroup) ReplaceKeyframe(keyframeID string, props KeyframeProperties) {
	next := make([]Keyframe, len(g.Keyframes))
	for i, kf := range g.Keyframes {
		if kf.ID == keyframeID {
			kf.Properties = props
		}
		next[i] = kf
	}
	g.Keyframes = next
}

// Keyframe returns the keyframe with the given id, or false.
func (g *AnimationGroup) Keyframe(keyframeID string) (Keyframe, bool) {
	for _, kf := range g.Keyframes {
		if kf.ID == keyframeID {
			return kf, true
		}
	}
	return Keyframe{}, false
}

// Duration returns the time of the last keyframe, assuming sorted order.
// An empty group has duration 0.
func (g *AnimationGroup) Duration() float64 {
	if len(g.Keyframes) == 0 {
		return 0
	}
	return g.Keyframes[len(g.Keyframes)-1].Time
}
