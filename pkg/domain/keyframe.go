package domain

// KeyframeProperties holds the animatable fields of a scene object.
// Every field is optional: a nil field is neither animated nor defaulted
// for the keyframe pair it belongs to.
type KeyframeProperties struct {
	// Opacity is typically within [0,1].
	Opacity *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`

	// X and Y are unbounded coordinates in host units.
	X *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y *float64 `json:"y,omitempty" yaml:"y,omitempty"`

	// Scale is a scalar factor, typically >= 0.
	Scale *float64 `json:"scale,omitempty" yaml:"scale,omitempty"`

	// Rotation is in degrees, unbounded.
	Rotation *float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
}

// Float returns a pointer to v. Convenience for building properties literals.
func Float(v float64) *float64 {
	return &v
}

// DefaultProperties returns the property set assigned to a freshly created
// keyframe: fully opaque, at the origin, unscaled, unrotated.
func DefaultProperties() KeyframeProperties {
	return KeyframeProperties{
		Opacity:  Float(1),
		X:        Float(0),
		Y:        Float(0),
		Scale:    Float(1),
		Rotation: Float(0),
	}
}

// IsZero reports whether no field is set at all.
func (p KeyframeProperties) IsZero() bool {
	return p.Opacity == nil && p.X == nil && p.Y == nil && p.Scale == nil && p.Rotation == nil
}

// Keyframe is a timestamped property snapshot within an AnimationGroup.
// Time is expressed in seconds relative to the group's timeline origin and
// never moves after creation; edits only change Properties.
type Keyframe struct {
	ID         string             `json:"id" yaml:"id"`
	LayerID    string             `json:"layerId" yaml:"layerId"`
	Time       float64            `json:"time" yaml:"time"`
	Properties KeyframeProperties `json:"properties" yaml:"properties"`
}

// NewKeyframe creates a keyframe at the given time with default properties.
func NewKeyframe(id, layerID string, time float64) Keyframe {
	return Keyframe{
		ID:         id,
		LayerID:    layerID,
		Time:       time,
		Properties: DefaultProperties(),
	}
}
