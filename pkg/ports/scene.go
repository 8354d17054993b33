package ports

import "context"

// SceneObject is one node in the host's live object tree.
//
// The base interface carries only identity and structure. Everything else
// is a capability: a setter or reader interface the object may or may not
// implement, asserted dynamically per call. Hosts expose many object
// variants, so callers must never assume a fixed node taxonomy.
type SceneObject interface {
	ID() string
	Name() string
	Kind() string

	// Children returns the contained objects, or nil for leaf objects.
	Children() []SceneObject
}

// OpacityWriter is the opacity capability.
type OpacityWriter interface {
	Opacity() float64
	SetOpacity(v float64)
}

// Mover is the positional capability (x/y).
type Mover interface {
	Position() (x, y float64)
	MoveTo(x, y float64)
}

// Rotator is the rotation capability, in degrees.
type Rotator interface {
	Rotation() float64
	RotateTo(degrees float64)
}

// Rescaler is the rescale capability: a single scalar set-scale operation,
// absolute (not cumulative) per host semantics.
type Rescaler interface {
	Scale() float64
	Rescale(factor float64)
}

// VisibilityReader exposes the visible flag for scene snapshots.
type VisibilityReader interface {
	Visible() bool
}

// LockReader exposes the locked flag for scene snapshots.
type LockReader interface {
	Locked() bool
}

// Scene supplies the host's top-level frames: the containers within which
// layer names are resolved.
type Scene interface {
	Frames(ctx context.Context) ([]SceneObject, error)
}
