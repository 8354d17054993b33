package tween

import (
	"math"

	"github.com/aretw0/motif/pkg/domain"
)

// CurveFunc maps a linear progress value in [0,1] to an eased one.
type CurveFunc func(float64) float64

// Curve returns the curve function for a declared easing mode.
//
// Groups carry an easing mode, but Sample does not consult it: live preview
// blends linearly regardless, matching the editor's historical behavior.
// Hosts that want eased playback can run Blend through one of these curves
// explicitly.
func Curve(e domain.Easing) CurveFunc {
	switch e {
	case domain.EasingEaseIn:
		return EaseInCubic
	case domain.EasingEaseOut:
		return EaseOutCubic
	case domain.EasingEaseInAndOut:
		return EaseInOutCubic
	default:
		return Linear
	}
}

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// EaseInCubic accelerates from zero velocity.
func EaseInCubic(t float64) float64 { return t * t * t }

// EaseOutCubic decelerates to zero velocity.
func EaseOutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }

// EaseInOutCubic accelerates until halfway, then decelerates.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
