// Package tween implements time-based interpolation between keyframes.
//
// Sampling is a pure function over a sorted keyframe list: it selects the
// active keyframe pair for a point in time and linearly blends the property
// fields the pair has in common. Easing curves are declared here as well,
// but the timeline samples every group linearly; see Curve.
package tween

import "github.com/aretw0/motif/pkg/domain"

// segmentEnd returns the index of the first keyframe with time strictly
// greater than t, or -1 when no such keyframe exists. With keyframes sorted
// ascending, index i > 0 means the active pair is (i-1, i). Index 0 means
// t lies before the first keyframe.
func segmentEnd(keyframes []domain.Keyframe, t float64) int {
	for i, kf := range keyframes {
		if kf.Time > t {
			return i
		}
	}
	return -1
}

// Sample computes the interpolated properties for a sorted keyframe list at
// time t. The second return value is false when no keyframe pair is active:
// before the first keyframe, at or after the last keyframe, and for lists
// with fewer than two keyframes. Callers must treat that as "apply nothing",
// not as an error.
//
// For the active pair (start, end), progress is (t-start)/(end-start) and
// only fields present in both keyframes are blended. A zero-width interval
// holds the start values instead of dividing by zero.
func Sample(keyframes []domain.Keyframe, t float64) (domain.KeyframeProperties, bool) {
	end := segmentEnd(keyframes, t)
	if end <= 0 {
		return domain.KeyframeProperties{}, false
	}

	start := keyframes[end-1]
	stop := keyframes[end]

	progress := 0.0
	if width := stop.Time - start.Time; width > 0 {
		progress = (t - start.Time) / width
	}

	return Blend(start.Properties, stop.Properties, progress), true
}

// Blend linearly interpolates the fields present in both property sets.
// Fields missing on either side are left unset in the result.
func Blend(a, b domain.KeyframeProperties, progress float64) domain.KeyframeProperties {
	var out domain.KeyframeProperties
	out.Opacity = lerpField(a.Opacity, b.Opacity, progress)
	out.X = lerpField(a.X, b.X, progress)
	out.Y = lerpField(a.Y, b.Y, progress)
	out.Scale = lerpField(a.Scale, b.Scale, progress)
	out.Rotation = lerpField(a.Rotation, b.Rotation, progress)
	return out
}

func lerpField(a, b *float64, progress float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	v := lerp(*a, *b, progress)
	return &v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
