package domain_test

import (
	"testing"

	"github.com/aretw0/motif/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortKeyframes(t *testing.T) {
	g := domain.NewAnimationGroup("g1", "Logo")
	g.Keyframes = []domain.Keyframe{
		domain.NewKeyframe("k2", "l1", 2),
		domain.NewKeyframe("k0", "l1", 0),
		domain.NewKeyframe("k1", "l1", 1),
	}

	g.SortKeyframes()

	require.Len(t, g.Keyframes, 3)
	assert.Equal(t, "k0", g.Keyframes[0].ID)
	assert.Equal(t, "k1", g.Keyframes[1].ID)
	assert.Equal(t, "k2", g.Keyframes[2].ID)
	assert.Equal(t, 2.0, g.Duration())
}

func TestReplaceKeyframe(t *testing.T) {
	g := domain.NewAnimationGroup("g1", "Logo")
	g.Keyframes = []domain.Keyframe{
		domain.NewKeyframe("k0", "l1", 0),
		domain.NewKeyframe("k1", "l1", 2),
	}

	props := domain.KeyframeProperties{Opacity: domain.Float(0.25)}
	g.ReplaceKeyframe("k1", props)

	kf, ok := g.Keyframe("k1")
	require.True(t, ok)
	require.NotNil(t, kf.Properties.Opacity)
	assert.Equal(t, 0.25, *kf.Properties.Opacity)
	// Only Properties change; time is immutable.
	assert.Equal(t, 2.0, kf.Time)
	// Untouched keyframe keeps its defaults.
	k0, _ := g.Keyframe("k0")
	assert.Equal(t, 1.0, *k0.Properties.Opacity)
}

func TestReplaceKeyframe_UnknownID(t *testing.T) {
	// An unknown keyframe id is a silent no-op, not an error.
	g := domain.NewAnimationGroup("g1", "Logo")
	g.Keyframes = []domain.Keyframe{domain.NewKeyframe("k0", "l1", 0)}
	before := g.Keyframes[0]

	g.ReplaceKeyframe("missing", domain.KeyframeProperties{Opacity: domain.Float(0)})

	require.Len(t, g.Keyframes, 1)
	assert.Equal(t, before, g.Keyframes[0])
}

func TestEasingValid(t *testing.T) {
	assert.True(t, domain.EasingLinear.Valid())
	assert.True(t, domain.EasingEaseInAndOut.Valid())
	assert.False(t, domain.Easing("bounce").Valid())
}

func TestDefaultProperties(t *testing.T) {
	p := domain.DefaultProperties()
	assert.Equal(t, 1.0, *p.Opacity)
	assert.Equal(t, 0.0, *p.X)
	assert.Equal(t, 0.0, *p.Y)
	assert.Equal(t, 1.0, *p.Scale)
	assert.Equal(t, 0.0, *p.Rotation)
	assert.False(t, p.IsZero())
	assert.True(t, domain.KeyframeProperties{}.IsZero())
}
