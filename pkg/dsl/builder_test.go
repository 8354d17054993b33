package dsl_test

import (
	"testing"

	"github.com/aretw0/motif/pkg/domain"
	"github.com/aretw0/motif/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_FluentGroup(t *testing.T) {
	timeline := dsl.New()

	timeline.Group("fade-in").
		Layers("Logo", "Caption").
		Easing(domain.EasingEaseInAndOut).
		Key("k1", 2).Layer("s1").Opacity(1).MoveTo(120, 40).
		Key("k0", 0).Layer("s1").Opacity(0)

	groups, err := timeline.Build()
	require.NoError(t, err)
	require.Len(t, groups, 1)

	group := groups[0]
	assert.Equal(t, "fade-in", group.ID)
	assert.Equal(t, []string{"Logo", "Caption"}, group.LayerNames)
	assert.Equal(t, domain.EasingEaseInAndOut, group.Easing)

	// Keyframes come out time-sorted regardless of declaration order.
	require.Len(t, group.Keyframes, 2)
	assert.Equal(t, "k0", group.Keyframes[0].ID)
	assert.Equal(t, "k1", group.Keyframes[1].ID)

	require.NotNil(t, group.Keyframes[1].Properties.X)
	assert.Equal(t, 120.0, *group.Keyframes[1].Properties.X)
	assert.Nil(t, group.Keyframes[0].Properties.X)
}

func TestBuilder_GroupIsIdempotent(t *testing.T) {
	timeline := dsl.New()
	a := timeline.Group("g")
	b := timeline.Group("g")
	assert.Same(t, a, b)
}

func TestBuilder_DeclarationOrder(t *testing.T) {
	timeline := dsl.New()
	timeline.Group("b")
	timeline.Group("a")

	groups, err := timeline.Build()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "b", groups[0].ID)
	assert.Equal(t, "a", groups[1].ID)
}

func TestBuilder_RejectsDuplicateKeyframeID(t *testing.T) {
	timeline := dsl.New()
	timeline.Group("g").
		Key("k0", 0).Opacity(0).
		Key("k0", 1).Opacity(1)

	_, err := timeline.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate keyframe id")
}

func TestBuilder_RejectsUnknownEasing(t *testing.T) {
	timeline := dsl.New()
	timeline.Group("g").Easing(domain.Easing("bounce"))

	_, err := timeline.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown easing")
}

func TestKeyframeBuilder_Defaults(t *testing.T) {
	timeline := dsl.New()
	timeline.Group("g").Key("k0", 0).Layer("s1").Defaults()

	groups, err := timeline.Build()
	require.NoError(t, err)

	props := groups[0].Keyframes[0].Properties
	require.NotNil(t, props.Opacity)
	assert.Equal(t, 1.0, *props.Opacity)
	require.NotNil(t, props.Scale)
	assert.Equal(t, 1.0, *props.Scale)
}
