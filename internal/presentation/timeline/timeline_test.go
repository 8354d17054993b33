package timeline

import (
	"strings"
	"testing"

	"github.com/aretw0/motif/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func sampleGroup() *domain.AnimationGroup {
	return &domain.AnimationGroup{
		ID:         "g-1",
		LayerNames: []string{"Logo", "Caption"},
		Easing:     domain.EasingLinear,
		Keyframes: []domain.Keyframe{
			{ID: "k0", LayerID: "l1", Time: 0, Properties: domain.KeyframeProperties{Opacity: domain.Float(0)}},
			{ID: "k1", LayerID: "l1", Time: 2, Properties: domain.KeyframeProperties{Opacity: domain.Float(1), X: domain.Float(120)}},
		},
	}
}

func TestGroupsMarkdown(t *testing.T) {
	md := GroupsMarkdown([]*domain.AnimationGroup{sampleGroup()})
	assert.Contains(t, md, "| g-1 | Logo, Caption | 2 | 2.00s | linear |")
}

func TestGroupsMarkdown_Empty(t *testing.T) {
	md := GroupsMarkdown(nil)
	assert.Contains(t, md, "No animation groups stored")
}

func TestGroupMarkdown(t *testing.T) {
	md := GroupMarkdown(sampleGroup())
	assert.Contains(t, md, "# Group g-1")
	assert.Contains(t, md, "opacity=1.00 x=120.0")
	// One track per layer.
	assert.Equal(t, 2, strings.Count(md, "| 2.00s\n"))
}

func TestFramesMarkdown(t *testing.T) {
	frames := []domain.Frame{
		{
			ID:   "f1",
			Name: "Intro",
			Layers: []domain.Layer{
				{
					ID: "g1", Name: "Header", Type: "group", Visible: true,
					Children: []domain.Layer{
						{ID: "t1", Name: "Title", Type: "text", Visible: false, Locked: true},
					},
				},
			},
		},
	}
	md := FramesMarkdown(frames)
	assert.Contains(t, md, "## Intro (f1)")
	assert.Contains(t, md, "- **Header** `group`")
	assert.Contains(t, md, "  - **Title** `text` (hidden) (locked)")
}

func TestNewRenderer_PassthroughWithoutTTY(t *testing.T) {
	// Test binaries never run with stdout on a TTY.
	render := NewRenderer()
	out, err := render("# hello")
	assert.NoError(t, err)
	assert.Equal(t, "# hello", out)
}
