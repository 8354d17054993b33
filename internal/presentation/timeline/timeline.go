package timeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/motif/pkg/domain"
)

// trackWidth is the number of cells in a rendered timeline track.
const trackWidth = 40

// GroupsMarkdown formats stored animation groups as a markdown summary
// table.
func GroupsMarkdown(groups []*domain.AnimationGroup) string {
	var b strings.Builder
	b.WriteString("# Animation Groups\n\n")
	if len(groups) == 0 {
		b.WriteString("_No animation groups stored._\n")
		return b.String()
	}

	sorted := make([]*domain.AnimationGroup, len(groups))
	copy(sorted, groups)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	b.WriteString("| ID | Layers | Keyframes | Duration | Easing |\n")
	b.WriteString("|----|--------|-----------|----------|--------|\n")
	for _, g := range sorted {
		fmt.Fprintf(&b, "| %s | %s | %d | %.2fs | %s |\n",
			g.ID, strings.Join(g.LayerNames, ", "), len(g.Keyframes), g.Duration(), g.Easing)
	}
	return b.String()
}

// GroupMarkdown formats one group in full, including a per-layer track
// with keyframe markers.
func GroupMarkdown(group *domain.AnimationGroup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Group %s\n\n", group.ID)
	fmt.Fprintf(&b, "- Layers: %s\n", strings.Join(group.LayerNames, ", "))
	fmt.Fprintf(&b, "- Easing: %s\n", group.Easing)
	fmt.Fprintf(&b, "- Duration: %.2fs\n\n", group.Duration())

	if len(group.Keyframes) == 0 {
		b.WriteString("_No keyframes._\n")
		return b.String()
	}

	b.WriteString("```\n")
	b.WriteString(track(group))
	b.WriteString("```\n\n")

	b.WriteString("| Keyframe | Layer | Time | Properties |\n")
	b.WriteString("|----------|-------|------|------------|\n")
	for _, kf := range group.Keyframes {
		fmt.Fprintf(&b, "| %s | %s | %.2fs | %s |\n",
			kf.ID, kf.LayerID, kf.Time, formatProperties(kf.Properties))
	}
	return b.String()
}

// FramesMarkdown formats a scene snapshot as a nested layer listing.
func FramesMarkdown(frames []domain.Frame) string {
	var b strings.Builder
	b.WriteString("# Frames\n\n")
	if len(frames) == 0 {
		b.WriteString("_Scene has no frames._\n")
		return b.String()
	}
	for _, frame := range frames {
		fmt.Fprintf(&b, "## %s (%s)\n\n", frame.Name, frame.ID)
		for _, layer := range frame.Layers {
			writeLayer(&b, layer, 0)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeLayer(b *strings.Builder, layer domain.Layer, depth int) {
	flags := ""
	if !layer.Visible {
		flags += " (hidden)"
	}
	if layer.Locked {
		flags += " (locked)"
	}
	fmt.Fprintf(b, "%s- **%s** `%s`%s\n", strings.Repeat("  ", depth), layer.Name, layer.Type, flags)
	for _, child := range layer.Children {
		writeLayer(b, child, depth+1)
	}
}

// track draws one fixed-width line per layer, marking every keyframe
// with its index in the group's sorted order.
func track(group *domain.AnimationGroup) string {
	duration := group.Duration()
	if duration <= 0 {
		duration = 1
	}

	var b strings.Builder
	width := 0
	for _, name := range group.LayerNames {
		if len(name) > width {
			width = len(name)
		}
	}
	for _, name := range group.LayerNames {
		cells := []rune(strings.Repeat("-", trackWidth+1))
		for i, kf := range group.Keyframes {
			pos := int(kf.Time / duration * trackWidth)
			if pos < 0 || pos >= len(cells) {
				continue
			}
			cells[pos] = rune('0' + (i % 10))
		}
		fmt.Fprintf(&b, "%-*s |%s| %.2fs\n", width, name, string(cells), duration)
	}
	return b.String()
}

func formatProperties(p domain.KeyframeProperties) string {
	parts := make([]string, 0, 5)
	if p.Opacity != nil {
		parts = append(parts, fmt.Sprintf("opacity=%.2f", *p.Opacity))
	}
	if p.X != nil {
		parts = append(parts, fmt.Sprintf("x=%.1f", *p.X))
	}
	if p.Y != nil {
		parts = append(parts, fmt.Sprintf("y=%.1f", *p.Y))
	}
	if p.Scale != nil {
		parts = append(parts, fmt.Sprintf("scale=%.2f", *p.Scale))
	}
	if p.Rotation != nil {
		parts = append(parts, fmt.Sprintf("rotation=%.1f", *p.Rotation))
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, " ")
}
