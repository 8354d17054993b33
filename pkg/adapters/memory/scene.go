package memory

import (
	"context"

	"github.com/aretw0/motif/pkg/ports"
)

// Scene implements ports.Scene over an in-process object tree.
//
// It exists for tests, the CLI, and any host that keeps its scene in Go
// memory. Node kinds deliberately implement different capability subsets so
// the apply path is exercised the same way it would be against a real host
// with many object variants.
type Scene struct {
	frames []ports.SceneObject
}

// NewScene creates a scene from top-level frames.
func NewScene(frames ...ports.SceneObject) *Scene {
	return &Scene{frames: frames}
}

// Frames returns the top-level frames.
func (s *Scene) Frames(ctx context.Context) ([]ports.SceneObject, error) {
	return s.frames, nil
}

// baseNode carries identity, structure and the snapshot flags shared by
// every node kind.
type baseNode struct {
	id       string
	name     string
	kind     string
	visible  bool
	locked   bool
	children []ports.SceneObject
}

func (n *baseNode) ID() string                    { return n.id }
func (n *baseNode) Name() string                  { return n.name }
func (n *baseNode) Kind() string                  { return n.kind }
func (n *baseNode) Children() []ports.SceneObject { return n.children }
func (n *baseNode) Visible() bool                 { return n.visible }
func (n *baseNode) Locked() bool                  { return n.locked }

// SetLocked toggles the locked flag (snapshot metadata only).
func (n *baseNode) SetLocked(v bool) { n.locked = v }

// SetVisible toggles the visible flag (snapshot metadata only).
func (n *baseNode) SetVisible(v bool) { n.visible = v }

// Frame is a top-level container. It has no paint capabilities.
type Frame struct {
	baseNode
}

// NewFrame creates a frame containing the given objects.
func NewFrame(id, name string, children ...ports.SceneObject) *Frame {
	return &Frame{baseNode{id: id, name: name, kind: "frame", visible: true, children: children}}
}

// Group is a nested container. It can be moved but not painted.
type Group struct {
	baseNode
	x, y float64
}

// NewGroup creates a group containing the given objects.
func NewGroup(id, name string, children ...ports.SceneObject) *Group {
	return &Group{baseNode: baseNode{id: id, name: name, kind: "group", visible: true, children: children}}
}

func (g *Group) Position() (float64, float64) { return g.x, g.y }
func (g *Group) MoveTo(x, y float64)          { g.x, g.y = x, y }

// Shape is a drawable leaf with the full capability set: opacity,
// position, rotation and rescale.
type Shape struct {
	baseNode
	opacity  float64
	x, y     float64
	rotation float64
	scale    float64
}

// NewShape creates a fully-capable drawable node.
func NewShape(id, name string) *Shape {
	return &Shape{
		baseNode: baseNode{id: id, name: name, kind: "shape", visible: true},
		opacity:  1,
		scale:    1,
	}
}

func (s *Shape) Opacity() float64             { return s.opacity }
func (s *Shape) SetOpacity(v float64)         { s.opacity = v }
func (s *Shape) Position() (float64, float64) { return s.x, s.y }
func (s *Shape) MoveTo(x, y float64)          { s.x, s.y = x, y }
func (s *Shape) Rotation() float64            { return s.rotation }
func (s *Shape) RotateTo(deg float64)         { s.rotation = deg }
func (s *Shape) Scale() float64               { return s.scale }
func (s *Shape) Rescale(factor float64)       { s.scale = factor }

// Text is a drawable leaf without rotation or rescale, like text nodes in
// hosts that reflow instead of transforming.
type Text struct {
	baseNode
	opacity float64
	x, y    float64
}

// NewText creates a text node (opacity and position only).
func NewText(id, name string) *Text {
	return &Text{
		baseNode: baseNode{id: id, name: name, kind: "text", visible: true},
		opacity:  1,
	}
}

func (t *Text) Opacity() float64             { return t.opacity }
func (t *Text) SetOpacity(v float64)         { t.opacity = v }
func (t *Text) Position() (float64, float64) { return t.x, t.y }
func (t *Text) MoveTo(x, y float64)          { t.x, t.y = x, y }
