package scene

import (
	"github.com/aretw0/motif/pkg/domain"
	"github.com/aretw0/motif/pkg/ports"
)

// Describe builds the frames-loaded snapshot for the editing surface: a
// read-only layer tree per frame, with the visible/locked flags read
// through their optional capabilities (defaulting to visible, unlocked).
func Describe(frames []ports.SceneObject) []domain.Frame {
	out := make([]domain.Frame, 0, len(frames))
	for _, frame := range frames {
		children := frame.Children()
		layers := make([]domain.Layer, 0, len(children))
		for _, child := range children {
			layers = append(layers, describeLayer(child))
		}
		out = append(out, domain.Frame{
			ID:     frame.ID(),
			Name:   frame.Name(),
			Layers: layers,
		})
	}
	return out
}

func describeLayer(obj ports.SceneObject) domain.Layer {
	layer := domain.Layer{
		ID:      obj.ID(),
		Name:    obj.Name(),
		Type:    obj.Kind(),
		Visible: true,
	}
	if v, ok := obj.(ports.VisibilityReader); ok {
		layer.Visible = v.Visible()
	}
	if l, ok := obj.(ports.LockReader); ok {
		layer.Locked = l.Locked()
	}
	for _, child := range obj.Children() {
		layer.Children = append(layer.Children, describeLayer(child))
	}
	return layer
}
