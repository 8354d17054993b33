// Package scene implements the scene query adapter: resolving abstract
// layer references (names) to live scene objects and applying computed
// properties back onto them.
//
// The adapter never owns scene objects; it transiently resolves and
// mutates them per call on behalf of the protocol host and the scheduler.
package scene

import (
	"github.com/aretw0/motif/pkg/domain"
	"github.com/aretw0/motif/pkg/ports"
)

// ResolveByName scans every frame's descendant tree and returns all scene
// objects whose name exactly equals name. Zero, one or many matches are all
// valid: multiple objects sharing a name animate as one entity.
func ResolveByName(name string, frames []ports.SceneObject) []ports.SceneObject {
	var matches []ports.SceneObject
	for _, frame := range frames {
		matches = collect(name, frame, matches)
	}
	return matches
}

// ResolveGroup resolves every layer name of a group across the frames.
func ResolveGroup(group *domain.AnimationGroup, frames []ports.SceneObject) []ports.SceneObject {
	var matches []ports.SceneObject
	for _, name := range group.LayerNames {
		matches = append(matches, ResolveByName(name, frames)...)
	}
	return matches
}

func collect(name string, obj ports.SceneObject, acc []ports.SceneObject) []ports.SceneObject {
	if obj.Name() == name {
		acc = append(acc, obj)
	}
	// Traversal is structural, independent of the object's kind: anything
	// exposing children gets descended into.
	for _, child := range obj.Children() {
		acc = collect(name, child, acc)
	}
	return acc
}

// Apply writes each defined property field onto the object, capability
// checked per field. Objects lacking a capability silently skip that field;
// no error is ever produced. Application is absolute, so applying the same
// properties twice yields the same final state.
func Apply(obj ports.SceneObject, props domain.KeyframeProperties) {
	if props.Opacity != nil {
		if w, ok := obj.(ports.OpacityWriter); ok {
			w.SetOpacity(*props.Opacity)
		}
	}

	if props.X != nil || props.Y != nil {
		if m, ok := obj.(ports.Mover); ok {
			x, y := m.Position()
			if props.X != nil {
				x = *props.X
			}
			if props.Y != nil {
				y = *props.Y
			}
			m.MoveTo(x, y)
		}
	}

	if props.Rotation != nil {
		if r, ok := obj.(ports.Rotator); ok {
			r.RotateTo(*props.Rotation)
		}
	}

	if props.Scale != nil {
		if r, ok := obj.(ports.Rescaler); ok {
			r.Rescale(*props.Scale)
		}
	}
}

// ApplyAll applies the properties to every object.
func ApplyAll(objs []ports.SceneObject, props domain.KeyframeProperties) {
	for _, obj := range objs {
		Apply(obj, props)
	}
}
