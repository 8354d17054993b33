package memory

import (
	"fmt"

	"github.com/aretw0/motif/pkg/ports"
	"gopkg.in/yaml.v3"
)

// sceneSpec is the YAML shape of a scene fixture file.
type sceneSpec struct {
	Frames []layerSpec `yaml:"frames"`
}

type layerSpec struct {
	ID       string      `yaml:"id"`
	Name     string      `yaml:"name"`
	Type     string      `yaml:"type"`
	Visible  *bool       `yaml:"visible"`
	Locked   bool        `yaml:"locked"`
	Children []layerSpec `yaml:"children"`
}

// SceneFromYAML builds a Scene from a YAML fixture.
//
// Fixture files let the CLI run against a reproducible scene without a real
// design-tool host:
//
//	frames:
//	  - id: f1
//	    name: Intro
//	    children:
//	      - {id: l1, name: Logo, type: shape}
//	      - {id: l2, name: Caption, type: text}
func SceneFromYAML(data []byte) (*Scene, error) {
	var spec sceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse scene fixture: %w", err)
	}

	frames := make([]ports.SceneObject, 0, len(spec.Frames))
	for _, fs := range spec.Frames {
		obj, err := buildNode(fs, true)
		if err != nil {
			return nil, err
		}
		frames = append(frames, obj)
	}
	return NewScene(frames...), nil
}

func buildNode(spec layerSpec, topLevel bool) (ports.SceneObject, error) {
	children := make([]ports.SceneObject, 0, len(spec.Children))
	for _, cs := range spec.Children {
		child, err := buildNode(cs, false)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	kind := spec.Type
	if kind == "" {
		if topLevel {
			kind = "frame"
		} else if len(children) > 0 {
			kind = "group"
		} else {
			kind = "shape"
		}
	}

	var node interface {
		ports.SceneObject
		SetVisible(bool)
		SetLocked(bool)
	}

	switch kind {
	case "frame":
		node = NewFrame(spec.ID, spec.Name, children...)
	case "group":
		node = NewGroup(spec.ID, spec.Name, children...)
	case "shape", "rectangle", "ellipse", "vector":
		if len(children) > 0 {
			return nil, fmt.Errorf("node %q: %s nodes cannot have children", spec.ID, kind)
		}
		node = NewShape(spec.ID, spec.Name)
	case "text":
		if len(children) > 0 {
			return nil, fmt.Errorf("node %q: text nodes cannot have children", spec.ID)
		}
		node = NewText(spec.ID, spec.Name)
	default:
		return nil, fmt.Errorf("node %q: unknown node type %q", spec.ID, kind)
	}

	if spec.Visible != nil {
		node.SetVisible(*spec.Visible)
	}
	node.SetLocked(spec.Locked)
	return node, nil
}
