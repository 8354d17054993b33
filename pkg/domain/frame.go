package domain

// Layer is a read-only snapshot of one node in the host's scene tree,
// shipped to the editing surface in the frames-loaded event.
type Layer struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Type     string  `json:"type" yaml:"type"`
	Visible  bool    `json:"visible" yaml:"visible"`
	Locked   bool    `json:"locked" yaml:"locked"`
	Children []Layer `json:"children,omitempty" yaml:"children,omitempty"`
}

// Frame is a top-level container in the scene: the scope within which
// layer names are resolved to scene objects.
type Frame struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Layers []Layer `json:"layers" yaml:"layers"`
}
