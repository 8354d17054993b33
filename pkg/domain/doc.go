/*
Package domain contains the core domain models for the motif animation engine.

It defines the fundamental entities of the timeline, such as Keyframes,
AnimationGroups, and the Frame/Layer snapshot exchanged with the editing
surface. This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - KeyframeProperties: The optional animatable fields of a scene object.
  - Keyframe: A timestamped property snapshot within a group.
  - AnimationGroup: A named set of layer-name references sharing one keyframe timeline.
  - Frame / Layer: A read-only snapshot of the host's scene tree.
  - Notification: A user-facing message emitted by the execution host.
*/
package domain
