/*
Package ports defines the driven ports (interfaces) for the motif engine.

These interfaces decouple the timeline core from the host it runs inside,
allowing the engine to work with various storage backends and scene-graph
implementations.

# Key Interfaces

  - KVStore: The storage collaborator (string keys, opaque values, key listing).
  - Scene / SceneObject: The host's live object tree, with per-object capabilities.
  - Notifier: The user-facing notification channel.
  - Clock / Ticker: Time sources for the playback scheduler.
*/
package ports
