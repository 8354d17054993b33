/*
Package motif is a keyframe animation engine for layered scenes, built to sit
behind an editing surface (a timeline UI) and drive an execution host (the
program that owns the actual objects).

It separates the timeline model (animation groups and keyframes) from the
scene it animates and from the transport that carries editing commands. This
Hexagonal Architecture allows Motif to be embedded in any interface: CLI,
HTTP server, or MCP tooling.

# Concept

An animation group binds a set of layers, addressed by name, to a shared
sequence of keyframes. Each keyframe pins property values (opacity, position,
scale, rotation) at a point in time; between keyframes the engine
interpolates linearly, writing only the properties a segment actually pins.
Scene objects advertise what they can do through small capability
interfaces, so a group can span text, shapes, and containers and each object
takes just the properties it supports.

# Key Features

  - Scrub and play: apply the timeline at any instant, or run a scheduler
    that sweeps the playhead in real time.
  - Pluggable storage: groups persist through a key-value port, with Redis
    and in-memory backends included.
  - One-way message protocol: editing surfaces send fire-and-forget
    commands; the engine answers on a notification stream.

# Usage

Create an Engine around a scene, then feed it protocol envelopes or use the
direct methods:

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/motif"
		"github.com/aretw0/motif/pkg/adapters/memory"
		"github.com/aretw0/motif/pkg/domain"
	)

	func main() {
		logo := memory.NewShape("s1", "Logo")
		scene := memory.NewScene(memory.NewFrame("f1", "Intro", logo))

		eng, err := motif.New(scene)
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		group := domain.NewAnimationGroup("fade-in", "Logo")
		group.Keyframes = []domain.Keyframe{
			{ID: "k0", LayerID: "s1", Time: 0, Properties: domain.KeyframeProperties{Opacity: domain.Float(0)}},
			{ID: "k1", LayerID: "s1", Time: 2, Properties: domain.KeyframeProperties{Opacity: domain.Float(1)}},
		}
		if err := eng.Groups().Create(ctx, group); err != nil {
			log.Fatal(err)
		}

		// Scrub to the midpoint: Logo is now at opacity 0.5.
		if err := eng.Preview(ctx, 1); err != nil {
			log.Fatal(err)
		}
	}
*/
package motif
