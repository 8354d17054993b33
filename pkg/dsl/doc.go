/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing Motif timelines.

It allows developers to define animation groups using a type-safe, fluent builder pattern
instead of relying on external JSON payloads. This is particularly useful for seeding demo
scenes, unit testing, and leveraging IDE autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/aretw0/motif/pkg/dsl"
	)

	func main() {
		timeline := dsl.New()

		timeline.Group("fade-in").
			Layers("Logo").
			Key("k0", 0).Layer("s1").Opacity(0).
			Key("k1", 2).Layer("s1").Opacity(1)

		timeline.Group("slide").
			Layers("Caption").
			Key("k0", 0).Layer("t1").MoveTo(0, 0).
			Key("k1", 1.5).Layer("t1").MoveTo(120, 40)

		groups, err := timeline.Build()
		if err != nil {
			panic(err)
		}
		// ... persist each group through the engine's store
		_ = groups
	}
*/
package dsl
