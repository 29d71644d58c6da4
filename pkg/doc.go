// Package pkg provides the core libraries for viewalign.
//
// # Overview
//
// Viewalign lines up the objects on a drawing sheet: views, placed elements
// and tag heads. Every operation takes immutable snapshots and returns a plan
// of displacements or rotations; nothing is mutated until the caller applies
// the plan. The pkg directory is organized into three areas:
//
//  1. Engine - [geom], [layout] and [orient]
//  2. Data - [scene] (wire format, plans) and [settings]
//  3. Infrastructure - [pipeline], [cache], [observability], [errors]
//
// # Architecture
//
// The typical data flow:
//
//	scene.json
//	     ↓
//	[scene] package (decode, validate, convert to engine snapshots)
//	     ↓
//	[pipeline] package (options, unit conversion, cache lookup)
//	     ↓
//	[layout] or [orient] package (compute moves or rotations)
//	     ↓
//	[scene.Plan] → JSON, or [scene.ApplyPlan] → updated scene.json
//
// # Quick Start
//
//	s, _ := scene.ReadFile("sheet.json")
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	res, _ := runner.Align(ctx, s, pipeline.Options{Mode: "distribute-h", MinGap: 5})
//	aligned, _ := scene.ApplyPlan(s, res.Plan)
//	_ = scene.WriteFile(aligned, "sheet.aligned.json")
//
// # Main Packages
//
// [geom] - Boxes, the working-plane basis and vector helpers on mgl64.
//
// [layout] - Edge and center alignment, distribution, untangling and point
// alignment. [layout.Run] dispatches by [layout.Mode].
//
// [orient] - Orientation matching: rotates target views in their plane so
// their model orientation matches a base view.
//
// [scene] - JSON scene format, plans and plan application.
//
// [settings] - TOML preferences and length units.
//
// [pipeline] - The runner shared by the CLI and the HTTP API.
//
// [cache] - File, Redis and null plan caches.
//
// [observability] - Hooks for engine, cache and HTTP events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/layout/...     # Specific package
//	go test -run Example ./...   # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/viewalign/pkg/geom
// [layout]: https://pkg.go.dev/github.com/matzehuels/viewalign/pkg/layout
// [orient]: https://pkg.go.dev/github.com/matzehuels/viewalign/pkg/orient
// [scene]: https://pkg.go.dev/github.com/matzehuels/viewalign/pkg/scene
// [settings]: https://pkg.go.dev/github.com/matzehuels/viewalign/pkg/settings
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/viewalign/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/viewalign/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/viewalign/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/viewalign/pkg/errors
// [layout.Run]: https://pkg.go.dev/github.com/matzehuels/viewalign/pkg/layout#Run
// [layout.Mode]: https://pkg.go.dev/github.com/matzehuels/viewalign/pkg/layout#Mode
// [scene.Plan]: https://pkg.go.dev/github.com/matzehuels/viewalign/pkg/scene#Plan
// [scene.ApplyPlan]: https://pkg.go.dev/github.com/matzehuels/viewalign/pkg/scene#ApplyPlan
package pkg
