// Package pkg provides the core libraries for Wellsketch schematic generation.
//
// # Overview
//
// Wellsketch turns a structured well description (stratigraphy, drilling fluid
// pressure, hole and casing sections, deviation data) into a geometrically
// consistent 2D wellbore schematic plus tabular companions. The pkg directory
// is organized into these areas:
//
//  1. [well] - Well document model, parsing and structural validation
//  2. [trajectory] - Centerline geometry (straight, build arc, hold, extension)
//  3. [layout] - Device-independent drawing primitives for the three columns
//  4. [render] - Raster output (PNG via fogleman/gg)
//  5. [export] - CSV and Markdown companions for every well collection
//  6. [pipeline] - Orchestration (validate → trajectory → layout → render)
//  7. [archive], [cache], [server] - Run archival, artifact cache, HTTP tool service
//
// # Architecture
//
// The typical data flow through Wellsketch:
//
//	Well JSON document
//	         ↓
//	    [well] package (parse + validate)
//	         ↓
//	    [trajectory] package (centerline samples + tangents)
//	         ↓
//	    [layout] package (bands, markers, labels in well coordinates)
//	         ↓
//	    [render] / [export] packages (PNG, CSVs, report)
//
// # Quick Start
//
// Run the whole pipeline and write the artifacts:
//
//	import (
//	    "context"
//	    "github.com/petrolog/wellsketch/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Execute(context.Background(), pipeline.Options{Document: doc})
//	if err != nil {
//	    return err
//	}
//	files, err := pipeline.WriteArtifacts(res, "output/2026-01-02_15-04-05")
//
// Or drive the stages directly:
//
//	w, _ := well.Parse(doc)
//	path, _ := trajectory.ComputeCenterline(w)
//	l, _ := layout.Build(w, path, layout.DefaultOptions())
//	png, _ := render.PNG(l, render.WithSize(1400, 1000))
//
// # Main Packages
//
// [well] - The document model. Parse decodes the JSON document and Validate
// checks every structural invariant at once (section continuity, coverage,
// diameter monotonicity, shoe containment, deviation consistency), reporting
// all violations together.
//
// [trajectory] - Centerline computation. Straight wells get a vertical line;
// deviated and horizontal wells get a vertical section, a circular build arc
// whose radius follows from the kickoff depth, target depth and inclination,
// a straight hold to target B, and an extension to total depth.
//
// [layout] - Converts the well and its centerline into drawing primitives:
// stratigraphy and pressure bands, hole and casing bands offset from the
// centerline, shoe triangles, hanger squares, kickoff and target markers,
// measured-depth ticks and the legend.
//
// [render] - Draws a layout onto a PNG canvas. Output is deterministic for a
// given layout and size.
//
// [export] - Writes one CSV per input collection plus a Markdown run report.
//
// ## Infrastructure
//
// [pipeline] - Complete schematic pipeline used by both the CLI and the HTTP
// tool service. Ensures consistent behavior across entry points and caches
// rendered schematics keyed by document hash and canvas size.
//
// [cache] - Artifact cache with file-based and null implementations.
//
// [archive] - Timestamped per-run output folders.
//
// [server] - HTTP tool service exposing POST /v1/tools/plot-well-structure.
//
// [observability] - Optional hooks for pipeline stage and cache metrics.
//
// [errors] - Coded errors and multi-violation validation errors shared by all
// packages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/trajectory/...   # Specific package
//
// [well]: https://pkg.go.dev/github.com/petrolog/wellsketch/pkg/well
// [trajectory]: https://pkg.go.dev/github.com/petrolog/wellsketch/pkg/trajectory
// [layout]: https://pkg.go.dev/github.com/petrolog/wellsketch/pkg/layout
// [render]: https://pkg.go.dev/github.com/petrolog/wellsketch/pkg/render
// [export]: https://pkg.go.dev/github.com/petrolog/wellsketch/pkg/export
// [pipeline]: https://pkg.go.dev/github.com/petrolog/wellsketch/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/petrolog/wellsketch/pkg/cache
// [archive]: https://pkg.go.dev/github.com/petrolog/wellsketch/pkg/archive
// [server]: https://pkg.go.dev/github.com/petrolog/wellsketch/pkg/server
// [observability]: https://pkg.go.dev/github.com/petrolog/wellsketch/pkg/observability
// [errors]: https://pkg.go.dev/github.com/petrolog/wellsketch/pkg/errors
package pkg
