// Package pipeline provides the core schematic pipeline for wellsketch.
//
// This package implements the complete validate → trajectory → layout →
// render pipeline used by both the CLI and the tool service. Centralizing it
// keeps behavior identical across entry points.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Validate: parse the well document and check every structural invariant
//  2. Trajectory: derive the 2D centerline from the deviation parameters
//  3. Layout: project all well collections onto the centerline
//  4. Render: rasterize the primitives into the schematic PNG
//
// Only the render stage is cached; the geometry stages are cheap and pure.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Document: doc})
//	if err != nil {
//	    return err
//	}
//	png := result.PNG
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/petrolog/wellsketch/pkg/errors"
	"github.com/petrolog/wellsketch/pkg/layout"
	"github.com/petrolog/wellsketch/pkg/trajectory"
	"github.com/petrolog/wellsketch/pkg/well"
)

const (
	// DefaultWidth is the default schematic width in pixels.
	DefaultWidth = 1400

	// DefaultHeight is the default schematic height in pixels.
	DefaultHeight = 1000
)

// PNGName is the file name of the rendered schematic inside an archive
// folder.
const PNGName = "well_structure_plot.png"

// Options configures one pipeline invocation.
type Options struct {
	// Document is the raw well JSON.
	Document []byte

	// Width and Height override the schematic size in pixels.
	Width  int
	Height int

	// Refresh bypasses the artifact cache.
	Refresh bool

	// Logger overrides the runner's logger for this invocation.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Document) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "empty well document")
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return nil
}

// Stats records per-stage durations for one invocation.
type Stats struct {
	ValidateTime   time.Duration
	TrajectoryTime time.Duration
	LayoutTime     time.Duration
	RenderTime     time.Duration
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	RenderHit bool
}

// Result is the complete output of one pipeline invocation.
type Result struct {
	Well   *well.Well
	Path   *trajectory.Path
	Layout *layout.Layout
	PNG    []byte

	// DocumentHash is the content hash of the input document, usable as a
	// stable identifier for the invocation.
	DocumentHash string

	Stats     Stats
	CacheInfo CacheInfo
}
