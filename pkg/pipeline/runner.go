package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/petrolog/wellsketch/pkg/cache"
	"github.com/petrolog/wellsketch/pkg/layout"
	"github.com/petrolog/wellsketch/pkg/observability"
	"github.com/petrolog/wellsketch/pkg/render"
	"github.com/petrolog/wellsketch/pkg/trajectory"
	"github.com/petrolog/wellsketch/pkg/well"
)

// Runner encapsulates pipeline execution with artifact caching.
// Both CLI and the tool service use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete validate → trajectory → layout → render
// pipeline. It either returns a fully consistent result or fails before
// producing any artifact; partial geometry is never exposed.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)

	result := &Result{DocumentHash: r.Keyer.DocumentKey(opts.Document)}

	// Stage 1: validate
	start := time.Now()
	observability.Pipeline().OnStageStart(ctx, "validate")
	w, err := well.Parse(opts.Document)
	observability.Pipeline().OnStageComplete(ctx, "validate", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	result.Well = w
	result.Stats.ValidateTime = time.Since(start)
	logger.Info("validated well document",
		"well", w.Name,
		"type", w.Type,
		"duration", result.Stats.ValidateTime)

	// Stage 2: trajectory
	start = time.Now()
	observability.Pipeline().OnStageStart(ctx, "trajectory")
	path, err := trajectory.ComputeCenterline(w)
	observability.Pipeline().OnStageComplete(ctx, "trajectory", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("trajectory: %w", err)
	}
	result.Path = path
	result.Stats.TrajectoryTime = time.Since(start)
	logger.Info("computed centerline",
		"points", len(path.Points),
		"reach", path.MaxHorizontal(),
		"duration", result.Stats.TrajectoryTime)

	// Stage 3: layout
	start = time.Now()
	observability.Pipeline().OnStageStart(ctx, "layout")
	l, err := layout.Build(w, path, layout.DefaultOptions())
	observability.Pipeline().OnStageComplete(ctx, "layout", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(start)
	logger.Info("built layout",
		"primitives", len(l.Primitives),
		"duration", result.Stats.LayoutTime)

	// Stage 4: render
	start = time.Now()
	observability.Pipeline().OnStageStart(ctx, "render")
	png, hit, err := r.renderWithCacheInfo(ctx, l, result.DocumentHash, opts)
	observability.Pipeline().OnStageComplete(ctx, "render", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.PNG = png
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.RenderHit = hit
	logger.Info("rendered schematic",
		"bytes", len(png),
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderWithCacheInfo renders the PNG, serving it from the artifact cache
// when the same document was rendered with the same options before.
func (r *Runner) renderWithCacheInfo(ctx context.Context, l *layout.Layout, docHash string, opts Options) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(docHash, cache.ArtifactKeyOpts{
		Width:  opts.Width,
		Height: opts.Height,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "render")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	png, err := render.PNG(l, render.WithSize(opts.Width, opts.Height))
	if err != nil {
		return nil, false, err
	}
	_ = r.Cache.Set(ctx, key, png, cache.TTLArtifact)
	observability.Cache().OnCacheSet(ctx, "render", len(png))
	return png, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
