package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/petrolog/wellsketch/pkg/archive"
	"github.com/petrolog/wellsketch/pkg/cache"
	"github.com/petrolog/wellsketch/pkg/errors"
	"github.com/petrolog/wellsketch/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // archive root directory
	width   int    // schematic width in pixels
	height  int    // schematic height in pixels
	refresh bool   // bypass the artifact cache
	noCache bool   // disable the artifact cache entirely
}

// newRenderCmd creates the render command. It runs the full pipeline on a
// well document and archives the schematic PNG, the per-collection CSVs and
// the run report in a fresh timestamped folder.
func newRenderCmd(cfgPath *string) *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a well document into a schematic archive folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyRenderConfig(&opts, cfg)
			return runRender(cmd, cfg, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "archive root directory")
	cmd.Flags().IntVar(&opts.width, "width", 0, "schematic width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "schematic height in pixels")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// applyRenderConfig fills unset flags from the config file.
func applyRenderConfig(opts *renderOpts, cfg Config) {
	if opts.output == "" {
		opts.output = cfg.OutputDir
	}
	if opts.width == 0 {
		opts.width = cfg.Width
	}
	if opts.height == 0 {
		opts.height = cfg.Height
	}
}

func runRender(cmd *cobra.Command, cfg Config, file string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	doc, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	runner := pipeline.NewRunner(openCache(cfg, opts.noCache), nil, logger)
	defer runner.Close()

	res, err := runner.Execute(ctx, pipeline.Options{
		Document: doc,
		Width:    opts.width,
		Height:   opts.height,
		Refresh:  opts.refresh,
	})
	if err != nil {
		if v, ok := errors.AsValidation(err); ok {
			printError("%s is not a valid well document", file)
			for _, violation := range v.Violations {
				fmt.Println("  " + styleViolation.Render("- "+violation))
			}
			return fmt.Errorf("%d violations", len(v.Violations))
		}
		return err
	}

	arch, err := archive.NewManager(opts.output)
	if err != nil {
		return err
	}
	folder, err := arch.NewFolder()
	if err != nil {
		return err
	}
	files, err := pipeline.WriteArtifacts(res, folder)
	if err != nil {
		printError("partial output archived in %s: %v", folder, err)
		return err
	}

	printSuccess("rendered %s (%s)", styleTitle.Render(res.Well.Name), res.Well.Type)
	printDetail("folder: %s", folder)
	for _, f := range files {
		printDetail("file: %s", f)
	}
	if res.CacheInfo.RenderHit {
		printInfo("schematic " + styleCached.Render("cached"))
	}
	printInfo("image: %s", styleValue.Render(filepath.Join(folder, pipeline.PNGName)))
	return nil
}

// openCache builds the artifact cache, degrading to no caching when the
// cache directory is unavailable.
func openCache(cfg Config, disabled bool) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}

	dir, err := cfg.cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}
