package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/petrolog/wellsketch/pkg/buildinfo"
)

// Execute runs the wellsketch CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (validate,
// render, serve, cache), configures logging based on the --verbose flag, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool
	var cfgPath string

	root := &cobra.Command{
		Use:          "wellsketch",
		Short:        "Wellsketch draws 2D wellbore schematics from well data",
		Long:         `Wellsketch converts a structured well description (casing, hole, stratigraphy, pressure and deviation data) into a geometrically consistent 2D schematic, plus CSV and Markdown companions.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.config/wellsketch/config.toml)")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newRenderCmd(&cfgPath))
	root.AddCommand(newServeCmd(&cfgPath))
	root.AddCommand(newCacheCmd(&cfgPath))

	return root.ExecuteContext(ctx)
}
