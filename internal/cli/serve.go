package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petrolog/wellsketch/pkg/archive"
	"github.com/petrolog/wellsketch/pkg/pipeline"
	"github.com/petrolog/wellsketch/pkg/server"
)

// newServeCmd creates the serve command. It runs the HTTP tool service until
// the process receives an interrupt.
func newServeCmd(cfgPath *string) *cobra.Command {
	var (
		addr    string
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the well schematic tool service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr == "" {
				addr = cfg.Addr
			}
			if output == "" {
				output = cfg.OutputDir
			}

			logger := loggerFromContext(cmd.Context())

			runner := pipeline.NewRunner(openCache(cfg, noCache), nil, logger)
			defer runner.Close()

			arch, err := archive.NewManager(output)
			if err != nil {
				return err
			}

			return server.New(runner, arch, logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "archive root directory")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}
