package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petrolog/wellsketch/pkg/errors"
	"github.com/petrolog/wellsketch/pkg/well"
)

// newValidateCmd creates the validate command. It parses a well document and
// reports every invariant violation at once, so the input can be corrected
// in a single pass.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a well document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			w, err := well.Parse(data)
			if err != nil {
				if v, ok := errors.AsValidation(err); ok {
					printError("%s is not a valid well document", args[0])
					for _, violation := range v.Violations {
						fmt.Println("  " + styleViolation.Render("- "+violation))
					}
					return fmt.Errorf("%d violations", len(v.Violations))
				}
				return err
			}

			printSuccess("%s is valid", args[0])
			printDetail("well: %s", w.Name)
			printDetail("type: %s", w.Type)
			printDetail("total depth: %gm", w.TotalDepth)
			if d := w.Deviation; d != nil {
				printDetail("kickoff: %gm, target A: %gm, target B: %gm", d.Kickoff, d.TargetA, d.TargetB)
			}
			if w.SideTracked() {
				printDetail("side-tracked")
			}
			return nil
		},
	}
}
