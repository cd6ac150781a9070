package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/acewholesale/ace/internal/contract"
)

// GoldenOptions holds flags for the golden command.
type GoldenOptions struct {
	*RootOptions
	Input     string
	Reference string
	RuleSet   string
	Output    string
}

// NewGoldenCommand creates the golden command.
func NewGoldenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GoldenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "golden",
		Short: "Regenerate the golden master fixture",
		Long: `Recompute the sample quote and rewrite the golden master fixture.

Regeneration is always an explicit, reviewed act. Tests never rewrite the
fixture behind your back; run this after an intentional contract change and
commit the diff.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGolden(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Input, "input", "tests/fixtures/input.v1.sample.json", "sample input document")
	cmd.Flags().StringVar(&opts.Reference, "reference", "tests/fixtures/reference.v1.sample.yaml", "sample reference data")
	cmd.Flags().StringVar(&opts.RuleSet, "ruleset", "tests/fixtures/ruleset.v1.sample.yaml", "sample ruleset")
	cmd.Flags().StringVar(&opts.Output, "out", "tests/fixtures/output.v1.golden.json", "golden fixture path")

	return cmd
}

func runGolden(opts *GoldenOptions) error {
	_, out, err := computeQuote(opts.Input, opts.Reference, opts.RuleSet)
	if err != nil {
		return WrapExitError(ExitCommandError, "compute sample quote", err)
	}

	if err := contract.WriteGolden(opts.Output, out); err != nil {
		return WrapExitError(ExitCommandError, "write golden fixture", err)
	}
	slog.Info("golden fixture written", "quote_id", out.QuoteID, "path", opts.Output)
	return nil
}
