package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/acewholesale/ace/internal/render"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Reference string
	RuleSet   string
	Output    string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <input.json>",
		Short: "Compute a quote and export it as a spreadsheet",
		Long: `Compute a quote and write its lines to an xlsx workbook.

A blocked quote is refused: blocking notices mean the quote may not leave
the building until someone fixes the input.

Example:
  ace export order.json --reference refdata.yaml --ruleset rules.yaml --out quote.xlsx`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Reference, "reference", "", "path to reference data YAML (required)")
	cmd.Flags().StringVar(&opts.RuleSet, "ruleset", "", "path to ruleset YAML (required)")
	cmd.Flags().StringVar(&opts.Output, "out", "", "workbook path (required)")
	_ = cmd.MarkFlagRequired("reference")
	_ = cmd.MarkFlagRequired("ruleset")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runExport(opts *ExportOptions, inputPath string) error {
	_, out, err := computeQuote(inputPath, opts.Reference, opts.RuleSet)
	if err != nil {
		return WrapExitError(ExitCommandError, "compute quote", err)
	}

	if out.Blocked() {
		return NewExitError(ExitFailure, fmt.Sprintf(
			"quote %s is blocked and may not be exported (%d blocking notices)",
			out.QuoteID, len(out.Blocking)))
	}

	if err := render.WriteWorkbook(out, opts.Output); err != nil {
		return WrapExitError(ExitCommandError, "export workbook", err)
	}
	slog.Info("workbook written", "quote_id", out.QuoteID, "path", opts.Output)
	return nil
}
