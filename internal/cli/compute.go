package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/acewholesale/ace/internal/quote"
	"github.com/acewholesale/ace/internal/schema"
	"github.com/acewholesale/ace/internal/store"
)

// ComputeOptions holds flags for the compute command.
type ComputeOptions struct {
	*RootOptions
	Reference string
	RuleSet   string
	Output    string
	Database  string

	// Tokens allows overriding the run token generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	Tokens store.TokenGenerator
}

// NewComputeCommand creates the compute command.
func NewComputeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ComputeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compute <input.json>",
		Short: "Compute a quote from an input document",
		Long: `Validate an input document, run the rule pipeline and emit the quote.

The quote document goes to stdout, or to --out when given. A structural
problem (unknown sku, invalid ruleset) emits an error.v1 document instead
and exits non-zero. Business conditions never fail the command; they land
in the quote's warnings and blocking lists.

Example:
  ace compute order.json --reference refdata.yaml --ruleset rules.yaml
  ace compute order.json --reference refdata.yaml --ruleset rules.yaml --db audit.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Reference, "reference", "", "path to reference data YAML (required)")
	cmd.Flags().StringVar(&opts.RuleSet, "ruleset", "", "path to ruleset YAML (required)")
	cmd.Flags().StringVar(&opts.Output, "out", "", "write the quote document to this path instead of stdout")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the quote in this SQLite audit log")
	_ = cmd.MarkFlagRequired("reference")
	_ = cmd.MarkFlagRequired("ruleset")

	return cmd
}

func runCompute(opts *ComputeOptions, inputPath string, cmd *cobra.Command) error {
	in, out, err := computeQuote(inputPath, opts.Reference, opts.RuleSet)
	if err != nil {
		if doc, ok := structuralErrorDoc(err); ok {
			cmd.OutOrStdout().Write(doc)
			return WrapExitError(ExitFailure, "quote not computable", err)
		}
		return WrapExitError(ExitCommandError, "compute quote", err)
	}

	data, err := marshalOutput(out)
	if err != nil {
		return WrapExitError(ExitCommandError, "render quote", err)
	}

	// Self-check: what leaves this command conforms to the output contract.
	validator, err := schema.Output()
	if err != nil {
		return WrapExitError(ExitCommandError, "load output schema", err)
	}
	if err := validator.ValidateBytes(data); err != nil {
		return WrapExitError(ExitCommandError, "output violates contract", err)
	}
	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, data, 0o644); err != nil {
			return WrapExitError(ExitCommandError, "write quote", err)
		}
	} else {
		cmd.OutOrStdout().Write(data)
	}

	if opts.Database != "" {
		if err := recordQuote(cmd.Context(), opts, in, out); err != nil {
			return err
		}
	}

	if out.Blocked() {
		slog.Warn("quote blocked", "quote_id", out.QuoteID, "blocking", len(out.Blocking))
	}
	return nil
}

func recordQuote(ctx context.Context, opts *ComputeOptions, in *quote.Input, out *quote.Output) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "open audit log", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing audit log", "error", closeErr)
		}
	}()

	tokens := opts.Tokens
	if tokens == nil {
		tokens = store.UUIDv7Generator{}
	}
	rec, err := store.BuildRecord(in, out, tokens.Generate())
	if err != nil {
		return WrapExitError(ExitCommandError, "build audit record", err)
	}

	inserted, err := st.SaveQuote(ctx, rec)
	if err != nil {
		return WrapExitError(ExitCommandError, "record quote", err)
	}
	slog.Info("quote recorded",
		"quote_id", rec.QuoteID, "run_token", rec.RunToken, "inserted", inserted)
	return nil
}
