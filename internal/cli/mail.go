package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acewholesale/ace/internal/render"
)

// MailOptions holds flags for the mail command.
type MailOptions struct {
	*RootOptions
	Reference string
	RuleSet   string
}

// NewMailCommand creates the mail command.
func NewMailCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MailOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "mail <input.json>",
		Short: "Compute a quote and print its notification mail",
		Long: `Compute a quote and print the notification mail to stdout.

Blocked quotes still mail: the BLOCKED notification is how anyone finds out
something needs fixing.

Example:
  ace mail order.json --reference refdata.yaml --ruleset rules.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMail(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Reference, "reference", "", "path to reference data YAML (required)")
	cmd.Flags().StringVar(&opts.RuleSet, "ruleset", "", "path to ruleset YAML (required)")
	_ = cmd.MarkFlagRequired("reference")
	_ = cmd.MarkFlagRequired("ruleset")

	return cmd
}

func runMail(opts *MailOptions, inputPath string, cmd *cobra.Command) error {
	_, out, err := computeQuote(inputPath, opts.Reference, opts.RuleSet)
	if err != nil {
		return WrapExitError(ExitCommandError, "compute quote", err)
	}

	m := render.RenderMail(out)
	fmt.Fprintf(cmd.OutOrStdout(), "Subject: %s\n\n%s", m.Subject, m.Body)
	return nil
}
