package cli

import (
	"fmt"

	"github.com/agentx-labs/ignorance/ignorance"
	"github.com/spf13/cobra"
)

var policyHelp = map[ignorance.Action]struct{ short, long string }{
	ignorance.ActionAdvise: {
		"Warn about tokens missing from the ignore file",
		`Print a warning to stderr for each token that is not a line of the ignore file.
Never fails because of a missing token.`,
	},
	ignorance.ActionGuard: {
		"Fail if a token is missing from the ignore file",
		`Exit with an error at the first token that is not a line of the ignore file.`,
	},
	ignorance.ActionNegotiate: {
		"Ask whether to add missing tokens to the ignore file",
		`For each missing token, ask on the console whether to add it. Answering "y" or
"yes" appends it under the default comment; any other answer prints a warning.`,
	},
	ignorance.ActionGuarantee: {
		"Add missing tokens to the ignore file",
		`Append each missing token to the ignore file, preceded by a blank line and,
with --comment, a "# comment" line. Tokens already present are left alone.`,
	},
}

func newPolicyCmd(action ignorance.Action) *cobra.Command {
	var comment string

	help := policyHelp[action]
	cmd := &cobra.Command{
		Use:   string(action) + " <token>...",
		Short: help.short,
		Long:  help.long,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ig, err := newIgnorance(cmd)
			if err != nil {
				return err
			}
			for _, token := range args {
				if err := ignorance.Apply(ig, action, token, comment); err != nil {
					return err
				}
			}
			return nil
		},
	}

	if action == ignorance.ActionGuarantee {
		cmd.Flags().StringVarP(&comment, "comment", "c", "", "Comment line written above each added token")
	}
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <token>...",
		Short: "Report whether tokens are in the ignore file",
		Long: `Print "ignored" or "missing" for each token. Exits non-zero when any token is
missing. Never writes to the ignore file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ig, err := newIgnorance(cmd)
			if err != nil {
				return err
			}

			missing := 0
			for _, token := range args {
				ok, err := ig.IsIgnored(token)
				if err != nil {
					return err
				}
				status := "ignored"
				if !ok {
					status = "missing"
					missing++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", status, token)
			}

			if missing > 0 {
				return fmt.Errorf("%d of %d tokens missing from %s", missing, len(args), ig.Options().IgnoreFile)
			}
			return nil
		},
	}
}
