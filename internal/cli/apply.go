package cli

import (
	"fmt"
	"path/filepath"

	"github.com/agentx-labs/ignorance/internal/branding"
	"github.com/agentx-labs/ignorance/internal/manifest"
	"github.com/spf13/cobra"
)

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply [manifest]",
		Short: "Apply a token manifest",
		Long: `Apply the policies listed in a token manifest, in order, stopping at the
first error. The default manifest is ` + branding.ManifestFile() + ` at the repository root.

Example manifest:

  requires: ">= 0.1.0"
  policy: advise
  comment: generated files
  tokens:
    - token: .todos/
    - token: tmp/cache
      policy: guarantee
      comment: cache dir`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ig, err := newIgnorance(cmd)
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				root, err := ig.Root()
				if err != nil {
					return err
				}
				path = filepath.Join(root, branding.ManifestFile())
			}

			m, err := manifest.Load(path, buildVersion)
			if err != nil {
				return err
			}

			n, err := manifest.Apply(ig, m)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Applied %s (%d entries)\n", path, n)
			return nil
		},
	}
}
