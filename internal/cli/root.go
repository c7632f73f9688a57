package cli

import (
	"fmt"
	"os"

	"github.com/agentx-labs/ignorance/ignorance"
	"github.com/agentx-labs/ignorance/internal/branding"
	"github.com/agentx-labs/ignorance/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` checks that generated files are listed in the repository's ignore file
(.gitignore by default) and warns, fails, asks, or adds them when they are not.

Tokens are compared with ignore-file lines exactly; no glob matching is applied.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("dir", "", "Directory to start the repository search from (default: working directory)")
	rootCmd.PersistentFlags().String("ignore-file", "", "Ignore file name at the repository root (default: .gitignore)")
	rootCmd.PersistentFlags().String("marker", "", "Directory that marks the repository root (default: .git)")

	rootCmd.AddCommand(
		newPolicyCmd(ignorance.ActionAdvise),
		newPolicyCmd(ignorance.ActionGuard),
		newPolicyCmd(ignorance.ActionNegotiate),
		newPolicyCmd(ignorance.ActionGuarantee),
		newCheckCmd(),
		newApplyCmd(),
		newDoctorCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// loadSettings layers the config sources under the command's persistent flags.
func loadSettings(cmd *cobra.Command) (string, config.Settings, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return "", config.Settings{}, err
	}

	projectDir := dir
	if projectDir == "" {
		if projectDir, err = os.Getwd(); err != nil {
			return "", config.Settings{}, fmt.Errorf("getting current directory: %w", err)
		}
	}

	v, err := config.Load(projectDir)
	if err != nil {
		return "", config.Settings{}, err
	}
	if err := v.BindPFlag(config.KeyIgnoreFile, cmd.Flags().Lookup("ignore-file")); err != nil {
		return "", config.Settings{}, fmt.Errorf("binding --ignore-file: %w", err)
	}
	if err := v.BindPFlag(config.KeyMarkerDir, cmd.Flags().Lookup("marker")); err != nil {
		return "", config.Settings{}, fmt.Errorf("binding --marker: %w", err)
	}

	return dir, config.Resolve(v), nil
}

// newIgnorance builds an Ignorance wired to the command's streams.
func newIgnorance(cmd *cobra.Command) (*ignorance.Ignorance, error) {
	dir, settings, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	opts := settings.Options(dir)
	opts.In = cmd.InOrStdin()
	opts.Out = cmd.OutOrStdout()
	opts.Err = cmd.ErrOrStderr()
	return ignorance.New(opts), nil
}
