package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/ignorance/internal/branding"
	"github.com/agentx-labs/ignorance/internal/config"
	"github.com/agentx-labs/ignorance/internal/ignorefile"
	"github.com/agentx-labs/ignorance/internal/manifest"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Show the resolved repository, ignore file, and settings",
		Long: `Report where the repository root and ignore file were found, the effective
settings, and whether the token manifest (if any) is valid. Exits non-zero when
no repository is found or the manifest is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			ig, err := newIgnorance(cmd)
			if err != nil {
				return err
			}
			opts := ig.Options()

			fmt.Fprintf(out, "Config file:      %s\n", config.FilePath())
			fmt.Fprintf(out, "Marker directory: %s\n", opts.MarkerDir)
			fmt.Fprintf(out, "Ignore file:      %s\n", opts.IgnoreFile)
			fmt.Fprintf(out, "Default comment:  %s\n", opts.DefaultComment)

			root, err := ig.Root()
			if err != nil {
				fmt.Fprintf(out, "Repository root:  not found\n")
				return err
			}
			fmt.Fprintf(out, "Repository root:  %s\n", root)

			f := ignorefile.At(root, opts.IgnoreFile)
			lines, err := f.ReadLines()
			if err != nil {
				return err
			}
			if _, statErr := os.Stat(f.Path); os.IsNotExist(statErr) {
				fmt.Fprintf(out, "Ignore file path: %s (not created yet)\n", f.Path)
			} else {
				fmt.Fprintf(out, "Ignore file path: %s (%d lines)\n", f.Path, len(lines))
			}

			manifestPath := filepath.Join(root, branding.ManifestFile())
			if _, statErr := os.Stat(manifestPath); os.IsNotExist(statErr) {
				fmt.Fprintf(out, "Token manifest:   none\n")
				return nil
			}

			result, err := manifest.ValidateFile(manifestPath)
			if err != nil {
				return err
			}
			if !result.Valid {
				fmt.Fprintf(out, "Token manifest:   %s (invalid)\n", manifestPath)
				return &manifest.InvalidError{Path: manifestPath, Issues: result.Issues}
			}
			fmt.Fprintf(out, "Token manifest:   %s (valid)\n", manifestPath)
			return nil
		},
	}
}
