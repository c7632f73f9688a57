// Package branding provides compile-time identity values for the CLI.
//
// Values come from the embedded branding.yaml; hard defaults cover a missing
// or empty file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "ignorance",
			DisplayName: "Ignorance",
			Description: "Keep generated files out of version control",
			HomeDir:     ".ignorance",
			EnvPrefix:   "IGNORANCE",
			GoModule:    "github.com/agentx-labs/ignorance",
			GitHubRepo:  "agentx-labs/ignorance",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "ignorance").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".ignorance").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "IGNORANCE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("ignore_file") → "IGNORANCE_IGNORE_FILE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

// ProjectFile returns the per-repository settings file name (e.g., ".ignorance.yaml").
func ProjectFile() string {
	load()
	return "." + defaults.CLIName + ".yaml"
}

// ManifestFile returns the default token manifest name (e.g., "ignorance.tokens.yaml").
func ManifestFile() string {
	load()
	return defaults.CLIName + ".tokens.yaml"
}
