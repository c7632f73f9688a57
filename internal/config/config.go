package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/agentx-labs/ignorance/ignorance"
	"github.com/agentx-labs/ignorance/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyIgnoreFile     = "ignore_file"
	KeyMarkerDir      = "marker_dir"
	KeyDefaultComment = "default_comment"
)

// Keys lists every recognized setting key.
var Keys = []string{KeyIgnoreFile, KeyMarkerDir, KeyDefaultComment}

// Settings holds resolved values.
type Settings struct {
	IgnoreFile     string
	MarkerDir      string
	DefaultComment string
}

// Options converts s into ignorance.Options rooted at dir.
func (s Settings) Options(dir string) ignorance.Options {
	return ignorance.Options{
		Dir:            dir,
		IgnoreFile:     s.IgnoreFile,
		MarkerDir:      s.MarkerDir,
		DefaultComment: s.DefaultComment,
	}
}

// Dir returns the config directory. IGNORANCE_HOME overrides ~/.ignorance.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the user config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load returns a Viper holding defaults, the user config file, the project
// file in projectDir (skipped when empty), and environment overrides.
// Missing files are not an error; malformed ones are.
func Load(projectDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyIgnoreFile, ignorance.DefaultIgnoreFile)
	v.SetDefault(KeyMarkerDir, ignorance.DefaultMarkerDir)
	v.SetDefault(KeyDefaultComment, ignorance.DefaultComment)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	if err := mergeFile(v, FilePath()); err != nil {
		return nil, err
	}
	if projectDir != "" {
		if err := mergeFile(v, filepath.Join(projectDir, branding.ProjectFile())); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Resolve extracts Settings from v.
func Resolve(v *viper.Viper) Settings {
	return Settings{
		IgnoreFile:     v.GetString(KeyIgnoreFile),
		MarkerDir:      v.GetString(KeyMarkerDir),
		DefaultComment: v.GetString(KeyDefaultComment),
	}
}

// Get returns a value from the user config file and environment. Returns
// empty string if not set.
func Get(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	v, err := Load("")
	if err != nil {
		return "", err
	}
	return v.GetString(key), nil
}

// Set writes a key-value pair to the user config file.
func Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	v := viper.New()
	v.SetConfigType(fileType)
	if err := mergeFile(v, configFile); err != nil {
		return err
	}
	v.Set(key, value)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func mergeFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

func checkKey(key string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q (valid keys: %v)", key, Keys)
	}
	return nil
}
