package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "ignorance"},
		{"HomeDir", HomeDir(), ".ignorance"},
		{"EnvPrefix", EnvPrefix(), "IGNORANCE"},
		{"GoModule", GoModule(), "github.com/agentx-labs/ignorance"},
		{"ProjectFile", ProjectFile(), ".ignorance.yaml"},
		{"ManifestFile", ManifestFile(), "ignorance.tokens.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("ignore_file"); got != "IGNORANCE_IGNORE_FILE" {
		t.Errorf("EnvVar() = %q, want %q", got, "IGNORANCE_IGNORE_FILE")
	}
}
