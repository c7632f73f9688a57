package manifest

import (
	"strings"
	"testing"
)

func TestValidateFile_ValidManifests(t *testing.T) {
	for _, file := range []string{"valid-full.yaml", "valid-minimal.yaml"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	invalidFiles := []struct {
		file    string
		desc    string
		keyword string
	}{
		{"invalid-bad-policy.yaml", "policy outside enum", "enum"},
		{"invalid-missing-tokens.yaml", "missing required tokens", "required"},
		{"invalid-unknown-field.yaml", "unknown entry field", "additionalProperties"},
		{"invalid-empty-token.yaml", "empty and missing token", ""},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Fatalf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
			if tt.keyword == "" {
				return
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("no %q issue in %+v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-syntax.yaml")); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	if _, err := ValidateFile(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestInvalidError_Message(t *testing.T) {
	one := &InvalidError{
		Path:   "m.yaml",
		Issues: []ValidationIssue{{Path: "/tokens/0/policy", Message: "bad value", Keyword: "enum"}},
	}
	if got := one.Error(); !strings.Contains(got, "1 validation issue:") || !strings.Contains(got, "/tokens/0/policy: bad value") {
		t.Errorf("Error() = %q", got)
	}

	two := &InvalidError{
		Path:   "m.yaml",
		Issues: []ValidationIssue{{Message: "a"}, {Message: "b"}},
	}
	if got := two.Error(); !strings.Contains(got, "2 validation issues: a; b") {
		t.Errorf("Error() = %q", got)
	}
}
