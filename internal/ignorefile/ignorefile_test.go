package ignorefile

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeIgnore(t *testing.T, dir, content string) File {
	t.Helper()
	f := At(dir, "")
	if err := os.WriteFile(f.Path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return f
}

func readIgnore(t *testing.T, f File) string {
	t.Helper()
	content, err := os.ReadFile(f.Path)
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}

func TestAt(t *testing.T) {
	f := At("/repo", "")
	if f.Path != filepath.Join("/repo", ".gitignore") {
		t.Errorf("Path = %q, want default .gitignore", f.Path)
	}
	if f.Name() != ".gitignore" {
		t.Errorf("Name() = %q, want %q", f.Name(), ".gitignore")
	}

	f = At("/repo", ".hgignore")
	if f.Name() != ".hgignore" {
		t.Errorf("Name() = %q, want %q", f.Name(), ".hgignore")
	}
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single line", "foo.rb\n", []string{"foo.rb"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"blank lines kept", "a\n\n# c\nb\n", []string{"a", "", "# c", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"whitespace preserved", " a \n", []string{" a "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := writeIgnore(t, t.TempDir(), tt.content)
			got, err := f.ReadLines()
			if err != nil {
				t.Fatalf("ReadLines() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ReadLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadLines_MissingFile(t *testing.T) {
	lines, err := At(t.TempDir(), "").ReadLines()
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("ReadLines() = %q, want empty", lines)
	}
}

func TestContains(t *testing.T) {
	lines := []string{"stuff.txt", "", "# foo.rb", "build/", " spaced "}

	tests := []struct {
		token string
		want  bool
	}{
		{"stuff.txt", true},
		{"build/", true},
		{"build", false},
		{"foo.rb", false},
		{"# foo.rb", true},
		{"spaced", false},
		{" spaced ", true},
		{"STUFF.TXT", false},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := Contains(tt.token, lines); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}

	if Contains("", nil) {
		t.Error("Contains on no lines = true, want false")
	}
}

func TestAppend_WithComment(t *testing.T) {
	f := writeIgnore(t, t.TempDir(), "stuff.txt\n")

	if err := f.Append("foo.rb", "a comment"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	want := "stuff.txt\n\n# a comment\nfoo.rb\n"
	if got := readIgnore(t, f); got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestAppend_WithoutComment(t *testing.T) {
	f := writeIgnore(t, t.TempDir(), "stuff.txt\n")

	if err := f.Append("foo.rb", ""); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	want := "stuff.txt\n\nfoo.rb\n"
	if got := readIgnore(t, f); got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestAppend_NoTrailingNewline(t *testing.T) {
	f := writeIgnore(t, t.TempDir(), "stuff.txt")

	if err := f.Append("foo.rb", "a comment"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	want := "stuff.txt\n\n# a comment\nfoo.rb\n"
	if got := readIgnore(t, f); got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestAppend_CreatesFileIfMissing(t *testing.T) {
	f := At(t.TempDir(), "")

	if err := f.Append("foo.rb", "a comment"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	want := "\n# a comment\nfoo.rb\n"
	if got := readIgnore(t, f); got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestAppend_ThenContains(t *testing.T) {
	f := writeIgnore(t, t.TempDir(), "stuff.txt\n")

	if err := f.Append("tmp/cache", "cache"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	ok, err := f.Contains("tmp/cache")
	if err != nil {
		t.Fatalf("Contains() error = %v", err)
	}
	if !ok {
		t.Error("Contains() = false after Append, want true")
	}
}

func TestAppend_PreservesExistingBytes(t *testing.T) {
	initial := "node_modules/\r\n# keep me\r\n.env"
	f := writeIgnore(t, t.TempDir(), initial)

	if err := f.Append("dist/", ""); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got := readIgnore(t, f)
	if got[:len(initial)] != initial {
		t.Errorf("existing content altered: %q", got)
	}
}

func TestCheckLine(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		comment string
		wantErr bool
	}{
		{"plain", "foo.rb", "a comment", false},
		{"no comment", "foo.rb", "", false},
		{"empty token", "", "", false},
		{"newline in token", "a\nb", "", true},
		{"trailing carriage return", "foo\r", "", true},
		{"crlf in token", "foo\r\n", "", true},
		{"newline in comment", "foo.rb", "x\ny", true},
		{"carriage return in comment", "foo.rb", "x\r", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLine(tt.token, tt.comment)
			if tt.wantErr {
				if !errors.Is(err, ErrLineBreak) {
					t.Errorf("CheckLine(%q, %q) error = %v, want ErrLineBreak", tt.token, tt.comment, err)
				}
				return
			}
			if err != nil {
				t.Errorf("CheckLine(%q, %q) error = %v", tt.token, tt.comment, err)
			}
		})
	}
}

func TestAppend_RejectsLineBreaks(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		comment string
	}{
		{"newline in token", "a\nb", ""},
		{"trailing carriage return", "foo\r", "a comment"},
		{"newline in comment", "foo.rb", "x\ny"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := writeIgnore(t, t.TempDir(), "stuff.txt\n")

			for i := 0; i < 2; i++ {
				if err := f.Append(tt.token, tt.comment); !errors.Is(err, ErrLineBreak) {
					t.Fatalf("Append() #%d error = %v, want ErrLineBreak", i, err)
				}
			}
			if got := readIgnore(t, f); got != "stuff.txt\n" {
				t.Errorf("content = %q, want unchanged", got)
			}
		})
	}
}
