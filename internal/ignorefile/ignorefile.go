package ignorefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultName is the conventional ignore file name.
const DefaultName = ".gitignore"

const filePerm os.FileMode = 0o644

// ErrLineBreak is returned when a token or comment would span more than one line.
var ErrLineBreak = errors.New("contains a line break")

// CheckLine rejects a token or comment that ReadLines could not return
// unchanged after Append: any "\n" or "\r" splits or alters the line.
func CheckLine(token, comment string) error {
	if strings.ContainsAny(token, "\r\n") {
		return fmt.Errorf("token %q: %w", token, ErrLineBreak)
	}
	if strings.ContainsAny(comment, "\r\n") {
		return fmt.Errorf("comment %q: %w", comment, ErrLineBreak)
	}
	return nil
}

// File is an ignore file at a fixed path. Nothing is cached: every call
// reads or writes the file on disk.
type File struct {
	Path string
}

// At returns the ignore file called name inside root. An empty name means DefaultName.
func At(root, name string) File {
	if name == "" {
		name = DefaultName
	}
	return File{Path: filepath.Join(root, name)}
}

// Name returns the base name of the file, e.g. ".gitignore".
func (f File) Name() string {
	return filepath.Base(f.Path)
}

// ReadLines returns the file's lines in order without their line terminators.
// A missing file reads as no lines.
func (f File) ReadLines() ([]string, error) {
	content, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", f.Name(), err)
	}
	return splitLines(string(content)), nil
}

// Contains reports whether the file has a line equal to token.
func (f File) Contains(token string) (bool, error) {
	lines, err := f.ReadLines()
	if err != nil {
		return false, err
	}
	return Contains(token, lines), nil
}

// Append adds a blank separator line, then "# <comment>" when comment is not
// empty, then token. The file is created if it does not exist. If the existing
// content lacks a trailing newline one is written first so the separator is
// still a blank line. Tokens and comments containing line breaks are
// rejected with ErrLineBreak.
func (f File) Append(token, comment string) error {
	if err := CheckLine(token, comment); err != nil {
		return err
	}

	content, err := os.ReadFile(f.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", f.Name(), err)
	}

	var b strings.Builder
	if len(content) > 0 && content[len(content)-1] != '\n' {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if comment != "" {
		b.WriteString("# " + comment + "\n")
	}
	b.WriteString(token + "\n")

	out, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("opening %s for append: %w", f.Name(), err)
	}

	if _, err := out.WriteString(b.String()); err != nil {
		out.Close()
		return fmt.Errorf("writing to %s: %w", f.Name(), err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", f.Name(), err)
	}
	return nil
}

// Contains reports whether token equals one of lines exactly.
func Contains(token string, lines []string) bool {
	return slices.Contains(lines, token)
}

// splitLines splits on "\n" and drops a trailing "\r" from each line, so
// CRLF files compare the same as LF files.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
