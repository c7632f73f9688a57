package ignorance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/agentx-labs/ignorance/internal/ignorefile"
	"github.com/agentx-labs/ignorance/internal/repo"
)

// Defaults applied by New for zero-valued Options fields.
const (
	DefaultIgnoreFile = ignorefile.DefaultName
	DefaultMarkerDir  = repo.DefaultMarker
	DefaultComment    = "added by ignorance"
)

// Options configures an Ignorance. Zero values select the defaults.
type Options struct {
	// Dir is where the repository search starts. Empty means the working
	// directory at the time of each call.
	Dir string

	// IgnoreFile is the ignore file name at the repository root.
	// Default: DefaultIgnoreFile.
	IgnoreFile string

	// MarkerDir is the directory that marks a repository root.
	// Default: DefaultMarkerDir.
	MarkerDir string

	// DefaultComment is written above tokens that Negotiate adds.
	// Default: DefaultComment.
	DefaultComment string

	// In supplies Negotiate's answers. Default: os.Stdin.
	In io.Reader

	// Out receives Negotiate's prompt and confirmation. Default: os.Stdout.
	Out io.Writer

	// Err receives warnings. Default: os.Stderr.
	Err io.Writer
}

// Policy is the set of operations a caller can apply to a token.
type Policy interface {
	Advise(token string) error
	Guard(token string) error
	Negotiate(token string) error
	Guarantee(token, comment string) error
}

// Ignorance applies the policies against one repository configuration.
// It keeps no state between calls: the ignore file is read every time.
type Ignorance struct {
	opts    Options
	locator repo.Locator
	in      *bufio.Reader
	report  reporter
}

var _ Policy = (*Ignorance)(nil)

// stdin is shared so that buffered but unread input survives across
// package-level calls.
var stdin = sync.OnceValue(func() *bufio.Reader {
	return bufio.NewReader(os.Stdin)
})

// New returns an Ignorance for opts.
func New(opts Options) *Ignorance {
	if opts.IgnoreFile == "" {
		opts.IgnoreFile = DefaultIgnoreFile
	}
	if opts.MarkerDir == "" {
		opts.MarkerDir = DefaultMarkerDir
	}
	if opts.DefaultComment == "" {
		opts.DefaultComment = DefaultComment
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	var in *bufio.Reader
	switch r := opts.In.(type) {
	case nil:
		in = stdin()
	case *bufio.Reader:
		in = r
	default:
		in = bufio.NewReader(r)
	}

	return &Ignorance{
		opts:    opts,
		locator: repo.Locator{Marker: opts.MarkerDir},
		in:      in,
		report:  newReporter(opts.Out, opts.Err),
	}
}

// Options returns the effective options, with defaults filled in.
func (ig *Ignorance) Options() Options {
	return ig.opts
}

// IsRepository reports whether a repository root can be found from Dir.
func (ig *Ignorance) IsRepository() bool {
	return ig.locator.IsRepository(ig.opts.Dir)
}

// Root returns the repository root.
func (ig *Ignorance) Root() (string, error) {
	return ig.locator.Root(ig.opts.Dir)
}

// IgnoreFilePath returns the absolute path of the ignore file.
func (ig *Ignorance) IgnoreFilePath() (string, error) {
	f, err := ig.file()
	if err != nil {
		return "", err
	}
	return f.Path, nil
}

// IsIgnored reports whether token is a line of the ignore file.
func (ig *Ignorance) IsIgnored(token string) (bool, error) {
	_, present, err := ig.lookup(token)
	return present, err
}

// Advise writes a warning to Err when token is missing. It returns an error
// only when the repository or the ignore file cannot be read.
func (ig *Ignorance) Advise(token string) error {
	f, present, err := ig.lookup(token)
	if err != nil || present {
		return err
	}
	ig.report.warn(token, f.Name(), f.Path)
	return nil
}

// Guard returns an *IgnorefileError when token is missing.
func (ig *Ignorance) Guard(token string) error {
	f, present, err := ig.lookup(token)
	if err != nil || present {
		return err
	}
	return &IgnorefileError{Token: token, File: f.Name(), Path: f.Path}
}

// Negotiate asks whether to add a missing token and reads one line of input.
// "y" or "yes" (any case) appends the token under the default comment and
// confirms on Out. Any other answer, including end of input, falls back to
// the Advise warning.
func (ig *Ignorance) Negotiate(token string) error {
	f, present, err := ig.lookup(token)
	if err != nil || present {
		return err
	}
	if err := ignorefile.CheckLine(token, ig.opts.DefaultComment); err != nil {
		return err
	}

	ig.report.prompt(token, f.Name())
	answer, err := ig.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading answer: %w", err)
	}

	if !affirmative(answer) {
		ig.report.warn(token, f.Name(), f.Path)
		return nil
	}

	if err := f.Append(token, ig.opts.DefaultComment); err != nil {
		return err
	}
	ig.report.confirm(token, f.Name())
	return nil
}

// Guarantee appends a missing token, preceded by a blank line and, when
// comment is not empty, a "# comment" line. It writes nothing when the token
// is already present. A token or comment containing a line break is rejected
// with ErrLineBreak.
func (ig *Ignorance) Guarantee(token, comment string) error {
	f, present, err := ig.lookup(token)
	if err != nil || present {
		return err
	}
	if err := ignorefile.CheckLine(token, comment); err != nil {
		return err
	}
	return f.Append(token, comment)
}

func (ig *Ignorance) file() (ignorefile.File, error) {
	root, err := ig.Root()
	if err != nil {
		return ignorefile.File{}, err
	}
	return ignorefile.At(root, ig.opts.IgnoreFile), nil
}

func (ig *Ignorance) lookup(token string) (ignorefile.File, bool, error) {
	f, err := ig.file()
	if err != nil {
		return f, false, err
	}
	present, err := f.Contains(token)
	if err != nil {
		return f, false, err
	}
	return f, present, nil
}

func affirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// Default returns an Ignorance with default Options.
func Default() *Ignorance {
	return New(Options{})
}

// Advise applies Ignorance.Advise with default options.
func Advise(token string) error { return Default().Advise(token) }

// Guard applies Ignorance.Guard with default options.
func Guard(token string) error { return Default().Guard(token) }

// Negotiate applies Ignorance.Negotiate with default options.
func Negotiate(token string) error { return Default().Negotiate(token) }

// Guarantee applies Ignorance.Guarantee with default options.
func Guarantee(token, comment string) error { return Default().Guarantee(token, comment) }
