package ignorance

import (
	"errors"
	"fmt"

	"github.com/agentx-labs/ignorance/internal/ignorefile"
	"github.com/agentx-labs/ignorance/internal/repo"
)

// RepositoryNotFoundError is returned by every operation when no repository
// root can be located.
type RepositoryNotFoundError = repo.NotFoundError

var (
	// ErrRepositoryNotFound matches any *RepositoryNotFoundError via errors.Is.
	ErrRepositoryNotFound = repo.ErrNotFound

	// ErrLineBreak is returned by Guarantee and Negotiate for tokens or
	// comments that contain "\n" or "\r".
	ErrLineBreak = ignorefile.ErrLineBreak

	// ErrNotIgnored matches any *IgnorefileError via errors.Is.
	ErrNotIgnored = errors.New("token not ignored")
)

// IgnorefileError is returned by Guard when the token is missing from the
// ignore file.
type IgnorefileError struct {
	Token string // the missing token
	File  string // ignore file name, e.g. ".gitignore"
	Path  string // absolute path of the ignore file
}

func (e *IgnorefileError) Error() string {
	return fmt.Sprintf(`"%s" is not ignored by version control: add "%s" to %s (%s)`,
		e.Token, e.Token, e.File, e.Path)
}

// Is lets errors.Is(err, ErrNotIgnored) match.
func (e *IgnorefileError) Is(target error) bool {
	return target == ErrNotIgnored
}
