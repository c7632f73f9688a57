// Package ignorance checks that generated files are excluded from version
// control.
//
// A token is a path or pattern that should appear in the repository's ignore
// file (.gitignore by default). Tokens are compared with the file's lines
// verbatim; no gitignore pattern semantics are applied. Four policies decide
// what happens when a token is missing:
//
//   - Advise prints a warning to the error stream.
//   - Guard returns an *IgnorefileError.
//   - Negotiate asks on the console whether to add it.
//   - Guarantee appends it, optionally under a comment.
//
// When the token is already present every policy is silent and nothing is
// written.
//
// # Basic Usage
//
//	ig := ignorance.New(ignorance.Options{})
//	if err := ig.Guarantee("tmp/cache/", "generated by mytool"); err != nil {
//	    return err
//	}
//
// The package-level functions use the current working directory and the
// process's standard streams:
//
//	ignorance.Advise(".env")
//
// # Host Types
//
// Types that want the policies as their own methods embed Mixin:
//
//	type Generator struct {
//	    ignorance.Mixin
//	}
//
//	g := Generator{Mixin: ignorance.Mixin{Policy: ignorance.New(opts)}}
//	g.GuardIgnorance("build/")
//
// # Repository Root
//
// The ignore file lives at the repository root: the nearest directory, from
// Options.Dir upward, containing the marker directory (.git by default). When
// none exists every operation returns a *RepositoryNotFoundError.
package ignorance
