// Package ignorefile reads and appends to a version-control ignore file such
// as .gitignore. Lines are compared verbatim: there is no pattern matching,
// and existing content is never rewritten.
package ignorefile
