// Package cli defines the Cobra command tree for the ignorance CLI. The four
// policy commands, check, and apply forward to package ignorance; the
// remaining commands inspect configuration. Commands only handle flag
// parsing and I/O wiring.
package cli
