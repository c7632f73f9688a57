// Package config manages ignorance settings: the ignore file name, the
// repository marker directory, and the default comment for negotiated
// additions. Values are layered from defaults, the user file at
// ~/.ignorance/config.yaml, a .ignorance.yaml in the directory the command
// starts from, and IGNORANCE_* environment variables.
package config
