// Package repo locates the root of a version-controlled project by walking
// from a starting directory up through its ancestors until it finds the
// marker directory (".git" by default).
package repo
