// Package manifest handles token manifests: YAML files listing the paths a
// generator produces together with the policy to apply to each. Manifests
// are validated against an embedded JSON Schema before they are parsed, and
// an optional semver constraint pins the ignorance versions they work with.
package manifest
