package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// devVersion is the version string of builds made without ldflags.
const devVersion = "dev"

// CheckRequires reports whether version satisfies the semver constraint.
// An empty constraint always passes, as do development builds.
func CheckRequires(constraint, version string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", constraint, err)
	}

	if version == "" || version == devVersion {
		return nil
	}

	v, err := parseSemver(version)
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", version, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("requires ignorance %s, running %s", constraint, version)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
