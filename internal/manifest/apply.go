package manifest

import (
	"fmt"

	"github.com/agentx-labs/ignorance/ignorance"
)

// Apply resolves m's steps and runs them in order against p, stopping at the
// first error. It returns the number of steps that completed.
func Apply(p ignorance.Policy, m *Manifest) (int, error) {
	steps, err := m.Steps()
	if err != nil {
		return 0, err
	}

	for i, s := range steps {
		if err := ignorance.Apply(p, s.Action, s.Token, s.Comment); err != nil {
			return i, fmt.Errorf("%s %q: %w", s.Action, s.Token, err)
		}
	}
	return len(steps), nil
}
