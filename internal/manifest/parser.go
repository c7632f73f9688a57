package manifest

import (
	"fmt"
	"os"

	"github.com/agentx-labs/ignorance/ignorance"
	"go.yaml.in/yaml/v3"
)

// Parse decodes manifest YAML without schema validation.
func Parse(data []byte, path string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// Load reads the manifest at path, validates it against the schema, parses
// it, and checks its requires constraint against version.
func Load(path, version string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Path: path, Issues: result.Issues}
	}

	m, err := Parse(data, path)
	if err != nil {
		return nil, err
	}

	if err := CheckRequires(m.Requires, version); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Steps resolves every entry's effective policy and comment.
func (m *Manifest) Steps() ([]Step, error) {
	defaultAction := DefaultAction
	if m.Policy != "" {
		a, err := ignorance.ParseAction(m.Policy)
		if err != nil {
			return nil, err
		}
		defaultAction = a
	}

	steps := make([]Step, 0, len(m.Tokens))
	for i, e := range m.Tokens {
		action := defaultAction
		if e.Policy != "" {
			a, err := ignorance.ParseAction(e.Policy)
			if err != nil {
				return nil, fmt.Errorf("tokens[%d]: %w", i, err)
			}
			action = a
		}

		comment := e.Comment
		if comment == "" {
			comment = m.Comment
		}

		steps = append(steps, Step{Token: e.Token, Action: action, Comment: comment})
	}
	return steps, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
