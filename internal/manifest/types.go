package manifest

import "github.com/agentx-labs/ignorance/ignorance"

// DefaultAction applies to entries when neither the entry nor the manifest names a policy.
const DefaultAction = ignorance.ActionAdvise

// Manifest is a parsed token manifest.
type Manifest struct {
	Requires string  `yaml:"requires,omitempty" json:"requires,omitempty"`
	Policy   string  `yaml:"policy,omitempty" json:"policy,omitempty"`
	Comment  string  `yaml:"comment,omitempty" json:"comment,omitempty"`
	Tokens   []Entry `yaml:"tokens" json:"tokens"`
}

// Entry is one token in a manifest. Empty fields inherit the manifest's values.
type Entry struct {
	Token   string `yaml:"token" json:"token"`
	Policy  string `yaml:"policy,omitempty" json:"policy,omitempty"`
	Comment string `yaml:"comment,omitempty" json:"comment,omitempty"`
}

// Step is an entry with its effective policy and comment.
type Step struct {
	Token   string
	Action  ignorance.Action
	Comment string
}
