package ignorance

import (
	"fmt"
	"strings"
)

// Action names one of the four policies.
type Action string

const (
	ActionAdvise    Action = "advise"
	ActionGuard     Action = "guard"
	ActionNegotiate Action = "negotiate"
	ActionGuarantee Action = "guarantee"
)

// Actions lists every Action in escalating order.
var Actions = []Action{ActionAdvise, ActionGuard, ActionNegotiate, ActionGuarantee}

// ParseAction converts a policy name to an Action. Matching ignores case.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case ActionAdvise, ActionGuard, ActionNegotiate, ActionGuarantee:
		return a, nil
	}
	return "", fmt.Errorf("unknown policy %q (want advise, guard, negotiate or guarantee)", s)
}

// Apply runs the policy named by a. comment is used only by ActionGuarantee.
func Apply(p Policy, a Action, token, comment string) error {
	switch a {
	case ActionAdvise:
		return p.Advise(token)
	case ActionGuard:
		return p.Guard(token)
	case ActionNegotiate:
		return p.Negotiate(token)
	case ActionGuarantee:
		return p.Guarantee(token, comment)
	}
	return fmt.Errorf("unknown policy %q", a)
}
