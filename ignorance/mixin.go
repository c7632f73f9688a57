package ignorance

// Ignorant is implemented by host types that expose the policies as their
// own methods.
type Ignorant interface {
	AdviseIgnorance(token string) error
	GuardIgnorance(token string) error
	NegotiateIgnorance(token string) error
	GuaranteeIgnorance(token, comment string) error
}

// Mixin forwards the Ignorant methods to a Policy. Embed it in a host type.
// A zero Mixin forwards to Default().
type Mixin struct {
	Policy Policy
}

var _ Ignorant = Mixin{}

func (m Mixin) policy() Policy {
	if m.Policy == nil {
		return Default()
	}
	return m.Policy
}

// AdviseIgnorance forwards to Policy.Advise.
func (m Mixin) AdviseIgnorance(token string) error {
	return m.policy().Advise(token)
}

// GuardIgnorance forwards to Policy.Guard.
func (m Mixin) GuardIgnorance(token string) error {
	return m.policy().Guard(token)
}

// NegotiateIgnorance forwards to Policy.Negotiate.
func (m Mixin) NegotiateIgnorance(token string) error {
	return m.policy().Negotiate(token)
}

// GuaranteeIgnorance forwards to Policy.Guarantee.
func (m Mixin) GuaranteeIgnorance(token, comment string) error {
	return m.policy().Guarantee(token, comment)
}
