package mechanism

// Validator checks properties that the base handshake does not handle
// itself. Returning an error aborts the parse; implementations should wrap
// protocol.ErrPropertyRejected.
type Validator interface {
	ValidateProperty(name string, value []byte) error
}

// AcceptAll is the default Validator.
type AcceptAll struct{}

func (AcceptAll) ValidateProperty(string, []byte) error { return nil }

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(name string, value []byte) error

func (f ValidatorFunc) ValidateProperty(name string, value []byte) error {
	return f(name, value)
}
