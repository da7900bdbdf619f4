package pwgen

// ErrorKind identifies why a password policy was rejected.
type ErrorKind int

const (
	// NoCategorySelected means no character category was enabled.
	NoCategorySelected ErrorKind = iota + 1
	// AlphabetTooSmall means fewer than MinAlphabet distinct characters
	// remain after filtering.
	AlphabetTooSmall
	// PolicyUnsatisfiable means every category lost all of its characters
	// to filtering.
	PolicyUnsatisfiable
)

func (k ErrorKind) String() string {
	switch k {
	case NoCategorySelected:
		return "NoCategorySelected"
	case AlphabetTooSmall:
		return "AlphabetTooSmall"
	case PolicyUnsatisfiable:
		return "PolicyUnsatisfiable"
	}
	return "unknown"
}

// PolicyError is returned when a Request cannot be satisfied. Every
// PolicyError is a deterministic function of the request.
type PolicyError struct {
	Kind ErrorKind
}

func (e *PolicyError) Error() string {
	switch e.Kind {
	case NoCategorySelected:
		return "select at least one character category"
	case AlphabetTooSmall:
		return "the available alphabet is too small"
	case PolicyUnsatisfiable:
		return "the character constraints cannot be satisfied"
	}
	return "invalid password policy"
}

// Is reports whether target is a PolicyError of the same kind.
func (e *PolicyError) Is(target error) bool {
	t, ok := target.(*PolicyError)
	return ok && t.Kind == e.Kind
}

var (
	// ErrNoCategorySelected is returned when a request enables no category.
	ErrNoCategorySelected = &PolicyError{Kind: NoCategorySelected}

	// ErrAlphabetTooSmall is returned when the filtered alphabet holds fewer
	// than MinAlphabet characters.
	ErrAlphabetTooSmall = &PolicyError{Kind: AlphabetTooSmall}

	// ErrPolicyUnsatisfiable is returned when every category bucket is empty
	// after filtering.
	ErrPolicyUnsatisfiable = &PolicyError{Kind: PolicyUnsatisfiable}
)
