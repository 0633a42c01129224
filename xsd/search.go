package xsd

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolved is wrapped by a ResolveError when no declaration
	// matches a reference.
	ErrUnresolved = errors.New("no matching declaration")
	// ErrAmbiguous is wrapped by a ResolveError when more than one
	// declaration matches a reference.
	ErrAmbiguous = errors.New("more than one matching declaration")
)

// A ResolveError is returned when a reference cannot be matched to
// exactly one declaration.
type ResolveError struct {
	Ref     *Element
	Matches int
	Err     error
}

func (err *ResolveError) Error() string {
	return fmt.Sprintf("resolve ref=%q: %v (found %d)", err.Ref.OriginalName, err.Err, err.Matches)
}

func (err *ResolveError) Unwrap() error {
	return err.Err
}

// Resolve returns the declaration that ref stands in for: the only
// Element in flat that has the same Name and is not itself a reference.
// If ref is not a reference, it is returned as is.
func Resolve(flat []*Element, ref *Element) (*Element, error) {
	if !ref.Reference {
		return ref, nil
	}
	var match *Element
	n := 0
	for _, el := range flat {
		if el.Reference || el.Name != ref.Name {
			continue
		}
		match = el
		n++
	}
	switch n {
	case 0:
		return nil, &ResolveError{Ref: ref, Err: ErrUnresolved}
	case 1:
		return match, nil
	}
	return nil, &ResolveError{Ref: ref, Matches: n, Err: ErrAmbiguous}
}
