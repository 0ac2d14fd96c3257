// Package errutil contains helpers for combining errors.
package errutil

import "strings"

// Multi combines errors into one. Nil errors are dropped; if nothing is left
// it returns nil, and a single remaining error is returned unchanged. Nested
// results of Multi are flattened.
func Multi(errs ...error) error {
	var kept multiError
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
		case multiError:
			kept = append(kept, err...)
		default:
			kept = append(kept, err)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return kept
}

type multiError []error

func (me multiError) Error() string {
	var sb strings.Builder
	sb.WriteString("multiple errors: ")
	for i, err := range me {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap returns the first error, so that errors.Is can see through terminal
// restore failures.
func (me multiError) Unwrap() error { return me[0] }
