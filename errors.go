package goosig

import "fmt"

// code classifies an Error for programmatic handling via errors.Is.
type code int

const (
	codeInvalidParam code = iota + 1
	codeNotInvertible
	codeNoPrime
	codeInvalidSignature
	// codeAlloc marks a failed allocation. math/big never fails this way;
	// the code is kept for parity with the reference error taxonomy and
	// is never actually returned.
	codeAlloc
)

func (c code) String() string {
	switch c {
	case codeInvalidParam:
		return "invalid_param"
	case codeNotInvertible:
		return "not_invertible"
	case codeNoPrime:
		return "no_prime"
	case codeInvalidSignature:
		return "invalid_signature"
	case codeAlloc:
		return "alloc"
	default:
		return "unknown"
	}
}

// Error is the package's error type. Op names the failing operation
// (e.g. "NewGroup", "Verify"); Err, if set, wraps an underlying cause.
type Error struct {
	Code code
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("goosig: %s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("goosig: %s: %s", e.Op, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target shares this Error's Code, so callers can
// write errors.Is(err, goosig.ErrInvalidSignature).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newError(c code, op string, err error) *Error {
	return &Error{Code: c, Op: op, Err: err}
}

// Sentinel values for errors.Is comparisons. Only Code is compared, so
// these can be used directly: errors.Is(err, goosig.ErrInvalidSignature).
var (
	ErrInvalidParam     = &Error{Code: codeInvalidParam}
	ErrNotInvertible    = &Error{Code: codeNotInvertible}
	ErrNoPrime          = &Error{Code: codeNoPrime}
	ErrInvalidSignature = &Error{Code: codeInvalidSignature}
	ErrAlloc            = &Error{Code: codeAlloc}
)
