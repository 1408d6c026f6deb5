package driver

import (
	"errors"
	"testing"
)

// TestErrorIsMatchesByKind checks that errors.Is matches a wrapped *Error
// against a bare Kind sentinel, ignoring Op and any wrapped cause.
func TestErrorIsMatchesByKind(t *testing.T) {
	err := &Error{Op: "Read", Kind: InvalidAddress}
	if !errors.Is(err, kindErr(InvalidAddress)) {
		t.Fatalf("errors.Is did not match on InvalidAddress")
	}
	if errors.Is(err, kindErr(NonMonotonicAdvance)) {
		t.Fatalf("errors.Is matched the wrong Kind")
	}
}

// TestErrorUnwrapExposesCause checks that Unwrap surfaces a wrapped cause
// for errors.Is/errors.As chains that need it.
func TestErrorUnwrapExposesCause(t *testing.T) {
	cause := errors.New("boundary check failed")
	err := &Error{Op: "Write", Kind: InvalidAddress, Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is did not find the wrapped cause")
	}
}
