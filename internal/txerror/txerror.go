// Package txerror carries the invalid-transaction error values produced while
// applying a simplewallet transaction. Every node must reject the same
// transactions for the same reasons, so the kind travels with the error all
// the way to the collaborator boundary.
package txerror

import (
	"errors"
	"fmt"
)

// Kind classifies why a transaction was rejected.
type Kind string

const (
	KindMalformedPayload  Kind = "malformed_payload"
	KindInvalidAmount     Kind = "invalid_amount"
	KindUnknownAction     Kind = "unknown_action"
	KindAddressNotFound   Kind = "address_not_found"
	KindInsufficientFunds Kind = "insufficient_funds"
	KindBalanceOverflow   Kind = "balance_overflow"
	KindCorruptState      Kind = "corrupt_state"
)

// Error is an invalid-transaction error. The collaborator rejects the
// transaction; the process keeps running.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an invalid-transaction error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an invalid-transaction error that keeps cause reachable through
// errors.Is and errors.As.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// IsInvalid reports whether err, or anything it wraps, is an invalid-transaction error.
func IsInvalid(err error) bool {
	var txErr *Error
	return errors.As(err, &txErr)
}

// KindOf returns the kind of the first invalid-transaction error in err's
// chain, or "" when there is none.
func KindOf(err error) Kind {
	var txErr *Error
	if errors.As(err, &txErr) {
		return txErr.Kind
	}
	return ""
}
