// Package statestore provides local stand-ins for the validator's global
// state, used by the simulator and by tests. Values are the raw strings the
// transaction family writes; the store does not interpret them.
package statestore

import (
	"context"
	"errors"
)

// ErrOutsideNamespace is returned when an address lies outside the namespaces
// a scoped store was opened for.
var ErrOutsideNamespace = errors.New("address outside permitted namespace")

// Store reads and writes state entries by address.
type Store interface {
	Get(ctx context.Context, address string) (string, bool, error)
	Set(ctx context.Context, address, value string) error
	Ping(ctx context.Context) error
}
