package statestore

import (
	"context"
	"fmt"
	"strings"
)

// scopedStore restricts reads and writes to a set of namespace prefixes, the
// same guarantee the validator gives a transaction handler.
type scopedStore struct {
	inner    Store
	prefixes []string
}

// Scoped wraps inner so that only addresses under one of prefixes are reachable.
func Scoped(inner Store, prefixes ...string) Store {
	return &scopedStore{inner: inner, prefixes: prefixes}
}

func (s *scopedStore) permitted(address string) error {
	for _, p := range s.prefixes {
		if strings.HasPrefix(address, p) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrOutsideNamespace, address)
}

func (s *scopedStore) Get(ctx context.Context, address string) (string, bool, error) {
	if err := s.permitted(address); err != nil {
		return "", false, err
	}
	return s.inner.Get(ctx, address)
}

func (s *scopedStore) Set(ctx context.Context, address, value string) error {
	if err := s.permitted(address); err != nil {
		return err
	}
	return s.inner.Set(ctx, address, value)
}

func (s *scopedStore) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}
