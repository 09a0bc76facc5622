// Package sim runs the wallet applicator against a local state store so the
// transaction family can be exercised without a validator network.
package sim

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/congo-pay/simplewallet/internal/address"
	"github.com/congo-pay/simplewallet/internal/handler"
	"github.com/congo-pay/simplewallet/internal/statestore"
	"github.com/congo-pay/simplewallet/internal/wallet"
)

var (
	// ErrMissingSigner indicates a submission without a signer public key.
	ErrMissingSigner = errors.New("signer_public_key is required")
	// ErrInvalidAddress indicates an address outside the simplewallet namespace.
	ErrInvalidAddress = errors.New("not a simplewallet address")
	// ErrNotFound indicates there is no state entry at an address.
	ErrNotFound = errors.New("state entry not found")
)

// Service plays the validator's part for a single node: it scopes state to the
// family's namespaces and applies one transaction at a time.
type Service struct {
	mu         sync.Mutex
	store      statestore.Store
	applicator *wallet.Applicator
	reg        handler.Registration
}

// NewService builds a simulator over store.
func NewService(store statestore.Store, applicator *wallet.Applicator, reg handler.Registration) *Service {
	return &Service{
		store:      statestore.Scoped(store, reg.Prefixes...),
		applicator: applicator,
		reg:        reg,
	}
}

// SubmitInput is one transaction as a client would batch it.
type SubmitInput struct {
	SignerPublicKey string
	Payload         string
}

// Submit applies a transaction. Invalid transactions come back as
// txerror values and leave state untouched.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (wallet.Result, error) {
	if input.SignerPublicKey == "" {
		return wallet.Result{}, ErrMissingSigner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txn := wallet.Txn{Signer: input.SignerPublicKey, Data: []byte(input.Payload)}
	return s.applicator.Apply(ctx, txn, s.store)
}

// Balance is the balance record of one wallet owner.
type Balance struct {
	PublicKey string
	Address   string
	Amount    string
	Found     bool
}

// Balance returns the stored balance for publicKey. A wallet that has never
// received a deposit reports Found false.
func (s *Service) Balance(ctx context.Context, publicKey string) (Balance, error) {
	addr := address.Derive(publicKey)
	value, found, err := s.store.Get(ctx, addr)
	if err != nil {
		return Balance{}, fmt.Errorf("read balance: %w", err)
	}
	found = found && value != ""
	if !found {
		value = "0"
	}
	return Balance{PublicKey: publicKey, Address: addr, Amount: value, Found: found}, nil
}

// State returns the raw entry at addr.
func (s *Service) State(ctx context.Context, addr string) ([]byte, error) {
	if !address.Valid(addr) {
		return nil, ErrInvalidAddress
	}
	value, found, err := s.store.Get(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	if !found {
		return nil, ErrNotFound
	}
	return []byte(value), nil
}

// Registration returns the family metadata the simulator serves.
func (s *Service) Registration() handler.Registration {
	return s.reg
}

// Ping checks the backing store.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
