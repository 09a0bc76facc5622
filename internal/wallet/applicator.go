// Package wallet applies simplewallet transactions to global state.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/congo-pay/simplewallet/internal/address"
	"github.com/congo-pay/simplewallet/internal/ledger"
	"github.com/congo-pay/simplewallet/internal/payload"
	"github.com/congo-pay/simplewallet/internal/txerror"
)

// Applicator runs deposit and withdraw transactions. It keeps no state of its
// own between calls.
type Applicator struct {
	logger *slog.Logger
}

// NewApplicator builds an applicator that writes diagnostics to logger.
func NewApplicator(logger *slog.Logger) *Applicator {
	return &Applicator{logger: logger}
}

// Apply parses txn, reads the signer's balance record, applies the requested
// action and writes the new balance back. Nothing is written unless the
// whole transaction succeeds.
func (a *Applicator) Apply(ctx context.Context, txn Transaction, state State) (Result, error) {
	signer := txn.SignerPublicKey()

	req, err := payload.Parse(txn.Payload())
	if err != nil {
		return Result{}, err
	}

	addr := address.Derive(signer)
	a.logger.Debug("apply transaction",
		slog.String("signer", signer),
		slog.String("address", addr),
		slog.String("action", req.Action),
		slog.Uint64("amount", uint64(req.Amount)),
	)

	stored, found, err := state.Get(ctx, addr)
	if err != nil {
		return Result{}, fmt.Errorf("get state %s: %w", addr, err)
	}
	found = found && stored != ""

	var current uint32
	if found {
		v, err := strconv.ParseUint(stored, 10, 32)
		if err != nil {
			return Result{}, txerror.Wrap(txerror.KindCorruptState, err,
				"stored balance at %s is not an unsigned integer: %q", addr, stored)
		}
		current = uint32(v)
	}

	var balance uint32
	switch req.Action {
	case payload.ActionDeposit:
		balance, err = ledger.Deposit(current, req.Amount)
	case payload.ActionWithdraw:
		balance, err = ledger.Withdraw(current, found, req.Amount)
	default:
		return Result{}, txerror.New(txerror.KindUnknownAction, "invalid action: '%s'", req.Action)
	}
	if err != nil {
		return Result{}, ledgerError(err, req, signer)
	}

	if err := state.Set(ctx, addr, strconv.FormatUint(uint64(balance), 10)); err != nil {
		return Result{}, fmt.Errorf("set state %s: %w", addr, err)
	}

	a.logger.Debug("stored balance", slog.String("address", addr), slog.Uint64("balance", uint64(balance)))

	return Result{Address: addr, Action: req.Action, Amount: req.Amount, Balance: balance}, nil
}

func ledgerError(err error, req payload.Request, signer string) error {
	switch {
	case errors.Is(err, ledger.ErrAddressNotFound):
		return txerror.Wrap(txerror.KindAddressNotFound, err,
			"action was '%s', but address not found in state for key: %s", req.Action, signer)
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return txerror.Wrap(txerror.KindInsufficientFunds, err,
			"insufficient balance to withdraw %d for key: %s", req.Amount, signer)
	case errors.Is(err, ledger.ErrBalanceOverflow):
		return txerror.Wrap(txerror.KindBalanceOverflow, err,
			"deposit of %d would overflow balance for key: %s", req.Amount, signer)
	default:
		return err
	}
}
