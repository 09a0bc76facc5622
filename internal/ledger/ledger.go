// Package ledger holds the balance state transitions of a simplewallet
// account. The functions are pure: the caller reads the stored balance,
// hands it in, and persists whatever comes back.
package ledger

import (
	"errors"
	"math"
)

var (
	// ErrAddressNotFound occurs when a withdrawal targets an address that has
	// never received a deposit.
	ErrAddressNotFound = errors.New("address not found")

	// ErrInsufficientFunds occurs when the balance is zero or lower than the
	// requested withdrawal.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrBalanceOverflow occurs when a deposit would push the balance past the
	// unsigned 32-bit range of a balance record.
	ErrBalanceOverflow = errors.New("balance overflow")
)

// MaxBalance is the largest balance a record can hold.
const MaxBalance = math.MaxUint32

// Deposit credits amount to current.
func Deposit(current, amount uint32) (uint32, error) {
	if amount > MaxBalance-current {
		return current, ErrBalanceOverflow
	}
	return current + amount, nil
}

// Withdraw debits amount from current. found reports whether a balance
// record exists at all; a missing record is not the same as a zero balance.
func Withdraw(current uint32, found bool, amount uint32) (uint32, error) {
	if !found {
		return 0, ErrAddressNotFound
	}
	if current == 0 || current < amount {
		return current, ErrInsufficientFunds
	}
	return current - amount, nil
}
