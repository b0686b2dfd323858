package balance

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrInvalidAmount is returned when an operation amount is zero or
	// negative, or when an initial balance is negative.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientBalance is returned when a withdrawal amount exceeds
	// the current balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Account holds a single monetary balance and applies deposits and
// withdrawals atomically.
// Account is safe for concurrent use by multiple goroutines without
// external locking.
//
// The balance is published as an immutable [Decimal] snapshot behind an
// atomic pointer.
// Mutations use optimistic concurrency: each operation reads the current
// snapshot, computes a replacement, and publishes it with a compare-and-swap,
// redoing the whole computation from a fresh read whenever another writer
// committed first.
// There is no mutual exclusion and no blocking wait, so readers never
// observe a torn or intermediate balance.
//
// After every successful operation the published balance has exactly the
// configured scale; amounts with more fractional digits are carried exactly
// through the arithmetic and rounded once, at the commit point, using the
// configured [RoundingPolicy].
//
// The zero value is not usable; construct accounts with [NewAccount] or
// [NewAccountWithPolicy].
type Account struct {
	scale   int
	policy  RoundingPolicy
	balance atomic.Pointer[Decimal]

	adds        atomic.Uint64
	withdrawals atomic.Uint64
	conflicts   atomic.Uint64
}

// AccountStats is a point-in-time snapshot of an account's operation counters.
// See also method [Account.Stats].
type AccountStats struct {
	// Adds is the number of committed add operations.
	Adds uint64
	// Withdrawals is the number of committed withdrawals.
	Withdrawals uint64
	// Conflicts is the number of publish attempts that lost to a concurrent
	// writer and were retried.
	Conflicts uint64
}

// NewAccount returns an account with the given initial balance, rescaled to
// the given number of fractional digits using [RoundHalfEven].
// See also constructor [NewAccountWithPolicy].
//
// NewAccount returns an error if:
//   - the initial balance is negative ([ErrInvalidAmount]);
//   - the scale is negative.
func NewAccount(initial Decimal, scale int) (*Account, error) {
	return NewAccountWithPolicy(initial, scale, RoundHalfEven)
}

// NewAccountWithPolicy is like [NewAccount] but commits balances using the
// given rounding policy.
func NewAccountWithPolicy(initial Decimal, scale int, policy RoundingPolicy) (*Account, error) {
	if scale < 0 {
		return nil, fmt.Errorf("opening account: %w", errNegativeScale)
	}
	if initial.IsNeg() {
		return nil, fmt.Errorf("opening account with balance %v: %w", initial, ErrInvalidAmount)
	}
	a := &Account{scale: scale, policy: policy}
	b := initial.Rescale(scale, policy)
	a.balance.Store(&b)
	return a, nil
}

// Balance returns the most recently published balance.
// The read never blocks and is never blocked by concurrent [Account.Add] or
// [Account.Withdraw] calls; the returned snapshot may be superseded
// immediately after the read.
func (a *Account) Balance() Decimal {
	return *a.balance.Load()
}

// Scale returns the number of fractional digits the balance is kept at.
func (a *Account) Scale() int {
	return a.scale
}

// Policy returns the rounding policy applied at the commit point.
func (a *Account) Policy() RoundingPolicy {
	return a.policy
}

// Stats returns a snapshot of the account's operation counters.
// Counters are read individually from atomics, so a snapshot taken during
// concurrent operations may mix counts from adjacent commits.
func (a *Account) Stats() AccountStats {
	return AccountStats{
		Adds:        a.adds.Load(),
		Withdrawals: a.withdrawals.Load(),
		Conflicts:   a.conflicts.Load(),
	}
}

// Add atomically adds the given amount to the balance.
// The sum is computed exactly and rounded once, at the commit point, using
// the account's policy.
//
// Add returns [ErrInvalidAmount] if the amount is zero or negative;
// the balance is left unchanged.
func (a *Account) Add(amount Decimal) error {
	if err := validateAmount(amount); err != nil {
		return fmt.Errorf("adding %v: %w", amount, err)
	}
	for {
		cur := a.balance.Load()
		next := cur.Add(amount).Rescale(a.scale, a.policy)
		if a.balance.CompareAndSwap(cur, &next) {
			a.adds.Add(1)
			return nil
		}
		a.conflicts.Add(1)
	}
}

// Withdraw atomically subtracts the given amount from the balance.
// The difference is computed exactly and rounded once, at the commit point,
// using the account's policy.
//
// Withdraw returns an error if:
//   - the amount is zero or negative ([ErrInvalidAmount]);
//   - the amount exceeds the current balance ([ErrInsufficientBalance]).
//
// In both cases the balance is left unchanged.
// The insufficiency check is made against the same snapshot the commit is
// conditioned on, so a withdrawal never overdraws the account even under
// contention.
func (a *Account) Withdraw(amount Decimal) error {
	if err := validateAmount(amount); err != nil {
		return fmt.Errorf("withdrawing %v: %w", amount, err)
	}
	for {
		cur := a.balance.Load()
		if cur.Cmp(amount) < 0 {
			return fmt.Errorf("withdrawing %v from %v: %w", amount, cur, ErrInsufficientBalance)
		}
		next := cur.Sub(amount).Rescale(a.scale, a.policy)
		if a.balance.CompareAndSwap(cur, &next) {
			a.withdrawals.Add(1)
			return nil
		}
		a.conflicts.Add(1)
	}
}

func validateAmount(amount Decimal) error {
	if amount.IsZero() || amount.IsNeg() {
		return ErrInvalidAmount
	}
	return nil
}
