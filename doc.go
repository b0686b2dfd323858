/*
Package balance implements exact, concurrently mutable monetary balances.
It combines an arbitrary-precision decimal value type with a lock-free
account that publishes balance updates atomically.

# Features

  - Immutable decimal values, ensuring safe usage across multiple goroutines
  - Exact addition and subtraction with lossless scale alignment
  - Explicit rounding with selectable policies, applied only at rounding points
  - Lock-free accounts with linearizable deposits and withdrawals
  - Non-blocking balance reads that never observe partial updates

# Representation

The package consists of three main types: Decimal, RoundingPolicy, and
Account.
A Decimal represents a base-10 value as an arbitrary-precision coefficient
and a non-negative scale, so binary floating-point rounding never enters
the arithmetic: adding 0.10 to itself ten times yields exactly 1.00, and
addition is exactly associative and commutative.
An Account holds one Decimal balance behind an atomic pointer and mutates
it through an optimistic read-compute-publish loop.

# Rounding

Arithmetic never rounds.
Precision is discarded only by the Round and Rescale methods, which take an
explicit RoundingPolicy (half-even, half-up, down, or up), and by the
account commit point, which rescales each new balance to the account's
configured number of fractional digits.

# Concurrency

Multiple goroutines may deposit, withdraw, and read the same Account with
no external locking.
A failed publish is an internal retry, never a surfaced error; every
committed operation observes and supersedes exactly one prior balance, so
no update is ever lost.
Composing operations across two accounts is not atomic and must be
coordinated by the caller.

# Errors

Parsing returns ErrMalformedDecimal for input that is not a canonical
decimal literal.
Account operations return ErrInvalidAmount for zero or negative amounts and
ErrInsufficientBalance for withdrawals exceeding the balance; in every
error case the balance is left unchanged.
*/
package balance
