// Package wallet stores user balances and the movements applied to them.
// Every movement carries a caller-chosen reference; a reference is applied
// at most once, which makes holds, releases and dividend credits retry-safe.
package wallet

import "context"

type Repository interface {
	// Open creates a zero balance for userID if none exists.
	Open(ctx context.Context, userID string) error

	// Balance returns common.ErrorNotFound for users without a wallet.
	Balance(ctx context.Context, userID string) (int64, error)

	// Apply adds amount (negative for debits) to the balance of userID under
	// ref. It reports applied=false when ref was already recorded. A debit
	// that would make the balance negative fails with
	// common.ErrInsufficientFunds and changes nothing.
	Apply(ctx context.Context, ref, userID string, amount int64) (applied bool, err error)

	// HasMovement reports whether ref was applied.
	HasMovement(ctx context.Context, ref string) (bool, error)
}
