// Package transactions records transfers between accounts and settles an
// account's pending debits against its balance.
package transactions

import "context"

// System defines the interface for transaction management.
type System interface {
	// Create records a pending transfer from sourceID.
	// Returns accounts.ErrInvalidKey, ErrInvalidDestination, ErrInvalidAmount,
	// ErrAccountNotFound or ErrInvalidParameters.
	Create(ctx context.Context, sourceID int, cmd CreateCommand) (*Transaction, error)

	// List returns up to PageLimit transactions on one side of the account
	// with ids above filter.Start, in ascending id order.
	List(ctx context.Context, accountID int, filter Filter) ([]Transaction, error)

	// Process settles the account's pending debits in id order. An unknown
	// account yields a nil result and no error.
	Process(ctx context.Context, accountID int) (*ProcessResult, error)
}
