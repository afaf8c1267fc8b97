// Package accounts manages ledger accounts: creation with an opening
// balance, lookup by key and paginated listing.
package accounts

import (
	"context"

	"github.com/JaimeStill/account-lab/pkg/pagination"
)

// System defines the interface for account management.
type System interface {
	// List returns a page of accounts ordered by key unless a sort is given.
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Account], error)

	// Find returns the account with the given key.
	// Returns ErrInvalidKey for keys outside 1..9999 and ErrNotFound when absent.
	Find(ctx context.Context, id int) (*Account, error)

	// Create opens an account with the given key and balance.
	// Returns ErrInvalidKey, ErrInvalidAmount or ErrDuplicate.
	Create(ctx context.Context, id int, cmd CreateCommand) (*Account, error)
}
