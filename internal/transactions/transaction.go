package transactions

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JaimeStill/account-lab/internal/accounts"
	"github.com/JaimeStill/account-lab/pkg/amount"
)

// Status is the settlement state of a transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusRejected  Status = "rejected"
)

// Type selects which side of a transaction an account is on.
type Type string

const (
	// TypeCredit lists transactions where the account is the destination.
	TypeCredit Type = "credit"

	// TypeDebit lists transactions where the account is the source.
	TypeDebit Type = "debit"
)

// PageLimit is the maximum number of transactions returned by List.
const PageLimit = 10

// Transaction moves Amount from SourceID to DestinationID once processed.
type Transaction struct {
	ID            int             `json:"transaction_id"`
	SourceID      int             `json:"source_id"`
	DestinationID int             `json:"destination_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty"`
}

// CreateCommand carries the raw client values. DestinationID accepts a JSON
// number or numeric string; Amount accepts a JSON number or numeric string.
type CreateCommand struct {
	DestinationID json.RawMessage `json:"destination_id"`
	Amount        json.RawMessage `json:"amount"`
}

// Validate checks the source key, then the destination, then the amount,
// and returns the parsed destination and amount. A zero amount passes here;
// it is rejected after both accounts are known to exist.
func (c CreateCommand) Validate(sourceID int) (int, decimal.Decimal, error) {
	if !accounts.ValidKey(sourceID) {
		return 0, decimal.Zero, accounts.ErrInvalidKey
	}

	destID, ok := parseKey(c.DestinationID)
	if !ok || destID == sourceID || !accounts.ValidKey(destID) {
		return 0, decimal.Zero, ErrInvalidDestination
	}

	value, err := amount.FromJSON(c.Amount)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return destID, value, nil
}

// Filter selects one side of an account's transactions after a start id.
type Filter struct {
	Type  Type
	Start int
}

// ProcessResult summarizes a settlement run for one account.
type ProcessResult struct {
	AccountID int             `json:"account_id"`
	Balance   decimal.Decimal `json:"balance_total"`
	Processed []int           `json:"processed"`
	Rejected  []int           `json:"rejected"`
}
