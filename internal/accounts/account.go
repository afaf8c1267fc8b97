package accounts

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Account keys are four digit identifiers.
const (
	MinKey = 1
	MaxKey = 9999
)

// ValidKey reports whether id is within the account key range.
func ValidKey(id int) bool {
	return id >= MinKey && id <= MaxKey
}

// Account is a ledger account. Last credit and debit fields hold the ids of
// the latest processed transactions touching the account, 0 when none.
type Account struct {
	ID                    int             `json:"account_id"`
	Balance               decimal.Decimal `json:"balance_total"`
	LastCreditTransaction int             `json:"last_credit_transaction"`
	LastDebitTransaction  int             `json:"last_debit_transaction"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// CreateCommand carries the opening balance as sent by the client: a JSON
// number or a JSON string holding a number.
type CreateCommand struct {
	BalanceTotal json.RawMessage `json:"balance_total"`
}
