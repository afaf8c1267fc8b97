package transactions

import "github.com/shopspring/decimal"

// Outcome is the settlement decision for one pending debit.
type Outcome struct {
	Transaction Transaction
	Status      Status
}

// Settle applies pending debits in order against balance. A debit is
// processed when the running balance covers it and rejected otherwise.
// It returns the final balance and one outcome per debit.
func Settle(balance decimal.Decimal, pending []Transaction) (decimal.Decimal, []Outcome) {
	outcomes := make([]Outcome, 0, len(pending))

	for _, t := range pending {
		if balance.GreaterThanOrEqual(t.Amount) {
			balance = balance.Sub(t.Amount)
			outcomes = append(outcomes, Outcome{Transaction: t, Status: StatusProcessed})
			continue
		}
		outcomes = append(outcomes, Outcome{Transaction: t, Status: StatusRejected})
	}

	return balance, outcomes
}
