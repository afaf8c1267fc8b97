package transactions_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/JaimeStill/account-lab/internal/accounts"
	"github.com/JaimeStill/account-lab/internal/transactions"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSettle(t *testing.T) {
	pending := []transactions.Transaction{
		{ID: 1, Amount: dec("40")},
		{ID: 2, Amount: dec("70")},
		{ID: 3, Amount: dec("60")},
		{ID: 4, Amount: dec("0.01")},
	}

	final, outcomes := transactions.Settle(dec("100"), pending)

	if !final.IsZero() {
		t.Errorf("final balance = %s, want 0", final)
	}

	got := make(map[int]transactions.Status, len(outcomes))
	order := make([]int, len(outcomes))
	for i, o := range outcomes {
		got[o.Transaction.ID] = o.Status
		order[i] = o.Transaction.ID
	}

	want := map[int]transactions.Status{
		1: transactions.StatusProcessed,
		2: transactions.StatusRejected,
		3: transactions.StatusProcessed,
		4: transactions.StatusRejected,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSettle_ExactBalance(t *testing.T) {
	final, outcomes := transactions.Settle(dec("25.50"), []transactions.Transaction{{ID: 9, Amount: dec("25.50")}})

	if !final.IsZero() {
		t.Errorf("final = %s, want 0", final)
	}
	if outcomes[0].Status != transactions.StatusProcessed {
		t.Errorf("status = %s, want processed", outcomes[0].Status)
	}
}

func TestSettle_Empty(t *testing.T) {
	final, outcomes := transactions.Settle(dec("10"), nil)
	if !final.Equal(dec("10")) || len(outcomes) != 0 {
		t.Errorf("Settle(nil) = %s, %v", final, outcomes)
	}
}

func TestCreateCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		source   int
		dest     string
		amount   string
		wantDest int
		wantAmt  string
		wantErr  error
	}{
		{"numeric", 1, `2`, `10.5`, 2, "10.50", nil},
		{"string values", 1, `"2"`, `"10"`, 2, "10.00", nil},
		{"zero amount passes", 1, `2`, `0`, 2, "0.00", nil},
		{"source out of range", 0, `2`, `1`, 0, "", accounts.ErrInvalidKey},
		{"same account", 5, `5`, `1`, 0, "", transactions.ErrInvalidDestination},
		{"destination out of range", 5, `10000`, `1`, 0, "", transactions.ErrInvalidDestination},
		{"destination not a number", 5, `"five"`, `1`, 0, "", transactions.ErrInvalidDestination},
		{"destination float", 5, `2.5`, `1`, 0, "", transactions.ErrInvalidDestination},
		{"negative amount", 1, `2`, `-3`, 0, "", transactions.ErrInvalidAmount},
		{"garbage amount", 1, `2`, `"x"`, 0, "", transactions.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := transactions.CreateCommand{
				DestinationID: json.RawMessage(tt.dest),
				Amount:        json.RawMessage(tt.amount),
			}

			dest, value, err := cmd.Validate(tt.source)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if dest != tt.wantDest || value.StringFixed(2) != tt.wantAmt {
				t.Errorf("Validate() = %d, %s; want %d, %s", dest, value.StringFixed(2), tt.wantDest, tt.wantAmt)
			}
		})
	}
}

func TestFilterFromQuery(t *testing.T) {
	tests := []struct {
		query   string
		want    transactions.Filter
		wantErr error
	}{
		{"type=credit", transactions.Filter{Type: transactions.TypeCredit}, nil},
		{"type=debit&start=15", transactions.Filter{Type: transactions.TypeDebit, Start: 15}, nil},
		{"type=debit&start=0007", transactions.Filter{Type: transactions.TypeDebit, Start: 7}, nil},
		{"", transactions.Filter{}, transactions.ErrInvalidType},
		{"type=transfer", transactions.Filter{}, transactions.ErrInvalidType},
		{"type=credit&start=-1", transactions.Filter{}, transactions.ErrInvalidStart},
		{"type=credit&start=1.5", transactions.Filter{}, transactions.ErrInvalidStart},
		{"type=credit&start=abc", transactions.Filter{}, transactions.ErrInvalidStart},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			got, err := transactions.FilterFromQuery(values)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FilterFromQuery() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FilterFromQuery() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{transactions.ErrAccountNotFound, http.StatusNotFound},
		{accounts.ErrInvalidKey, http.StatusUnprocessableEntity},
		{transactions.ErrInvalidDestination, http.StatusUnprocessableEntity},
		{transactions.ErrInvalidAmount, http.StatusUnprocessableEntity},
		{transactions.ErrInvalidParameters, http.StatusUnprocessableEntity},
		{transactions.ErrInvalidType, http.StatusUnprocessableEntity},
		{transactions.ErrInvalidStart, http.StatusUnprocessableEntity},
		{errors.New("deadlock detected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := transactions.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
