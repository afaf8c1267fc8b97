package transactions

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/JaimeStill/account-lab/pkg/query"
	"github.com/JaimeStill/account-lab/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "transactions", "t").
	Project("id", "id").
	Project("source_id", "source_id").
	Project("destination_id", "destination_id").
	Project("amount", "amount").
	Project("status", "status").
	Project("created_at", "created_at").
	Project("processed_at", "processed_at")

var defaultSort = query.SortField{Field: "id"}

func scanTransaction(s repository.Scanner) (Transaction, error) {
	var t Transaction
	err := s.Scan(
		&t.ID, &t.SourceID, &t.DestinationID,
		&t.Amount, &t.Status, &t.CreatedAt, &t.ProcessedAt,
	)
	return t, err
}

// FilterFromQuery reads type and start. Start defaults to 0 and must be a
// run of decimal digits.
func FilterFromQuery(values url.Values) (Filter, error) {
	f := Filter{Type: Type(values.Get("type"))}
	if err := f.Type.validate(); err != nil {
		return Filter{}, err
	}

	start := values.Get("start")
	if start == "" {
		return f, nil
	}
	if !isDigits(start) {
		return Filter{}, ErrInvalidStart
	}

	n, err := strconv.Atoi(start)
	if err != nil {
		return Filter{}, ErrInvalidStart
	}
	f.Start = n
	return f, nil
}

func (t Type) validate() error {
	switch t {
	case TypeCredit, TypeDebit:
		return nil
	default:
		return ErrInvalidType
	}
}

// column returns the projected field matching the account for this side.
func (t Type) column() string {
	if t == TypeCredit {
		return "destination_id"
	}
	return "source_id"
}

func isDigits(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

// parseKey accepts a JSON integer or a JSON string of digits.
func parseKey(raw json.RawMessage) (int, bool) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		if !isDigits(s[1:]) {
			return 0, false
		}
	} else if !isDigits(s) {
		return 0, false
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
