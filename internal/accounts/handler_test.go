package accounts_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/account-lab/internal/accounts"
	"github.com/JaimeStill/account-lab/pkg/openapi"
	"github.com/JaimeStill/account-lab/pkg/pagination"
	"github.com/JaimeStill/account-lab/pkg/routes"
)

func newTestMux(sys accounts.System) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := accounts.NewHandler(sys, logger, pagination.Config{DefaultPageSize: 2, MaxPageSize: 10})

	mux := http.NewServeMux()
	routes.Register(mux, "/api", openapi.NewSpec("test", "0.0.0"), h.Routes())
	return mux
}

func serve(mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"numeric balance", "/accounts/12", `{"balance_total": 1500.5}`, http.StatusOK, ""},
		{"string balance", "/accounts/13", `{"balance_total": "20"}`, http.StatusOK, ""},
		{"zero balance", "/accounts/14", `{"balance_total": 0}`, http.StatusOK, ""},
		{"missing body", "/accounts/15", ``, http.StatusBadRequest, "missing JSON body"},
		{"missing field", "/accounts/15", `{"amount": 10}`, http.StatusBadRequest, `missing field: "balance_total" in JSON body`},
		{"negative balance", "/accounts/15", `{"balance_total": -1}`, http.StatusUnprocessableEntity, "invalid balance total value"},
		{"garbage balance", "/accounts/15", `{"balance_total": "lots"}`, http.StatusUnprocessableEntity, "invalid balance total value"},
		{"key too large", "/accounts/10000", `{"balance_total": 1}`, http.StatusUnprocessableEntity, "the account key is not correct"},
		{"key zero", "/accounts/0", `{"balance_total": 1}`, http.StatusUnprocessableEntity, "the account key is not correct"},
		{"non integer key", "/accounts/abc", `{"balance_total": 1}`, http.StatusBadRequest, "account id must be an integer"},
	}

	mux := newTestMux(newMemorySystem())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(mux, http.MethodPost, tt.path, tt.body)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantError == "" {
				return
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !strings.HasPrefix(body["error"], tt.wantError) {
				t.Errorf("error = %q, want prefix %q", body["error"], tt.wantError)
			}
		})
	}
}

func TestHandler_Create_Duplicate(t *testing.T) {
	mux := newTestMux(newMemorySystem())

	if rec := serve(mux, http.MethodPost, "/accounts/1", `{"balance_total": 1}`); rec.Code != http.StatusOK {
		t.Fatalf("first create status = %d", rec.Code)
	}
	if rec := serve(mux, http.MethodPost, "/accounts/1", `{"balance_total": 1}`); rec.Code != http.StatusConflict {
		t.Errorf("duplicate create status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestHandler_Find(t *testing.T) {
	mux := newTestMux(newMemorySystem())
	serve(mux, http.MethodPost, "/accounts/42", `{"balance_total": "99.999"}`)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"found", "/accounts/42", http.StatusOK},
		{"missing", "/accounts/43", http.StatusNotFound},
		{"invalid key", "/accounts/99999", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(mux, http.MethodGet, tt.path, "")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}

	rec := serve(mux, http.MethodGet, "/accounts/42", "")
	var got struct {
		AccountID    int    `json:"account_id"`
		BalanceTotal string `json:"balance_total"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.AccountID != 42 || got.BalanceTotal != "99.99" {
		t.Errorf("account = %+v, want id 42 balance 99.99", got)
	}
}

func TestHandler_List(t *testing.T) {
	mux := newTestMux(newMemorySystem())
	for _, id := range []string{"3", "1", "2"} {
		serve(mux, http.MethodPost, "/accounts/"+id, `{"balance_total": 10}`)
	}

	rec := serve(mux, http.MethodGet, "/accounts?page=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var page struct {
		Data []struct {
			AccountID int `json:"account_id"`
		} `json:"data"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}

	ids := make([]int, len(page.Data))
	for i, a := range page.Data {
		ids[i] = a.AccountID
	}
	if diff := cmp.Diff([]int{1, 2}, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	if page.Total != 3 || page.TotalPages != 2 {
		t.Errorf("total = %d pages = %d, want 3/2", page.Total, page.TotalPages)
	}
}

func TestHandler_List_Error(t *testing.T) {
	sys := newMemorySystem()
	sys.failList = errors.New("db down")

	rec := serve(newTestMux(sys), http.MethodGet, "/accounts", "")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
