package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/account-lab/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondJSON(rec, http.StatusCreated, map[string]int{"account_id": 12})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["account_id"] != 12 {
		t.Errorf("account_id = %d, want 12", body["account_id"])
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"client error", http.StatusUnprocessableEntity, "level=WARN"},
		{"server error", http.StatusInternalServerError, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))

			rec := httptest.NewRecorder()
			handlers.RespondError(rec, logger, tt.status, errors.New("the account key is not correct"))

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["error"] != "the account key is not correct" {
				t.Errorf("error = %q", body["error"])
			}
			if !strings.Contains(logs.String(), tt.wantLevel) {
				t.Errorf("log = %q, want %s", logs.String(), tt.wantLevel)
			}
		})
	}
}
