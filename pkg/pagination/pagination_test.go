package pagination_test

import (
	"net/url"
	"testing"

	"github.com/JaimeStill/account-lab/pkg/pagination"
)

func TestConfig_Finalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg pagination.Config
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if cfg.DefaultPageSize != 20 || cfg.MaxPageSize != 100 {
			t.Errorf("cfg = %+v, want 20/100", cfg)
		}
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("TEST_PAGE_DEFAULT", "5")
		t.Setenv("TEST_PAGE_MAX", "50")

		var cfg pagination.Config
		err := cfg.Finalize(&pagination.ConfigEnv{DefaultPageSize: "TEST_PAGE_DEFAULT", MaxPageSize: "TEST_PAGE_MAX"})
		if err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if cfg.DefaultPageSize != 5 || cfg.MaxPageSize != 50 {
			t.Errorf("cfg = %+v, want 5/50", cfg)
		}
	})

	t.Run("default exceeds max", func(t *testing.T) {
		cfg := pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
		if err := cfg.Finalize(nil); err == nil {
			t.Error("Finalize() expected error")
		}
	})
}

func TestPageRequestFromQuery(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantSize  int
		wantSorts int
	}{
		{"empty", "", 1, 20, 0},
		{"explicit", "page=3&page_size=10&sort=-balance,id", 3, 10, 2},
		{"clamped", "page=-1&page_size=1000", 1, 100, 0},
		{"garbage", "page=abc&page_size=xyz", 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req := pagination.PageRequestFromQuery(values, cfg)

			if req.Page != tt.wantPage || req.PageSize != tt.wantSize {
				t.Errorf("page = %d size = %d, want %d/%d", req.Page, req.PageSize, tt.wantPage, tt.wantSize)
			}
			if len(req.Sort) != tt.wantSorts {
				t.Errorf("len(Sort) = %d, want %d", len(req.Sort), tt.wantSorts)
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	req := pagination.PageRequest{Page: 4, PageSize: 25}
	if req.Offset() != 75 {
		t.Errorf("Offset() = %d, want 75", req.Offset())
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		pageSize  int
		wantPages int
	}{
		{"empty", 0, 20, 1},
		{"exact", 40, 20, 2},
		{"remainder", 41, 20, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult[int](nil, tt.total, 1, tt.pageSize)
			if result.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantPages)
			}
			if result.Data == nil {
				t.Error("Data is nil, want empty slice")
			}
		})
	}
}
