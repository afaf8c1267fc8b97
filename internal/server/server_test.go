package server_test

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/JaimeStill/account-lab/internal/config"
	"github.com/JaimeStill/account-lab/internal/server"
	"github.com/JaimeStill/account-lab/pkg/lifecycle"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig(port int) *config.ServerConfig {
	return &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            port,
		ReadTimeout:     "5s",
		WriteTimeout:    "5s",
		ShutdownTimeout: "5s",
	}
}

func TestStart_ServesAndShutsDown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ledger"))
	})

	sys := server.New(testConfig(0), handler, slog.New(slog.DiscardHandler))
	lc := lifecycle.New()

	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	client := &http.Client{
		Timeout:   2 * time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	}

	resp, err := client.Get("http://" + sys.Addr() + "/")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if string(body) != "ledger" {
		t.Errorf("body = %q, want %q", body, "ledger")
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if _, err := client.Get("http://" + sys.Addr() + "/"); err == nil {
		t.Error("GET after shutdown succeeded, want connection error")
	}
}

func TestStart_BindError(t *testing.T) {
	handler := http.NotFoundHandler()
	lc := lifecycle.New()
	defer lc.Shutdown(time.Second)

	first := server.New(testConfig(0), handler, slog.New(slog.DiscardHandler))
	if err := first.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	_, port := splitPort(t, first.Addr())
	second := server.New(testConfig(port), handler, slog.New(slog.DiscardHandler))
	if err := second.Start(lc); err == nil {
		t.Error("Start() on a bound port error = nil, want error")
	}
}

func splitPort(t *testing.T, addr string) (string, int) {
	t.Helper()
	host, p, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("SplitHostPort(%q) error = %v", addr, err)
	}
	port, err := strconv.Atoi(p)
	if err != nil {
		t.Fatalf("port %q: %v", p, err)
	}
	return host, port
}
