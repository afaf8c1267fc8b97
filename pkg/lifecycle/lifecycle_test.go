package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/JaimeStill/account-lab/pkg/lifecycle"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	lc := lifecycle.New()

	if lc.Context() == nil {
		t.Fatal("Context() returned nil")
	}
	if lc.Ready() {
		t.Error("Ready() = true, want false for new coordinator")
	}
	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}

func TestCoordinator_OnStartup_Multiple(t *testing.T) {
	lc := lifecycle.New()
	defer lc.Shutdown(time.Second)

	var count atomic.Int32
	for i := 0; i < 3; i++ {
		lc.OnStartup(func() {
			count.Add(1)
		})
	}

	lc.WaitForStartup()

	if count.Load() != 3 {
		t.Errorf("count = %d, want 3", count.Load())
	}
	if !lc.Ready() {
		t.Error("Ready() = false after WaitForStartup")
	}
}

func TestCoordinator_OnShutdown(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for i := 0; i < 3; i++ {
		lc.OnShutdown(func() {
			<-lc.Context().Done()
			count.Add(1)
		})
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if count.Load() != 3 {
		t.Errorf("count = %d, want 3", count.Load())
	}

	select {
	case <-lc.Context().Done():
	default:
		t.Error("context should be cancelled after shutdown")
	}
}

func TestCoordinator_Shutdown_Timeout(t *testing.T) {
	lc := lifecycle.New()

	release := make(chan struct{})
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		<-release
	})

	err := lc.Shutdown(20 * time.Millisecond)
	close(release)

	if err == nil {
		t.Error("Shutdown() should return timeout error")
	}

	// let the hook and the waiter drain before the leak check
	time.Sleep(20 * time.Millisecond)
}

func TestCoordinator_ReadinessChecker(t *testing.T) {
	lc := lifecycle.New()
	defer lc.Shutdown(time.Second)

	var checker lifecycle.ReadinessChecker = lc
	if checker.Ready() {
		t.Error("Ready() = true, want false")
	}

	lc.WaitForStartup()

	if !checker.Ready() {
		t.Error("Ready() = false, want true")
	}
}
