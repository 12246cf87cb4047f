package service

import (
	"testing"
	"time"
)

func newTestBreaker() (*CircuitBreaker, *fixedClock) {
	clk := &fixedClock{t: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)}
	b := NewCircuitBreaker("test", 5, 60*time.Second, 3)
	b.now = clk.Now
	return b, clk
}

func TestBreakerOpensAfterThresholdFailures(t *testing.T) {
	b, _ := newTestBreaker()

	for i := 0; i < 4; i++ {
		b.RecordFailure()
		if b.State() != BreakerClosed {
			t.Fatalf("breaker should stay closed after %d failures", i+1)
		}
	}
	b.RecordFailure()
	if b.State() != BreakerOpen {
		t.Fatalf("breaker should open after 5 failures, state=%s", b.State())
	}
	if b.Allow() {
		t.Fatal("open breaker should reject calls")
	}
}

func TestBreakerRejectsUntilRecoveryTimeout(t *testing.T) {
	b, clk := newTestBreaker()
	for i := 0; i < 5; i++ {
		b.RecordFailure()
	}

	clk.Advance(59 * time.Second)
	if b.Allow() {
		t.Fatal("breaker should reject before the recovery timeout elapses")
	}

	clk.Advance(2 * time.Second)
	if !b.Allow() {
		t.Fatal("breaker should admit a trial after the recovery timeout")
	}
	if b.State() != BreakerHalfOpen {
		t.Fatalf("expected half-open, got %s", b.State())
	}
}

func TestBreakerHalfOpenAdmitsLimitedTrials(t *testing.T) {
	b, clk := newTestBreaker()
	for i := 0; i < 5; i++ {
		b.RecordFailure()
	}
	clk.Advance(61 * time.Second)

	for i := 0; i < 3; i++ {
		if !b.Allow() {
			t.Fatalf("trial %d should be admitted", i+1)
		}
	}
	if b.Allow() {
		t.Fatal("fourth trial should be rejected in half-open")
	}
}

func TestBreakerClosesAfterHalfOpenSuccesses(t *testing.T) {
	b, clk := newTestBreaker()
	for i := 0; i < 5; i++ {
		b.RecordFailure()
	}
	clk.Advance(61 * time.Second)

	for i := 0; i < 3; i++ {
		if !b.Allow() {
			t.Fatalf("trial %d should be admitted", i+1)
		}
		b.RecordSuccess()
	}
	if b.State() != BreakerClosed {
		t.Fatalf("breaker should close after 3 half-open successes, state=%s", b.State())
	}
	if !b.Allow() {
		t.Fatal("closed breaker should admit calls")
	}
	// El contador de fallos quedo reseteado: hacen falta 5 nuevos fallos.
	for i := 0; i < 4; i++ {
		b.RecordFailure()
	}
	if b.State() != BreakerClosed {
		t.Fatal("failure counter should have been reset on close")
	}
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b, clk := newTestBreaker()
	for i := 0; i < 5; i++ {
		b.RecordFailure()
	}
	clk.Advance(61 * time.Second)

	if !b.Allow() {
		t.Fatal("trial should be admitted")
	}
	b.RecordFailure()
	if b.State() != BreakerOpen {
		t.Fatalf("half-open failure should reopen, state=%s", b.State())
	}
	// openedAt se reseteo: el timeout corre de nuevo completo.
	clk.Advance(59 * time.Second)
	if b.Allow() {
		t.Fatal("breaker should reject until the new recovery timeout elapses")
	}
	clk.Advance(2 * time.Second)
	if !b.Allow() {
		t.Fatal("breaker should admit a trial after the new timeout")
	}
}
