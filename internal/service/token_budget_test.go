package service

import (
	"testing"
	"time"
)

func newTestBudget(ceiling int) (*TokenBudget, *fixedClock) {
	clk := &fixedClock{t: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)}
	b := NewTokenBudget(ceiling)
	b.now = clk.Now
	b.resetAt = nextMidnightUTC(clk.t)
	return b, clk
}

func TestBudgetDeniesAtCeiling(t *testing.T) {
	b, _ := newTestBudget(100)

	if !b.Reserve(60) {
		t.Fatal("reserve within ceiling should be allowed")
	}
	b.Commit(60)

	if b.Reserve(50) {
		t.Fatal("reserve past the ceiling should be denied")
	}
	if !b.Reserve(40) {
		t.Fatal("reserve that still fits should be allowed")
	}
	b.Commit(40)

	if b.Reserve(1) {
		t.Fatal("all reserves should be denied once usage reaches the ceiling")
	}
	if b.Remaining() != 0 {
		t.Fatalf("expected 0 remaining, got %d", b.Remaining())
	}
}

func TestBudgetLazyDailyReset(t *testing.T) {
	b, clk := newTestBudget(100)
	b.Commit(100)
	if b.Reserve(1) {
		t.Fatal("budget should be exhausted")
	}

	// Avanza pasada la medianoche: el primer acceso resetea el contador.
	clk.Advance(13 * time.Hour)
	if !b.Reserve(100) {
		t.Fatal("reserve should be allowed after the daily reset")
	}
	if b.Remaining() != 100 {
		t.Fatalf("expected full budget after reset, got %d", b.Remaining())
	}
}

func TestBudgetResetAdvancesAcrossMultipleDays(t *testing.T) {
	b, clk := newTestBudget(100)
	b.Commit(100)

	// Tres dias sin trafico: un solo reset y el timestamp queda en el futuro.
	clk.Advance(72 * time.Hour)
	if !b.Reserve(50) {
		t.Fatal("reserve should be allowed after idle days")
	}
	b.Commit(50)
	if !b.resetAt.After(clk.t) {
		t.Fatalf("reset timestamp should be in the future, got %v vs now %v", b.resetAt, clk.t)
	}
	if b.Remaining() != 50 {
		t.Fatalf("expected 50 remaining, got %d", b.Remaining())
	}
}

func TestBudgetCommitIgnoresNonPositive(t *testing.T) {
	b, _ := newTestBudget(100)
	b.Commit(0)
	b.Commit(-5)
	if b.Remaining() != 100 {
		t.Fatalf("non-positive commits should not consume budget, remaining=%d", b.Remaining())
	}
}
