package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewUsageEvent(t *testing.T) {
	amount := decimal.RequireFromString("12.5")

	t.Run("sets fields correctly", func(t *testing.T) {
		date := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
		e, err := NewUsageEvent("Acetone", date, amount, "rinse")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
		if e.ChemicalName != "Acetone" {
			t.Errorf("expected name Acetone, got %q", e.ChemicalName)
		}
		if !e.Date.Equal(date) {
			t.Errorf("expected date %v, got %v", date, e.Date)
		}
		if !e.AmountUsed.Equal(amount) {
			t.Errorf("expected amount %s, got %s", amount, e.AmountUsed)
		}
	})

	t.Run("defaults zero date to today", func(t *testing.T) {
		e, err := NewUsageEvent("Acetone", time.Time{}, amount, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Date.IsZero() {
			t.Fatal("expected date defaulted, got zero")
		}
		if e.Date.After(time.Now().UTC()) {
			t.Errorf("defaulted date %v is in the future", e.Date)
		}
	})

	t.Run("allows a zero amount", func(t *testing.T) {
		if _, err := NewUsageEvent("Acetone", time.Time{}, decimal.Zero, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		if _, err := NewUsageEvent("Acetone", time.Time{}, decimal.RequireFromString("-0.1"), ""); err == nil {
			t.Fatal("expected error for negative amount")
		}
	})

	t.Run("rejects empty chemical name", func(t *testing.T) {
		if _, err := NewUsageEvent("", time.Time{}, amount, ""); err == nil {
			t.Fatal("expected error for empty chemical name")
		}
	})
}
