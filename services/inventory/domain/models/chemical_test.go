package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewChemical(t *testing.T) {
	name := ChemicalName("Acetone")
	expiry := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	qty := decimal.RequireFromString("100")

	t.Run("returns chemical with non-zero ID", func(t *testing.T) {
		c, err := NewChemical(name, "67-64-1", qty, expiry, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
	})

	t.Run("sets fields correctly", func(t *testing.T) {
		c, err := NewChemical(name, "67-64-1", qty, expiry, "flammable")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != name {
			t.Errorf("expected Name %v, got %v", name, c.Name)
		}
		if c.CASNumber != "67-64-1" {
			t.Errorf("expected CAS 67-64-1, got %q", c.CASNumber)
		}
		if !c.InitialQuantity.Equal(qty) {
			t.Errorf("expected quantity %s, got %s", qty, c.InitialQuantity)
		}
		if !c.ExpiryDate.Equal(expiry) {
			t.Errorf("expected expiry %v, got %v", expiry, c.ExpiryDate)
		}
		if c.Notes != "flammable" {
			t.Errorf("expected notes, got %q", c.Notes)
		}
	})

	t.Run("allows zero initial quantity", func(t *testing.T) {
		if _, err := NewChemical(name, "", decimal.Zero, expiry, ""); err != nil {
			t.Fatalf("zero quantity must be accepted (flagged later as data quality): %v", err)
		}
	})

	t.Run("rejects negative initial quantity", func(t *testing.T) {
		if _, err := NewChemical(name, "", decimal.RequireFromString("-1"), expiry, ""); err == nil {
			t.Fatal("expected error for negative quantity")
		}
	})

	t.Run("rejects zero expiry date", func(t *testing.T) {
		if _, err := NewChemical(name, "", qty, time.Time{}, ""); err == nil {
			t.Fatal("expected error for missing expiry date")
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		c1, _ := NewChemical(name, "", qty, expiry, "")
		c2, _ := NewChemical(name, "", qty, expiry, "")
		if c1.ID == c2.ID {
			t.Fatal("expected unique IDs, got identical")
		}
	})
}
