package models

import (
	"strings"
	"testing"
)

func TestNewChemicalName(t *testing.T) {
	t.Run("accepts a normal name", func(t *testing.T) {
		n, err := NewChemicalName("Sodium Chloride")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "Sodium Chloride" {
			t.Errorf("unexpected value: %q", n.String())
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		if _, err := NewChemicalName(""); err == nil {
			t.Fatal("expected error for empty name")
		}
	})

	t.Run("accepts a single character", func(t *testing.T) {
		if _, err := NewChemicalName("X"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("accepts name at the maximum length", func(t *testing.T) {
		if _, err := NewChemicalName(strings.Repeat("a", 255)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects name over the maximum length", func(t *testing.T) {
		if _, err := NewChemicalName(strings.Repeat("a", 256)); err == nil {
			t.Fatal("expected error for oversized name")
		}
	})
}
