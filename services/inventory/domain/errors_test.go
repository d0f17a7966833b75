package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrChemicalNotFound.Error() != "chemical not found" {
		t.Fatalf("unexpected message: %q", ErrChemicalNotFound.Error())
	}
	if ErrChemicalAlreadyExists.Error() != "chemical already exists" {
		t.Fatalf("unexpected message: %q", ErrChemicalAlreadyExists.Error())
	}
	if ErrInvalidChemical.Error() != "invalid chemical" {
		t.Fatalf("unexpected message: %q", ErrInvalidChemical.Error())
	}
	if ErrInvalidUsageEvent.Error() != "invalid usage event" {
		t.Fatalf("unexpected message: %q", ErrInvalidUsageEvent.Error())
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrChemicalNotFound)
	if !errors.Is(wrapped, ErrChemicalNotFound) {
		t.Fatal("errors.Is must match wrapped ErrChemicalNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidChemical, errors.New("negative quantity"))
	if !errors.Is(wrapped2, ErrInvalidChemical) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidChemical")
	}
}
