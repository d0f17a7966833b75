// Package services contains stateless domain services for the inventory
// bounded context. They enforce business rules on domain types only: the
// ingestion-time gate that keeps invariant-violating rows (negative
// quantities, malformed names) out of the catalog and the ledger.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/models"
)

// ValidateName enforces business rules for ChemicalName beyond the structural
// length constraint enforced by the constructor.
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters
//   - Must not be only whitespace
func ValidateName(name models.ChemicalName) error {
	s := name.String()

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("chemical name must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("chemical name must not be only whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("chemical name must not contain control characters")
		}
	}

	return nil
}

// ValidateChemicalForCreation performs cross-field validation on a constructed
// Chemical before it is persisted. It assumes the Chemical was built via
// models.NewChemical, so structural constraints already hold.
func ValidateChemicalForCreation(c *models.Chemical) error {
	if c == nil {
		return fmt.Errorf("chemical cannot be nil")
	}

	if err := ValidateName(c.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if c.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	if c.InitialQuantity.IsNegative() {
		return fmt.Errorf("initial quantity must not be negative")
	}

	if c.ExpiryDate.IsZero() {
		return fmt.Errorf("expiry date must be set")
	}

	return nil
}

// ValidateUsageForLogging performs validation on a constructed UsageEvent
// before it is appended to the ledger.
func ValidateUsageForLogging(e *models.UsageEvent) error {
	if e == nil {
		return fmt.Errorf("usage event cannot be nil")
	}

	if e.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	if strings.TrimSpace(e.ChemicalName) == "" {
		return fmt.Errorf("chemical name must be set")
	}

	if e.AmountUsed.IsNegative() {
		return fmt.Errorf("amount used must not be negative")
	}

	if e.Date.IsZero() {
		return fmt.Errorf("date must be set")
	}

	return nil
}
