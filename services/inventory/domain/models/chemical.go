package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Chemical is the catalog aggregate: one row per chemical in the lab.
// Quantities are grams, held as decimals so ledger arithmetic stays exact.
// A Chemical is immutable once created; consumption is tracked in the usage
// ledger, never by editing InitialQuantity.
type Chemical struct {
	ID              uuid.UUID
	Name            ChemicalName
	CASNumber       string // informational, not validated against the CAS registry
	InitialQuantity decimal.Decimal
	ExpiryDate      time.Time
	Notes           string
	CreatedAt       time.Time
}

// NewChemical constructs a valid Chemical with a generated ID and current
// timestamp. The initial quantity must be non-negative.
func NewChemical(name ChemicalName, casNumber string, initialQuantity decimal.Decimal, expiryDate time.Time, notes string) (*Chemical, error) {
	if initialQuantity.IsNegative() {
		return nil, fmt.Errorf("initial quantity must not be negative, got %s", initialQuantity)
	}
	if expiryDate.IsZero() {
		return nil, fmt.Errorf("expiry date must be set")
	}
	return &Chemical{
		ID:              uuid.New(),
		Name:            name,
		CASNumber:       casNumber,
		InitialQuantity: initialQuantity,
		ExpiryDate:      expiryDate,
		Notes:           notes,
		CreatedAt:       time.Now().UTC(),
	}, nil
}
