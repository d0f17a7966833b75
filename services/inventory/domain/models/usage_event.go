package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UsageEvent is one append-only entry in the usage ledger. It references a
// Chemical by name, a weak reference rather than a foreign key, so the
// ledger survives catalog edits made outside this system. Events are never
// mutated or deleted.
type UsageEvent struct {
	ID           uuid.UUID
	ChemicalName string
	Date         time.Time
	AmountUsed   decimal.Decimal
	Notes        string
	CreatedAt    time.Time
}

// NewUsageEvent constructs a valid UsageEvent with a generated ID. A zero date
// defaults to today (UTC), matching the behavior of the logging form that
// stamps entries at submission time. The amount used must be non-negative.
func NewUsageEvent(chemicalName string, date time.Time, amountUsed decimal.Decimal, notes string) (*UsageEvent, error) {
	if chemicalName == "" {
		return nil, fmt.Errorf("chemical name must not be empty")
	}
	if amountUsed.IsNegative() {
		return nil, fmt.Errorf("amount used must not be negative, got %s", amountUsed)
	}
	now := time.Now().UTC()
	if date.IsZero() {
		date = now.Truncate(24 * time.Hour)
	}
	return &UsageEvent{
		ID:           uuid.New(),
		ChemicalName: chemicalName,
		Date:         date,
		AmountUsed:   amountUsed,
		Notes:        notes,
		CreatedAt:    now,
	}, nil
}
