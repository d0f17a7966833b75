package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Watermill topics for the inventory bounded context.
const (
	// TopicChemicalAdded is published when a chemical is added to the catalog.
	TopicChemicalAdded = "inventory.chemical.added"
	// TopicUsageLogged is published when a usage event is appended to the ledger.
	TopicUsageLogged = "inventory.usage.logged"
)

// ChemicalAddedEvent is published after a new Chemical is persisted.
type ChemicalAddedEvent struct {
	EventID         uuid.UUID       `json:"event_id"` // Unique publish-time identifier for deduplication
	Version         int             `json:"version"`  // Schema version; increment on breaking changes
	ChemicalID      uuid.UUID       `json:"chemical_id"`
	Name            string          `json:"name"`
	CASNumber       string          `json:"cas_number"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	ExpiryDate      time.Time       `json:"expiry_date"`
	OccurredAt      time.Time       `json:"occurred_at"`
}

// UsageLoggedEvent is published after a usage event is appended to the ledger.
type UsageLoggedEvent struct {
	EventID      uuid.UUID       `json:"event_id"`
	Version      int             `json:"version"`
	UsageID      uuid.UUID       `json:"usage_id"`
	ChemicalName string          `json:"chemical_name"`
	Date         time.Time       `json:"date"`
	AmountUsed   decimal.Decimal `json:"amount_used"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
