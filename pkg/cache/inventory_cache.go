package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// SnapshotTTL is the time-to-live for the derived inventory snapshot.
	// Kept short: the snapshot is also invalidated on every write through
	// this system, so the TTL only bounds staleness from writes made
	// directly against the store.
	SnapshotTTL = 30 * time.Second

	snapshotKey = "inventory:snapshot"
)

// InventorySnapshot is the denormalized read model served by the inventory
// view: derived rows, alert tiers, and data-quality diagnostics. It mirrors
// the depletion report but in a JSON-safe shape (no NaN; an undefined
// percentage is a nil pointer).
type InventorySnapshot struct {
	Rows        []SnapshotRow      `json:"rows"`
	Alerts      AlertSummary       `json:"alerts"`
	Diagnostics DiagnosticsSummary `json:"diagnostics"`
	ComputedAt  time.Time          `json:"computed_at"`
}

// SnapshotRow is one derived catalog row.
type SnapshotRow struct {
	Name            string          `json:"name"`
	CASNumber       string          `json:"cas_number"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	ExpiryDate      time.Time       `json:"expiry_date"`
	Notes           string          `json:"notes"`
	TotalUsed       decimal.Decimal `json:"total_used"`
	Remaining       decimal.Decimal `json:"remaining"`
	// RemainingPercent is nil when the initial quantity was zero and the
	// percentage is undefined.
	RemainingPercent *float64 `json:"remaining_percent"`
}

// AlertSummary holds the two alert tiers. A name appears in at most one tier.
type AlertSummary struct {
	Red    []string `json:"red"`
	Yellow []string `json:"yellow"`
}

// DiagnosticsSummary surfaces data-quality conditions observed while the
// snapshot was derived.
type DiagnosticsSummary struct {
	DuplicateNames        []string `json:"duplicate_names,omitempty"`
	OrphanNames           []string `json:"orphan_names,omitempty"`
	OrphanEventCount      int      `json:"orphan_event_count,omitempty"`
	UndefinedPercentNames []string `json:"undefined_percent_names,omitempty"`
	SkippedChemicalNames  []string `json:"skipped_chemical_names,omitempty"`
	SkippedEventCount     int      `json:"skipped_event_count,omitempty"`
}

// InventoryCache stores the derived inventory snapshot in Redis as a single
// JSON document. There is one snapshot for the whole catalog, so one key.
type InventoryCache struct {
	client *RedisClient
}

// NewInventoryCache creates an InventoryCache backed by the given RedisClient.
func NewInventoryCache(r *RedisClient) *InventoryCache {
	return &InventoryCache{client: r}
}

// Get retrieves the cached snapshot. Returns redis.Nil error when the key does
// not exist or has expired.
func (c *InventoryCache) Get(ctx context.Context) (*InventorySnapshot, error) {
	data, err := c.client.Client().Get(ctx, snapshotKey).Bytes()
	if err != nil {
		return nil, err
	}
	var snap InventorySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("cache decode snapshot: %w", err)
	}
	return &snap, nil
}

// Set writes the snapshot with the standard TTL.
func (c *InventoryCache) Set(ctx context.Context, snap *InventorySnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("cache encode snapshot: %w", err)
	}
	if err := c.client.Client().Set(ctx, snapshotKey, data, SnapshotTTL).Err(); err != nil {
		return fmt.Errorf("cache set snapshot: %w", err)
	}
	return nil
}

// Invalidate removes the cached snapshot so the next read recomputes it.
func (c *InventoryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Client().Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate snapshot: %w", err)
	}
	return nil
}
