package memory

import (
	"context"
	"sync"

	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/models"
	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/repositories"
)

// UsageRepository provides in-memory usage ledger storage. Append-only.
type UsageRepository struct {
	mu     sync.RWMutex
	events []*models.UsageEvent
}

// NewUsageRepository creates an empty in-memory usage repository.
func NewUsageRepository() *UsageRepository {
	return &UsageRepository{}
}

// Verify interface compliance
var _ repositories.UsageRepository = (*UsageRepository)(nil)

// Save appends a usage event to the ledger.
func (r *UsageRepository) Save(_ context.Context, event *models.UsageEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *event
	r.events = append(r.events, &copied)
	return nil
}

// Find returns a page of the ledger, newest first, plus the total count.
func (r *UsageRepository) Find(_ context.Context, opts repositories.QueryOpts) ([]*models.UsageEvent, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.events)
	start := opts.Offset
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if opts.Limit <= 0 || end > total {
		end = total
	}

	page := make([]*models.UsageEvent, 0, end-start)
	for i := start; i < end; i++ {
		copied := *r.events[total-1-i] // newest first
		page = append(page, &copied)
	}
	return page, total, nil
}

// FindAll returns the full ledger snapshot in append order.
func (r *UsageRepository) FindAll(_ context.Context) ([]*models.UsageEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.UsageEvent, 0, len(r.events))
	for _, e := range r.events {
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}
