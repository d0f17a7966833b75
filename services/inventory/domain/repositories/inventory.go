package repositories

import (
	"context"

	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ChemicalRepository is the persistence interface for the chemical catalog.
// The domain layer owns this interface; infrastructure implements it.
type ChemicalRepository interface {
	// Save persists a new Chemical. Returns domain.ErrChemicalAlreadyExists
	// when the name is already cataloged.
	Save(ctx context.Context, chemical *models.Chemical) error

	// GetByName retrieves a Chemical by its unique name.
	// Returns domain.ErrChemicalNotFound if absent.
	GetByName(ctx context.Context, name string) (*models.Chemical, error)

	// Find retrieves a paginated list of chemicals in creation order plus the
	// total count (ignoring pagination).
	Find(ctx context.Context, opts QueryOpts) ([]*models.Chemical, int, error)

	// FindAll retrieves the full catalog snapshot for aggregation.
	FindAll(ctx context.Context) ([]*models.Chemical, error)

	// Exists reports whether a chemical with the given name is cataloged.
	Exists(ctx context.Context, name string) (bool, error)
}

// UsageRepository is the persistence interface for the append-only usage
// ledger. There is no update or delete; the ledger only grows.
type UsageRepository interface {
	// Save appends a UsageEvent to the ledger.
	Save(ctx context.Context, event *models.UsageEvent) error

	// Find retrieves a paginated list of usage events, newest first, plus the
	// total count (ignoring pagination).
	Find(ctx context.Context, opts QueryOpts) ([]*models.UsageEvent, int, error)

	// FindAll retrieves the full ledger snapshot for aggregation, in append order.
	FindAll(ctx context.Context) ([]*models.UsageEvent, error)
}
