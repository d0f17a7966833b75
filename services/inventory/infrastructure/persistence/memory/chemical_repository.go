// Package memory provides in-memory repository implementations for tests and
// local development. They honor the same contracts as the postgres package,
// including sentinel errors, but keep everything in process.
package memory

import (
	"context"
	"sync"

	invdomain "github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain"
	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/models"
	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/repositories"
)

// ChemicalRepository provides in-memory chemical catalog storage.
type ChemicalRepository struct {
	mu        sync.RWMutex
	chemicals []*models.Chemical
	byName    map[string]*models.Chemical
}

// NewChemicalRepository creates an empty in-memory chemical repository.
func NewChemicalRepository() *ChemicalRepository {
	return &ChemicalRepository{byName: make(map[string]*models.Chemical)}
}

// Verify interface compliance
var _ repositories.ChemicalRepository = (*ChemicalRepository)(nil)

// Save stores a new chemical. Returns ErrChemicalAlreadyExists when the name
// is taken, mirroring the unique constraint in postgres.
func (r *ChemicalRepository) Save(_ context.Context, chemical *models.Chemical) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := chemical.Name.String()
	if _, ok := r.byName[name]; ok {
		return invdomain.ErrChemicalAlreadyExists
	}
	copied := *chemical
	r.chemicals = append(r.chemicals, &copied)
	r.byName[name] = &copied
	return nil
}

// GetByName retrieves a chemical by name or ErrChemicalNotFound.
func (r *ChemicalRepository) GetByName(_ context.Context, name string) (*models.Chemical, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byName[name]
	if !ok {
		return nil, invdomain.ErrChemicalNotFound
	}
	copied := *c
	return &copied, nil
}

// Find returns a page of the catalog in insertion order plus the total count.
func (r *ChemicalRepository) Find(_ context.Context, opts repositories.QueryOpts) ([]*models.Chemical, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.chemicals)
	start := opts.Offset
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if opts.Limit <= 0 || end > total {
		end = total
	}

	page := make([]*models.Chemical, 0, end-start)
	for _, c := range r.chemicals[start:end] {
		copied := *c
		page = append(page, &copied)
	}
	return page, total, nil
}

// FindAll returns the full catalog snapshot in insertion order.
func (r *ChemicalRepository) FindAll(_ context.Context) ([]*models.Chemical, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Chemical, 0, len(r.chemicals))
	for _, c := range r.chemicals {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

// Exists reports whether the named chemical is cataloged.
func (r *ChemicalRepository) Exists(_ context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byName[name]
	return ok, nil
}
