package services

import (
	"github.com/ilonagrl/chemical-inventory-manager/pkg/app"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/cache"
	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Inventory *InventoryService
}

// New wires all inventory application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	chemRepo := postgres.NewChemicalRepository(a.Db, a.EventBus)
	usageRepo := postgres.NewUsageRepository(a.Db, a.EventBus)
	snapCache := cache.NewInventoryCache(a.Redis)
	return &Services{
		Inventory: NewInventoryService(chemRepo, usageRepo, snapCache),
	}
}
