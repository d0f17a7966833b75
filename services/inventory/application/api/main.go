package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ilonagrl/chemical-inventory-manager/pkg/app"
	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/application/handlers"
	appsvcs "github.com/ilonagrl/chemical-inventory-manager/services/inventory/application/services"
)

// InventoryRoutes registers inventory endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/chemicals", func(r chi.Router) {
			r.Post("/", handlers.NewPostChemicalHandler(svcs).Execute)
			r.Get("/", handlers.NewGetChemicalsHandler(svcs).Execute)
		})
		r.Route("/usage", func(r chi.Router) {
			r.Post("/", handlers.NewPostUsageHandler(svcs).Execute)
			r.Get("/", handlers.NewGetUsageHandler(svcs).Execute)
		})
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handlers.NewGetInventoryHandler(svcs).Execute)
			r.Get("/alerts", handlers.NewGetAlertsHandler(svcs).Execute)
			r.Get("/history", handlers.NewGetHistoryHandler(svcs).Execute)
		})
	})
}
