package handlers

import (
	"net/http"

	"github.com/ilonagrl/chemical-inventory-manager/pkg/errhttp"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/httpx"
	appsvcs "github.com/ilonagrl/chemical-inventory-manager/services/inventory/application/services"
)

// GetInventoryHandler handles GET /inventory requests.
type GetInventoryHandler struct {
	svc *appsvcs.Services
}

// NewGetInventoryHandler returns a GetInventoryHandler backed by the given services.
func NewGetInventoryHandler(svc *appsvcs.Services) *GetInventoryHandler {
	return &GetInventoryHandler{svc: svc}
}

// Execute returns the derived inventory snapshot: per-chemical remaining
// levels, alert tiers, and data-quality diagnostics. Served from cache when
// fresh, recomputed from the store otherwise.
func (h *GetInventoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Inventory.CurrentState(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, snap)
}

// GetAlertsHandler handles GET /inventory/alerts requests.
type GetAlertsHandler struct {
	svc *appsvcs.Services
}

// NewGetAlertsHandler returns a GetAlertsHandler backed by the given services.
func NewGetAlertsHandler(svc *appsvcs.Services) *GetAlertsHandler {
	return &GetAlertsHandler{svc: svc}
}

// Execute returns only the alert tiers of the current snapshot.
func (h *GetAlertsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.svc.Inventory.Alerts(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, alerts)
}
