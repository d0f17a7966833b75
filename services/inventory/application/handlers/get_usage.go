package handlers

import (
	"net/http"

	"github.com/ilonagrl/chemical-inventory-manager/pkg/errhttp"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/httpx"
	appsvcs "github.com/ilonagrl/chemical-inventory-manager/services/inventory/application/services"
)

// ListUsageResponse is the paginated ledger listing, newest first.
type ListUsageResponse struct {
	Events []UsageEventResponse `json:"events"`
	Total  int                  `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

// GetUsageHandler handles GET /usage requests.
type GetUsageHandler struct {
	svc *appsvcs.Services
}

// NewGetUsageHandler returns a GetUsageHandler backed by the given services.
func NewGetUsageHandler(svc *appsvcs.Services) *GetUsageHandler {
	return &GetUsageHandler{svc: svc}
}

// Execute lists the usage ledger newest first with limit/offset pagination.
func (h *GetUsageHandler) Execute(w http.ResponseWriter, r *http.Request) {
	opts := parseQueryOpts(r)

	events, total, err := h.svc.Inventory.ListUsage(r.Context(), opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]UsageEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, UsageEventResponse{
			ID:           e.ID,
			ChemicalName: e.ChemicalName,
			Date:         e.Date.Format("2006-01-02"),
			AmountUsed:   e.AmountUsed,
			Notes:        e.Notes,
			CreatedAt:    e.CreatedAt,
		})
	}

	httpx.JSON(w, http.StatusOK, ListUsageResponse{
		Events: out,
		Total:  total,
		Limit:  opts.Limit,
		Offset: opts.Offset,
	})
}
