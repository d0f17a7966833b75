package handlers

import (
	"net/http"
	"strconv"

	"github.com/ilonagrl/chemical-inventory-manager/pkg/errhttp"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/httpx"
	appsvcs "github.com/ilonagrl/chemical-inventory-manager/services/inventory/application/services"
	"github.com/ilonagrl/chemical-inventory-manager/services/inventory/domain/repositories"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// ListChemicalsResponse is the paginated catalog listing.
type ListChemicalsResponse struct {
	Chemicals []ChemicalResponse `json:"chemicals"`
	Total     int                `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// GetChemicalsHandler handles GET /chemicals requests.
type GetChemicalsHandler struct {
	svc *appsvcs.Services
}

// NewGetChemicalsHandler returns a GetChemicalsHandler backed by the given services.
func NewGetChemicalsHandler(svc *appsvcs.Services) *GetChemicalsHandler {
	return &GetChemicalsHandler{svc: svc}
}

// Execute lists the catalog in creation order with limit/offset pagination.
func (h *GetChemicalsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	opts := parseQueryOpts(r)

	chems, total, err := h.svc.Inventory.ListChemicals(r.Context(), opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ChemicalResponse, 0, len(chems))
	for _, c := range chems {
		out = append(out, ChemicalResponse{
			ID:              c.ID,
			Name:            c.Name.String(),
			CASNumber:       c.CASNumber,
			InitialQuantity: c.InitialQuantity,
			ExpiryDate:      c.ExpiryDate.Format("2006-01-02"),
			Notes:           c.Notes,
			CreatedAt:       c.CreatedAt,
		})
	}

	httpx.JSON(w, http.StatusOK, ListChemicalsResponse{
		Chemicals: out,
		Total:     total,
		Limit:     opts.Limit,
		Offset:    opts.Offset,
	})
}

// parseQueryOpts reads limit/offset query parameters, clamping to sane bounds.
func parseQueryOpts(r *http.Request) repositories.QueryOpts {
	opts := repositories.QueryOpts{Limit: defaultPageSize}

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.Limit = min(n, maxPageSize)
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.Offset = n
		}
	}
	return opts
}
