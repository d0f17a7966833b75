package handlers

import (
	"math"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ilonagrl/chemical-inventory-manager/pkg/errhttp"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/httpx"
	appsvcs "github.com/ilonagrl/chemical-inventory-manager/services/inventory/application/services"
)

// HistoryRowResponse is one cumulative usage data point. RemainingPercent is
// null when the chemical's initial quantity was zero.
type HistoryRowResponse struct {
	ChemicalName     string          `json:"chemical_name"`
	Date             string          `json:"date"`
	AmountUsed       decimal.Decimal `json:"amount_used"`
	CumulativeUsed   decimal.Decimal `json:"cumulative_used"`
	Remaining        decimal.Decimal `json:"remaining"`
	RemainingPercent *float64        `json:"remaining_percent"`
}

// HistoryResponse is the cumulative usage time series, ordered by chemical
// name then date.
type HistoryResponse struct {
	Rows []HistoryRowResponse `json:"rows"`
}

// GetHistoryHandler handles GET /inventory/history requests.
type GetHistoryHandler struct {
	svc *appsvcs.Services
}

// NewGetHistoryHandler returns a GetHistoryHandler backed by the given services.
func NewGetHistoryHandler(svc *appsvcs.Services) *GetHistoryHandler {
	return &GetHistoryHandler{svc: svc}
}

// Execute returns the cumulative usage time series. The optional ?chemical=
// query parameter restricts the series to one cataloged chemical; an unknown
// name responds 404.
func (h *GetHistoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	chemical := r.URL.Query().Get("chemical")

	rows, err := h.svc.Inventory.UsageHistory(r.Context(), chemical)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]HistoryRowResponse, 0, len(rows))
	for _, row := range rows {
		resp := HistoryRowResponse{
			ChemicalName:   row.Name,
			Date:           row.Date.Format("2006-01-02"),
			AmountUsed:     row.AmountUsed,
			CumulativeUsed: row.CumulativeUsed,
			Remaining:      row.Remaining,
		}
		if !math.IsNaN(row.RemainingPercent) {
			pct := row.RemainingPercent
			resp.RemainingPercent = &pct
		}
		out = append(out, resp)
	}

	httpx.JSON(w, http.StatusOK, HistoryResponse{Rows: out})
}
