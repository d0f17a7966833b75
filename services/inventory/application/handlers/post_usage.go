package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ilonagrl/chemical-inventory-manager/pkg/errhttp"
	"github.com/ilonagrl/chemical-inventory-manager/pkg/httpx"
	pkgvalidator "github.com/ilonagrl/chemical-inventory-manager/pkg/validator"
	appsvcs "github.com/ilonagrl/chemical-inventory-manager/services/inventory/application/services"
)

// LogUsageRequest is the request body for POST /usage.
// Date is optional and defaults to today when omitted.
type LogUsageRequest struct {
	ChemicalName string `json:"chemical_name" validate:"required,min=1,max=255"`
	Date         string `json:"date"          validate:"omitempty,datetime=2006-01-02"`
	AmountUsed   string `json:"amount_used"   validate:"required,decimal,decimal_gte_0"`
	Notes        string `json:"notes"         validate:"omitempty,max=2000"`
}

// UsageEventResponse is the wire representation of a ledger entry.
type UsageEventResponse struct {
	ID           uuid.UUID       `json:"id"`
	ChemicalName string          `json:"chemical_name"`
	Date         string          `json:"date"`
	AmountUsed   decimal.Decimal `json:"amount_used"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PostUsageHandler handles POST /usage requests.
type PostUsageHandler struct {
	svc *appsvcs.Services
}

// NewPostUsageHandler returns a PostUsageHandler backed by the given services.
func NewPostUsageHandler(svc *appsvcs.Services) *PostUsageHandler {
	return &PostUsageHandler{svc: svc}
}

// Execute appends a usage event to the ledger. Responds 201 with the stored
// entry, 404 when the chemical is not cataloged, 422 on validation failure.
func (h *PostUsageHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LogUsageRequest](w, r)
	if !ok {
		return
	}

	amount, err := decimal.NewFromString(req.AmountUsed)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "amount_used must be a decimal number")
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			httpx.JSONError(w, http.StatusUnprocessableEntity, "date must be YYYY-MM-DD")
			return
		}
	}

	event, err := h.svc.Inventory.LogUsage(r.Context(), req.ChemicalName, date, amount, req.Notes)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, UsageEventResponse{
		ID:           event.ID,
		ChemicalName: event.ChemicalName,
		Date:         event.Date.Format("2006-01-02"),
		AmountUsed:   event.AmountUsed,
		Notes:        event.Notes,
		CreatedAt:    event.CreatedAt,
	})
}
