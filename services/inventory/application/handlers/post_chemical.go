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

// CreateChemicalRequest is the request body for POST /chemicals.
// Quantities travel as decimal strings to avoid float rounding on the wire.
type CreateChemicalRequest struct {
	Name            string `json:"name"             validate:"required,min=1,max=255"`
	CASNumber       string `json:"cas_number"       validate:"omitempty,max=32"`
	InitialQuantity string `json:"initial_quantity" validate:"required,decimal,decimal_gte_0"`
	ExpiryDate      string `json:"expiry_date"      validate:"required,datetime=2006-01-02"`
	Notes           string `json:"notes"            validate:"omitempty,max=2000"`
}

// ChemicalResponse is the wire representation of a cataloged chemical.
type ChemicalResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	CASNumber       string          `json:"cas_number,omitempty"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	ExpiryDate      string          `json:"expiry_date"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PostChemicalHandler handles POST /chemicals requests.
type PostChemicalHandler struct {
	svc *appsvcs.Services
}

// NewPostChemicalHandler returns a PostChemicalHandler backed by the given services.
func NewPostChemicalHandler(svc *appsvcs.Services) *PostChemicalHandler {
	return &PostChemicalHandler{svc: svc}
}

// Execute catalogs a new chemical. Responds 201 with the stored record,
// 409 when the name is already cataloged, 422 on validation failure.
func (h *PostChemicalHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateChemicalRequest](w, r)
	if !ok {
		return
	}

	// Both already validated by tags; errors here are unreachable.
	initial, err := decimal.NewFromString(req.InitialQuantity)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "initial_quantity must be a decimal number")
		return
	}
	expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "expiry_date must be YYYY-MM-DD")
		return
	}

	chem, err := h.svc.Inventory.AddChemical(r.Context(), req.Name, req.CASNumber, initial, expiry, req.Notes)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ChemicalResponse{
		ID:              chem.ID,
		Name:            chem.Name.String(),
		CASNumber:       chem.CASNumber,
		InitialQuantity: chem.InitialQuantity,
		ExpiryDate:      chem.ExpiryDate.Format("2006-01-02"),
		Notes:           chem.Notes,
		CreatedAt:       chem.CreatedAt,
	})
}
