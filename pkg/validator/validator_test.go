package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ilonagrl/chemical-inventory-manager/pkg/validator"
)

type sampleStruct struct {
	ID    string `validate:"required,uuid"`
	Name  string `validate:"required,min=1,max=10"`
	Email string `validate:"omitempty,email"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		ID:   "550e8400-e29b-41d4-a716-446655440000",
		Name: "hello",
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["ID"] != "This field is required" {
		t.Errorf("unexpected ID message: %q", m["ID"])
	}
	if m["Name"] != "This field is required" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{ID: "550e8400-e29b-41d4-a716-446655440000", Name: "12345678901"} // 11 chars > max=10
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Name"] != "Maximum length is 10" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- custom quantity tags ---

type quantityStruct struct {
	Amount string `json:"amount" validate:"required,decimal,decimal_gte_0"`
	Date   string `json:"date"   validate:"required,datetime=2006-01-02"`
}

func TestValidate_decimalTags(t *testing.T) {
	tests := []struct {
		name    string
		s       quantityStruct
		wantErr bool
		field   string
		msg     string
	}{
		{"valid", quantityStruct{Amount: "12.5", Date: "2026-03-01"}, false, "", ""},
		{"zero", quantityStruct{Amount: "0", Date: "2026-03-01"}, false, "", ""},
		{"high precision", quantityStruct{Amount: "0.000001", Date: "2026-03-01"}, false, "", ""},
		{"not a number", quantityStruct{Amount: "twelve", Date: "2026-03-01"}, true, "amount", "Must be a decimal number"},
		{"negative", quantityStruct{Amount: "-3", Date: "2026-03-01"}, true, "amount", "Must not be negative"},
		{"bad date", quantityStruct{Amount: "1", Date: "03/01/2026"}, true, "date", "Must be a date in 2006-01-02 format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pkgvalidator.Validate(&tt.s)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			m := pkgvalidator.FormatValidationErrors(err)
			if m[tt.field] != tt.msg {
				t.Errorf("%s: got %q, want %q", tt.field, m[tt.field], tt.msg)
			}
		})
	}
}

// --- ValidateRequest ---

type chemicalReq struct {
	Name            string `json:"name"             validate:"required,min=1,max=255"`
	InitialQuantity string `json:"initial_quantity" validate:"required,decimal,decimal_gte_0"`
	ExpiryDate      string `json:"expiry_date"      validate:"required,datetime=2006-01-02"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"name":"Acetone","initial_quantity":"100","expiry_date":"2026-12-31"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[chemicalReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Acetone" {
		t.Errorf("unexpected Name: %q", req.Name)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[chemicalReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"name":"Acetone"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[chemicalReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing fields")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") {
		t.Errorf("expected 'Validation failed' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_negativeQuantity(t *testing.T) {
	body := `{"name":"Acetone","initial_quantity":"-5","expiry_date":"2026-12-31"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[chemicalReq](w, r)
	if ok {
		t.Fatal("expected ok=false for negative quantity")
	}
	if !strings.Contains(w.Body.String(), "Must not be negative") {
		t.Errorf("expected negative quantity error in body, got: %s", w.Body.String())
	}
}
