package dto

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateRequest_RegisterRequest(t *testing.T) {
	valid := RegisterRequest{
		Email:    "holder@example.com",
		Name:     "Holder",
		Password: "Sup3rSecret",
	}
	if errs := ValidateRequest(&valid); errs != nil {
		t.Fatalf("expected valid request, got %v", errs)
	}

	invalid := RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
	}
	errs := ValidateRequest(&invalid)
	if len(errs) != 3 {
		t.Fatalf("expected 3 validation errors, got %v", errs)
	}

	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, f := range []string{"Email", "Name", "Password"} {
		if !fields[f] {
			t.Fatalf("expected error for field %s, got %v", f, errs)
		}
	}
}

func TestValidateRequest_MoneyMovementRequest(t *testing.T) {
	valid := MoneyMovementRequest{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(100),
	}
	if errs := ValidateRequest(&valid); errs != nil {
		t.Fatalf("expected valid request, got %v", errs)
	}

	missing := MoneyMovementRequest{}
	if errs := ValidateRequest(&missing); len(errs) == 0 {
		t.Fatalf("expected validation errors for empty request")
	}
}

func TestValidateRequest_OpenAccountRequest(t *testing.T) {
	if errs := ValidateRequest(&OpenAccountRequest{AccountType: "savings"}); errs != nil {
		t.Fatalf("expected valid request, got %v", errs)
	}

	errs := ValidateRequest(&OpenAccountRequest{})
	if len(errs) != 1 || errs[0].Type != "required" {
		t.Fatalf("expected single required error, got %v", errs)
	}
}
