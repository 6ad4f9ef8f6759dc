package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/usecase"
)

var validate = validator.New()

// ValidationError describes a single failed field constraint.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ValidateRequest runs struct tag validation and returns field-level errors.
func ValidateRequest(obj any) []ValidationError {
	var validationErrors []ValidationError

	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	for _, err := range err.(validator.ValidationErrors) {
		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: validationMessage(err),
			Type:    err.Tag(),
		})
	}

	return validationErrors
}

func validationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}

// RegisterRequest represents a request to register an account holder.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required,max=128"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// OpenAccountRequest represents a request to open an account.
type OpenAccountRequest struct {
	AccountType    string `json:"account_type" validate:"required"`
	AllowOverdraft bool   `json:"allow_overdraft"`
}

// ToUseCaseInput converts to use case input.
func (r *OpenAccountRequest) ToUseCaseInput(userID string) usecase.OpenAccountInput {
	return usecase.OpenAccountInput{
		UserID:         userID,
		AccountType:    r.AccountType,
		AllowOverdraft: r.AllowOverdraft,
	}
}

// MoneyMovementRequest represents a deposit or withdrawal request. Amount
// bounds are enforced by the use case, not here.
type MoneyMovementRequest struct {
	AccountID string          `json:"account_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount"     validate:"required"`
}

// ToUseCaseInput converts to use case input.
func (r *MoneyMovementRequest) ToUseCaseInput() usecase.MoneyMovementInput {
	return usecase.MoneyMovementInput{
		AccountID: r.AccountID,
		Amount:    r.Amount,
	}
}
