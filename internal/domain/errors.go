package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountAlreadyOpen  = errors.New("user already has an account")
	ErrAccountTypeNotFound = errors.New("account type not found")
	ErrInsufficientFunds   = errors.New("insufficient funds for withdrawal")

	// Transaction errors
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrAmountTooLarge   = errors.New("amount exceeds maximum allowed")
	ErrInvalidDateRange = errors.New("date range end precedes start")

	// User errors
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrPasswordTooWeak = errors.New("password does not meet requirements")

	// Authentication errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)
