package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgInvalidConfig = "invalid machine configuration"

	// Bet errors
	ErrMsgInvalidBet = "invalid bet"

	// Grid errors
	ErrMsgInvalidGrid       = "invalid grid"
	ErrMsgUnexpectedSymbol  = "unexpected symbol"
	ErrMsgInvalidPosition   = "position outside grid"
	ErrMsgEmptyPayoutTable  = "payout table is empty"
	ErrMsgNonMonotonicTable = "payout table must be non-decreasing in count"

	// Machine catalogue errors
	ErrMsgMachineNotFound = "machine not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidConfig is fatal at load time: no engine is built from a configuration that fails it.
	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)

	// ErrInvalidBet is returned before any grid is generated.
	ErrInvalidBet = errors.New(ErrMsgInvalidBet)

	// Grid errors
	ErrInvalidGrid      = errors.New(ErrMsgInvalidGrid)
	ErrUnexpectedSymbol = errors.New(ErrMsgUnexpectedSymbol)

	// Machine catalogue errors
	ErrMachineNotFound = errors.New(ErrMsgMachineNotFound)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
