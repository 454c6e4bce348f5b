package domain

import "errors"

// Validation sentinels shared across the engine. Callers branch with
// errors.Is; the messages double as the user-facing description.
var (
	ErrInvalidLoan          = errors.New("invalid current loan")
	ErrInvalidOffer         = errors.New("invalid refinance offer")
	ErrNonPositivePrincipal = errors.New("principal must be positive")
	ErrNonPositiveTerm      = errors.New("term months must be positive")
	ErrNegativeMonthsPaid   = errors.New("months paid cannot be negative")
)
