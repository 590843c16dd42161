package trip

import "errors"

// Each error reads as the inline message shown under the form.
var (
	ErrMissingField        = errors.New("fill in both dates as DD/MM/YYYY and both budget fields")
	ErrInvalidBudgetFormat = errors.New("budget must be a whole number (digits only)")
	ErrInvalidDateOrder    = errors.New("end date must be on or after the start date")
)
