package portfolio

import "errors"

// Sentinel errors for the failure categories of the engine. Callers match
// them with errors.Is; the wrapped message carries the specifics.
var (
	// ErrValidation reports a malformed constructor or method argument:
	// non-positive quantity or price, blank or malformed symbol,
	// out-of-range spread.
	ErrValidation = errors.New("invalid input")

	// ErrInsufficientFunds reports a buy whose cost exceeds the available
	// cash. Cash and positions are left unchanged.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientHoldings reports a sell that exceeds the owned
	// quantity, or a sell of an unknown symbol. No lot is mutated.
	ErrInsufficientHoldings = errors.New("insufficient holdings")

	// ErrDataIntegrity reports a malformed or inconsistent portfolio file.
	// It is raised only by the persistence layer, never by the engine.
	ErrDataIntegrity = errors.New("data integrity violation")
)
