package portfolio

import (
	"fmt"
	"strings"
)

// Side distinguishes buy orders from sell orders.
type Side int

const (
	// Buy bids for an asset at or below the limit price.
	Buy Side = iota
	// Sell offers an asset at or above the limit price.
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "unknown"
	}
}

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown order side %q: %w", s, ErrValidation)
	}
}

// Sequence issues the logical timestamps and identifiers for orders. A single
// monotonic counter replaces wall-clock time so that price-time priority is
// deterministic even for orders created back to back.
type Sequence struct {
	n uint64
}

// Next returns the next value. The first value is 1, never 0.
func (s *Sequence) Next() uint64 {
	s.n++
	return s.n
}

// Order is an immutable pending limit order.
type Order struct {
	ID         uint64 // unique, breaks residual ties in the comparator
	Symbol     string
	Side       Side
	Quantity   int64
	LimitPrice Money
	CreatedAt  uint64 // logical timestamp, monotonically increasing
}

// NewOrder creates a validated order, drawing its identifier and logical
// timestamp from seq.
func NewOrder(seq *Sequence, symbol string, side Side, quantity int64, limitPrice Money) (Order, error) {
	if seq == nil {
		return Order{}, fmt.Errorf("sequence cannot be nil: %w", ErrValidation)
	}
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return Order{}, err
	}
	if err := validateQuantity(quantity); err != nil {
		return Order{}, err
	}
	if !limitPrice.IsPositive() {
		return Order{}, fmt.Errorf("limit price must be positive, got %s: %w", limitPrice.Amount(), ErrValidation)
	}
	id := seq.Next()
	return Order{
		ID:         id,
		Symbol:     sym,
		Side:       side,
		Quantity:   quantity,
		LimitPrice: limitPrice,
		CreatedAt:  id,
	}, nil
}
