package portfolio

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// MarketData is the symbol to price lookup table consulted by the order
// comparator. It carries the latest known price per symbol, nothing more.
type MarketData struct {
	prices map[string]Money
}

// NewMarketData returns an empty price table.
func NewMarketData() *MarketData {
	return &MarketData{prices: make(map[string]Money)}
}

// SetPrice records the current price for a symbol, replacing any previous one.
func (m *MarketData) SetPrice(symbol string, price Money) error {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return err
	}
	if !price.IsPositive() {
		return fmt.Errorf("market price must be positive, got %s: %w", price.Amount(), ErrValidation)
	}
	m.prices[sym] = price
	return nil
}

// Price returns the recorded price for a symbol, or an error when none is
// recorded.
func (m *MarketData) Price(symbol string) (Money, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return Money{}, err
	}
	price, ok := m.prices[sym]
	if !ok {
		return Money{}, fmt.Errorf("no market price recorded for %q", sym)
	}
	return price, nil
}

// Has reports whether a price is recorded for the symbol.
func (m *MarketData) Has(symbol string) bool {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return false
	}
	_, ok := m.prices[sym]
	return ok
}

// Symbols iterates over the symbols with a recorded price, sorted.
func (m *MarketData) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, sym := range slices.Sorted(maps.Keys(m.prices)) {
			if !yield(sym) {
				return
			}
		}
	}
}
