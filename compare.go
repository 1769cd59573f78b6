package portfolio

import (
	"cmp"
	"strings"
)

// OrderComparator defines the strict total order used to prioritize pending
// orders: buys before sells, then symbol, then price favorability (highest
// bid first, lowest ask first), then an optional market-data attractiveness
// tiebreak, then logical creation time, and finally the unique order ID so
// that no two distinct orders ever compare equal.
type OrderComparator struct {
	market *MarketData
}

// NewOrderComparator creates a comparator. The market data is optional: with
// a nil market the comparator is pure price-time priority.
func NewOrderComparator(market *MarketData) *OrderComparator {
	return &OrderComparator{market: market}
}

// Compare returns a negative number when a ranks before b, positive when b
// ranks before a, and zero only when a and b are the same order.
func (c *OrderComparator) Compare(a, b Order) int {
	if n := cmp.Compare(a.Side, b.Side); n != 0 {
		return n // Buy < Sell
	}
	if n := strings.Compare(a.Symbol, b.Symbol); n != 0 {
		return n
	}

	var priceCmp int
	if a.Side == Buy {
		priceCmp = b.LimitPrice.Cmp(a.LimitPrice) // higher bid first
	} else {
		priceCmp = a.LimitPrice.Cmp(b.LimitPrice) // lower ask first
	}
	if priceCmp != 0 {
		return priceCmp
	}

	if price, ok := c.marketPrice(a.Symbol); ok {
		aScore := attractiveness(a, price)
		bScore := attractiveness(b, price)
		if n := bScore.Cmp(aScore); n != 0 { // higher score first
			return n
		}
	}

	if n := cmp.Compare(a.CreatedAt, b.CreatedAt); n != 0 {
		return n // earlier first
	}
	return cmp.Compare(a.ID, b.ID)
}

// marketPrice looks up the current price, degrading gracefully when the
// market data is absent or has no price for the symbol.
func (c *OrderComparator) marketPrice(symbol string) (Money, bool) {
	if c == nil || c.market == nil {
		return Money{}, false
	}
	price, err := c.market.Price(symbol)
	if err != nil {
		return Money{}, false
	}
	return price, true
}

// attractiveness measures how far inside the market an order is: for a buy,
// limit above market; for a sell, limit below market. Higher is better.
func attractiveness(o Order, marketPrice Money) Money {
	if o.Side == Buy {
		return o.LimitPrice.Sub(marketPrice)
	}
	return marketPrice.Sub(o.LimitPrice)
}
