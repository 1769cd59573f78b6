package portfolio

import (
	"iter"
	"slices"
)

// OrderBook keeps pending orders sorted by the comparator's priority. It is
// groundwork for a matching stage: no matching or execution happens here.
type OrderBook struct {
	cmp    *OrderComparator
	orders []Order
}

// NewOrderBook creates an empty book prioritized by cmp.
func NewOrderBook(cmp *OrderComparator) *OrderBook {
	if cmp == nil {
		cmp = NewOrderComparator(nil)
	}
	return &OrderBook{cmp: cmp}
}

// Add inserts an order at its priority rank.
func (b *OrderBook) Add(o Order) {
	i, _ := slices.BinarySearchFunc(b.orders, o, b.cmp.Compare)
	b.orders = slices.Insert(b.orders, i, o)
}

// Len returns the number of pending orders.
func (b *OrderBook) Len() int { return len(b.orders) }

// Orders iterates over the pending orders in priority order.
func (b *OrderBook) Orders() iter.Seq[Order] {
	return func(yield func(Order) bool) {
		for _, o := range b.orders {
			if !yield(o) {
				return
			}
		}
	}
}
