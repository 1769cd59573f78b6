package portfolio

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Portfolio owns the cash balance, the per-symbol positions and the pending
// order book. All operations are all-or-nothing: a rejected buy or sell
// leaves the portfolio exactly as it was.
//
// A Portfolio is not safe for concurrent use; callers sharing one instance
// must serialize Buy, Sell and PlaceOrder.
type Portfolio struct {
	cash      Money
	positions map[string]*Position
	watchlist map[string]struct{}
	market    *MarketData
	book      *OrderBook
}

// NewPortfolio creates a portfolio with an initial cash balance. The market
// data is optional and only feeds the order priority tiebreak; passing nil
// creates an empty table.
func NewPortfolio(initialCash Money, market *MarketData) (*Portfolio, error) {
	if initialCash.IsNegative() {
		return nil, fmt.Errorf("initial cash cannot be negative, got %s: %w", initialCash.Amount(), ErrValidation)
	}
	if market == nil {
		market = NewMarketData()
	}
	return &Portfolio{
		cash:      initialCash,
		positions: make(map[string]*Position),
		watchlist: make(map[string]struct{}),
		market:    market,
		book:      NewOrderBook(NewOrderComparator(market)),
	}, nil
}

// Cash returns the current cash balance.
func (p *Portfolio) Cash() Money { return p.cash }

// MarketData returns the price table backing the order priority tiebreak.
func (p *Portfolio) MarketData() *MarketData { return p.market }

// Buy purchases quantity units of an asset dated today. See BuyOn.
func (p *Portfolio) Buy(asset Asset, quantity int64) error {
	return p.BuyOn(asset, quantity, Today())
}

// BuyOn purchases quantity units of an asset, dating the new lot on a given
// day. The cost comes from the asset's purchase formula; when it exceeds the
// available cash the buy fails and nothing changes.
func (p *Portfolio) BuyOn(asset Asset, quantity int64, day Date) error {
	if asset == nil {
		return fmt.Errorf("asset cannot be nil: %w", ErrValidation)
	}
	cost, err := asset.PurchaseCost(quantity)
	if err != nil {
		return err
	}
	if cost.GreaterThan(p.cash) {
		return fmt.Errorf("buying %d %s costs %s, have %s: %w",
			quantity, asset.Symbol(), cost.Amount(), p.cash.Amount(), ErrInsufficientFunds)
	}
	lot, err := NewPurchaseLot(day, quantity, asset.BasePrice())
	if err != nil {
		return err
	}

	pos, ok := p.positions[asset.Symbol()]
	if !ok {
		pos, err = NewPosition(asset)
		if err != nil {
			return err
		}
		p.positions[asset.Symbol()] = pos
	}
	// Past this point nothing can fail anymore.
	p.cash = p.cash.Sub(cost)
	return pos.AddLot(lot)
}

// Sell disposes of quantity units of the holding for symbol at sellPrice per
// unit, consuming lots first-in first-out. On success the proceeds are added
// to cash and the realized profit is reported per consumed lot. An unknown
// symbol or a quantity above the holding fails without touching any state.
func (p *Portfolio) Sell(symbol string, quantity int64, sellPrice Money) (SellResult, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return SellResult{}, err
	}
	pos, ok := p.positions[sym]
	if !ok {
		return SellResult{}, fmt.Errorf("no holding for %q: %w", sym, ErrInsufficientHoldings)
	}
	result, err := pos.ConsumeFIFO(quantity, sellPrice)
	if err != nil {
		return SellResult{}, err
	}
	p.cash = p.cash.Add(sellPrice.Mul(quantity))
	return result, nil
}

// PlaceOrder inserts an order into the pending book at its priority rank.
// No matching or execution is performed.
func (p *Portfolio) PlaceOrder(order Order) error {
	if order.ID == 0 {
		return fmt.Errorf("order has no identifier: %w", ErrValidation)
	}
	p.book.Add(order)
	return nil
}

// PendingOrders iterates over the pending orders in priority order.
func (p *Portfolio) PendingOrders() iter.Seq[Order] { return p.book.Orders() }

// PendingOrderCount returns the number of pending orders.
func (p *Portfolio) PendingOrderCount() int { return p.book.Len() }

// AddToWatchlist adds a symbol to the watchlist and reports whether it was
// newly added.
func (p *Portfolio) AddToWatchlist(symbol string) (bool, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return false, err
	}
	if _, ok := p.watchlist[sym]; ok {
		return false, nil
	}
	p.watchlist[sym] = struct{}{}
	return true, nil
}

// Watchlist iterates over the watched symbols, sorted.
func (p *Portfolio) Watchlist() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, sym := range slices.Sorted(maps.Keys(p.watchlist)) {
			if !yield(sym) {
				return
			}
		}
	}
}

// RegisterPosition creates an empty position for an asset if none exists.
// This is the registration primitive used by the persistence loader; lots
// are then added through Position.AddLot.
func (p *Portfolio) RegisterPosition(asset Asset) error {
	if asset == nil {
		return fmt.Errorf("asset cannot be nil: %w", ErrValidation)
	}
	if _, ok := p.positions[asset.Symbol()]; ok {
		return nil
	}
	pos, err := NewPosition(asset)
	if err != nil {
		return err
	}
	p.positions[asset.Symbol()] = pos
	return nil
}

// Position returns the position held for a symbol.
func (p *Portfolio) Position(symbol string) (*Position, bool) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, false
	}
	pos, ok := p.positions[sym]
	return pos, ok
}

// Positions iterates over the positions sorted by symbol.
func (p *Portfolio) Positions() iter.Seq[*Position] {
	return func(yield func(*Position) bool) {
		for _, sym := range slices.Sorted(maps.Keys(p.positions)) {
			if !yield(p.positions[sym]) {
				return
			}
		}
	}
}

// TotalAssetsRealValue sums the real value of every non-empty position.
func (p *Portfolio) TotalAssetsRealValue() (Money, error) {
	total := M(0)
	for pos := range p.Positions() {
		if pos.TotalQuantity() == 0 {
			continue
		}
		value, err := pos.RealValue()
		if err != nil {
			return Money{}, err
		}
		total = total.Add(value)
	}
	return total, nil
}

// TotalValue is cash plus the real value of all holdings.
func (p *Portfolio) TotalValue() (Money, error) {
	assets, err := p.TotalAssetsRealValue()
	if err != nil {
		return Money{}, err
	}
	return p.cash.Add(assets), nil
}
