package portfolio

import (
	"fmt"
	"iter"
)

// Position is the per-symbol ledger of purchase lots for one asset. It owns
// its lots exclusively and maintains the invariant that TotalQuantity equals
// the sum of the lot quantities.
type Position struct {
	asset  Asset
	ledger lotLedger
	total  int64
}

// NewPosition creates an empty position for an asset.
func NewPosition(asset Asset) (*Position, error) {
	if asset == nil {
		return nil, fmt.Errorf("asset cannot be nil: %w", ErrValidation)
	}
	return &Position{asset: asset}, nil
}

// Asset returns the asset this position holds.
func (p *Position) Asset() Asset { return p.asset }

// TotalQuantity returns the sum of all lot quantities.
func (p *Position) TotalQuantity() int64 { return p.total }

// AddLot appends a purchase lot to the ledger. The lot is copied in; the
// caller keeps no handle on the stored lot.
func (p *Position) AddLot(lot PurchaseLot) error {
	if err := validateQuantity(lot.Quantity); err != nil {
		return err
	}
	p.ledger.add(lot)
	p.total += lot.Quantity
	return nil
}

// ConsumeFIFO sells quantity units at sellPrice per unit, consuming the
// chronologically oldest lots first. Lots purchased on the same day are
// consumed in insertion order. The preconditions are checked before any lot
// is touched: on failure the position is unchanged.
func (p *Position) ConsumeFIFO(quantity int64, sellPrice Money) (SellResult, error) {
	if err := validateQuantity(quantity); err != nil {
		return SellResult{}, err
	}
	if !sellPrice.IsPositive() {
		return SellResult{}, fmt.Errorf("sell price must be positive, got %s: %w", sellPrice.Amount(), ErrValidation)
	}
	if quantity > p.total {
		return SellResult{}, fmt.Errorf("cannot sell %d of %s, only %d held: %w",
			quantity, p.asset.Symbol(), p.total, ErrInsufficientHoldings)
	}

	var result SellResult
	remaining := quantity
	for remaining > 0 {
		lot := p.ledger.oldest()
		used := min(lot.Quantity, remaining)
		profit := sellPrice.Sub(lot.UnitPrice).Mul(used)
		result.addClosure(LotClosure{
			PurchaseDate: lot.PurchaseDate,
			QuantitySold: used,
			Profit:       profit,
		})
		lot.Quantity -= used
		p.total -= used
		remaining -= used
		if lot.Quantity == 0 {
			p.ledger.dropOldest()
		}
	}
	return result, nil
}

// Lots iterates over copies of the lots in consumption order, oldest first.
func (p *Position) Lots() iter.Seq[PurchaseLot] {
	return func(yield func(PurchaseLot) bool) {
		for _, lot := range p.ledger.snapshot() {
			if !yield(lot) {
				return
			}
		}
	}
}

// LotCount returns the number of live lots.
func (p *Position) LotCount() int { return p.ledger.len() }

// RealValue values the whole position net of class-specific costs. An empty
// position is worth zero.
func (p *Position) RealValue() (Money, error) {
	if p.total == 0 {
		return M(0), nil
	}
	return p.asset.RealValue(p.total)
}
