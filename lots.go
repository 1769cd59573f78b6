package portfolio

import (
	"fmt"
	"slices"
	"sort"
)

// PurchaseLot is a single dated acquisition batch of one asset. The quantity
// decreases as the lot is consumed by sells; the date and unit price never
// change.
type PurchaseLot struct {
	PurchaseDate Date
	Quantity     int64
	UnitPrice    Money
}

// NewPurchaseLot creates a lot after validating its fields.
func NewPurchaseLot(purchaseDate Date, quantity int64, unitPrice Money) (PurchaseLot, error) {
	if purchaseDate.IsZero() {
		return PurchaseLot{}, fmt.Errorf("purchase date is missing: %w", ErrValidation)
	}
	if err := validateQuantity(quantity); err != nil {
		return PurchaseLot{}, err
	}
	if !unitPrice.IsPositive() {
		return PurchaseLot{}, fmt.Errorf("unit price must be positive, got %s: %w", unitPrice.Amount(), ErrValidation)
	}
	return PurchaseLot{PurchaseDate: purchaseDate, Quantity: quantity, UnitPrice: unitPrice}, nil
}

// ownedLot is a lot owned by a position, tagged with the insertion sequence
// that breaks ties between lots purchased on the same day.
type ownedLot struct {
	PurchaseLot
	seq uint64
}

// lotLedger keeps owned lots ordered by (purchaseDate, insertion sequence).
// The head of the ledger is always the next lot to consume, regardless of the
// order lots were physically added.
type lotLedger struct {
	lots []ownedLot
	seq  uint64
}

// add inserts a lot in chronological order. Lots sharing a purchase date keep
// their insertion order.
func (l *lotLedger) add(lot PurchaseLot) {
	l.seq++
	owned := ownedLot{PurchaseLot: lot, seq: l.seq}
	// Position after every existing lot with the same or an earlier date.
	i := sort.Search(len(l.lots), func(i int) bool {
		return l.lots[i].PurchaseDate.After(lot.PurchaseDate)
	})
	l.lots = slices.Insert(l.lots, i, owned)
}

// oldest returns a pointer to the chronologically first lot, or nil when empty.
func (l *lotLedger) oldest() *ownedLot {
	if len(l.lots) == 0 {
		return nil
	}
	return &l.lots[0]
}

// dropOldest removes the head lot.
func (l *lotLedger) dropOldest() {
	l.lots = slices.Delete(l.lots, 0, 1)
}

func (l *lotLedger) len() int { return len(l.lots) }

// snapshot returns copies of the lots in consumption order.
func (l *lotLedger) snapshot() []PurchaseLot {
	out := make([]PurchaseLot, 0, len(l.lots))
	for _, lot := range l.lots {
		out = append(out, lot.PurchaseLot)
	}
	return out
}
