package portfolio

// LotClosure records the consumption of (part of) one purchase lot by a sell.
type LotClosure struct {
	PurchaseDate Date
	QuantitySold int64
	Profit       Money // (sellPrice - unitPrice) * quantitySold
}

// SellResult is the outcome of one FIFO sell: the lot closures in
// consumption order and their aggregated profit.
type SellResult struct {
	closures    []LotClosure
	totalProfit Money
}

func (r *SellResult) addClosure(c LotClosure) {
	r.closures = append(r.closures, c)
	r.totalProfit = r.totalProfit.Add(c.Profit)
}

// Closures returns the lot closures in the order lots were consumed.
func (r *SellResult) Closures() []LotClosure {
	out := make([]LotClosure, len(r.closures))
	copy(out, r.closures)
	return out
}

// TotalProfit returns the realized profit summed over all closures.
func (r *SellResult) TotalProfit() Money { return r.totalProfit }

// QuantitySold returns the total quantity consumed by the sell.
func (r *SellResult) QuantitySold() int64 {
	var total int64
	for _, c := range r.closures {
		total += c.QuantitySold
	}
	return total
}
