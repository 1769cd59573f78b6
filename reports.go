package portfolio

// HoldingReport represents a detailed view of portfolio holdings at a
// specific date.
type HoldingReport struct {
	Date        Date
	Cash        Money
	Positions   []PositionHolding
	TotalAssets Money
	TotalValue  Money
	Watchlist   []string
}

// PositionHolding represents the holding of a single asset.
type PositionHolding struct {
	Symbol    string
	Name      string
	Kind      AssetType
	Quantity  int64
	RealValue Money
}

// HoldingReport assembles the holdings view of the portfolio: every
// non-empty position with its real value, the cash balance and the totals.
func (p *Portfolio) HoldingReport(on Date) (*HoldingReport, error) {
	report := &HoldingReport{Date: on, Cash: p.Cash()}

	for pos := range p.Positions() {
		qty := pos.TotalQuantity()
		if qty == 0 {
			continue
		}
		value, err := pos.RealValue()
		if err != nil {
			return nil, err
		}
		asset := pos.Asset()
		report.Positions = append(report.Positions, PositionHolding{
			Symbol:    asset.Symbol(),
			Name:      asset.Name(),
			Kind:      asset.Type(),
			Quantity:  qty,
			RealValue: value,
		})
		report.TotalAssets = report.TotalAssets.Add(value)
	}
	report.TotalValue = report.Cash.Add(report.TotalAssets)

	for sym := range p.Watchlist() {
		report.Watchlist = append(report.Watchlist, sym)
	}
	return report, nil
}
