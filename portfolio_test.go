package portfolio

import (
	"errors"
	"slices"
	"testing"
)

func newTestPortfolio(t *testing.T, cash float64) *Portfolio {
	t.Helper()
	p, err := NewPortfolio(M(cash), nil)
	if err != nil {
		t.Fatalf("NewPortfolio() failed: %v", err)
	}
	return p
}

func TestNewPortfolio_RejectsNegativeCash(t *testing.T) {
	if _, err := NewPortfolio(M(-1), nil); !errors.Is(err, ErrValidation) {
		t.Errorf("NewPortfolio(-1) error = %v, want ErrValidation", err)
	}
}

func TestPortfolio_BuyDebitsCash(t *testing.T) {
	p := newTestPortfolio(t, 2000)
	share, _ := NewShare("KGH", "KGHM", M(100))

	if err := p.BuyOn(share, 10, MustParseDate("2023-01-01")); err != nil {
		t.Fatalf("BuyOn() failed: %v", err)
	}
	// Cost is 10*100 plus the flat fee.
	if !p.Cash().Equal(M(997)) {
		t.Errorf("Cash() = %s, want 997", p.Cash().Amount())
	}
	pos, ok := p.Position("KGH")
	if !ok {
		t.Fatal("Position(KGH) not found after buy")
	}
	if got := pos.TotalQuantity(); got != 10 {
		t.Errorf("TotalQuantity() = %d, want 10", got)
	}
}

func TestPortfolio_BuyInsufficientFunds(t *testing.T) {
	p := newTestPortfolio(t, 500)
	share, _ := NewShare("KGH", "KGHM", M(100))

	err := p.BuyOn(share, 10, MustParseDate("2023-01-01"))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("BuyOn() error = %v, want ErrInsufficientFunds", err)
	}
	if !p.Cash().Equal(M(500)) {
		t.Errorf("Cash() = %s, want 500 (unchanged)", p.Cash().Amount())
	}
	if _, ok := p.Position("KGH"); ok {
		t.Error("Position(KGH) exists after rejected buy")
	}
}

func TestPortfolio_SellCreditsCash(t *testing.T) {
	p := newTestPortfolio(t, 2000)
	share, _ := NewShare("KGH", "KGHM", M(100))
	if err := p.BuyOn(share, 10, MustParseDate("2023-01-01")); err != nil {
		t.Fatalf("BuyOn() failed: %v", err)
	}

	result, err := p.Sell("kgh", 4, M(150))
	if err != nil {
		t.Fatalf("Sell() failed: %v", err)
	}
	if !result.TotalProfit().Equal(M(200)) {
		t.Errorf("TotalProfit() = %s, want 200", result.TotalProfit().Amount())
	}
	// 997 after the buy, plus 4*150 proceeds.
	if !p.Cash().Equal(M(1597)) {
		t.Errorf("Cash() = %s, want 1597", p.Cash().Amount())
	}
	pos, _ := p.Position("KGH")
	if got := pos.TotalQuantity(); got != 6 {
		t.Errorf("TotalQuantity() = %d, want 6", got)
	}
}

func TestPortfolio_SellUnknownSymbol(t *testing.T) {
	p := newTestPortfolio(t, 2000)
	if _, err := p.Sell("KGH", 1, M(150)); !errors.Is(err, ErrInsufficientHoldings) {
		t.Errorf("Sell(KGH) error = %v, want ErrInsufficientHoldings", err)
	}
	if !p.Cash().Equal(M(2000)) {
		t.Errorf("Cash() = %s, want 2000 (unchanged)", p.Cash().Amount())
	}
}

func TestPortfolio_SellTooMuchLeavesStateUnchanged(t *testing.T) {
	p := newTestPortfolio(t, 2000)
	share, _ := NewShare("KGH", "KGHM", M(100))
	if err := p.BuyOn(share, 10, MustParseDate("2023-01-01")); err != nil {
		t.Fatalf("BuyOn() failed: %v", err)
	}
	cashBefore := p.Cash()

	if _, err := p.Sell("KGH", 11, M(150)); !errors.Is(err, ErrInsufficientHoldings) {
		t.Fatalf("Sell(11) error = %v, want ErrInsufficientHoldings", err)
	}
	if !p.Cash().Equal(cashBefore) {
		t.Errorf("Cash() = %s, want %s (unchanged)", p.Cash().Amount(), cashBefore.Amount())
	}
	pos, _ := p.Position("KGH")
	if got := pos.TotalQuantity(); got != 10 {
		t.Errorf("TotalQuantity() = %d, want 10 (unchanged)", got)
	}
}

func TestPortfolio_TotalValue(t *testing.T) {
	p := newTestPortfolio(t, 2000)
	share, _ := NewShare("KGH", "KGHM", M(100))
	if err := p.BuyOn(share, 10, MustParseDate("2023-01-01")); err != nil {
		t.Fatalf("BuyOn() failed: %v", err)
	}

	assets, err := p.TotalAssetsRealValue()
	if err != nil {
		t.Fatalf("TotalAssetsRealValue() failed: %v", err)
	}
	if !assets.Equal(M(997)) {
		t.Errorf("TotalAssetsRealValue() = %s, want 997", assets.Amount())
	}

	total, err := p.TotalValue()
	if err != nil {
		t.Fatalf("TotalValue() failed: %v", err)
	}
	// Cash 997 plus assets 997.
	if !total.Equal(M(1994)) {
		t.Errorf("TotalValue() = %s, want 1994", total.Amount())
	}
}

func TestPortfolio_PlaceOrder(t *testing.T) {
	p := newTestPortfolio(t, 1000)
	var seq Sequence

	for _, limit := range []float64{100, 110, 105} {
		order, err := NewOrder(&seq, "KGH", Buy, 10, M(limit))
		if err != nil {
			t.Fatalf("NewOrder(%v) failed: %v", limit, err)
		}
		if err := p.PlaceOrder(order); err != nil {
			t.Fatalf("PlaceOrder(%v) failed: %v", limit, err)
		}
	}
	if got := p.PendingOrderCount(); got != 3 {
		t.Fatalf("PendingOrderCount() = %d, want 3", got)
	}

	var limits []string
	for o := range p.PendingOrders() {
		limits = append(limits, o.LimitPrice.Amount().String())
	}
	// Highest bid first.
	want := []string{"110", "105", "100"}
	if !slices.Equal(limits, want) {
		t.Errorf("pending order limits = %v, want %v", limits, want)
	}

	if err := p.PlaceOrder(Order{}); !errors.Is(err, ErrValidation) {
		t.Errorf("PlaceOrder(zero order) error = %v, want ErrValidation", err)
	}
}

func TestPortfolio_Watchlist(t *testing.T) {
	p := newTestPortfolio(t, 0)

	added, err := p.AddToWatchlist("pkn")
	if err != nil || !added {
		t.Fatalf("AddToWatchlist(pkn) = %v, %v, want true, nil", added, err)
	}
	added, err = p.AddToWatchlist("PKN")
	if err != nil || added {
		t.Fatalf("AddToWatchlist(PKN) again = %v, %v, want false, nil", added, err)
	}
	if _, err := p.AddToWatchlist("x"); !errors.Is(err, ErrValidation) {
		t.Errorf("AddToWatchlist(x) error = %v, want ErrValidation", err)
	}

	if _, err := p.AddToWatchlist("ALE"); err != nil {
		t.Fatalf("AddToWatchlist(ALE) failed: %v", err)
	}
	got := slices.Collect(p.Watchlist())
	want := []string{"ALE", "PKN"}
	if !slices.Equal(got, want) {
		t.Errorf("Watchlist() = %v, want %v", got, want)
	}
}

func TestPortfolio_RegisterPosition(t *testing.T) {
	p := newTestPortfolio(t, 0)
	share, _ := NewShare("KGH", "KGHM", M(100))

	if err := p.RegisterPosition(share); err != nil {
		t.Fatalf("RegisterPosition() failed: %v", err)
	}
	pos, ok := p.Position("KGH")
	if !ok {
		t.Fatal("Position(KGH) not found after registration")
	}
	if got := pos.TotalQuantity(); got != 0 {
		t.Errorf("TotalQuantity() = %d, want 0", got)
	}
	// Registering the same symbol twice keeps the existing position.
	if err := p.RegisterPosition(share); err != nil {
		t.Fatalf("RegisterPosition() second call failed: %v", err)
	}
	again, _ := p.Position("KGH")
	if again != pos {
		t.Error("second RegisterPosition replaced the existing position")
	}
	if err := p.RegisterPosition(nil); !errors.Is(err, ErrValidation) {
		t.Errorf("RegisterPosition(nil) error = %v, want ErrValidation", err)
	}
}
