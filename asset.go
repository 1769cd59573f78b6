package portfolio

import (
	"fmt"
	"regexp"
	"strings"
)

// AssetType identifies one of the closed set of asset classes.
type AssetType int

const (
	// ShareType is an equity share with a fixed manipulation fee on each side.
	ShareType AssetType = iota
	// CurrencyType is a foreign currency position quoted with a bid/ask spread.
	CurrencyType
	// CommodityType is a physical commodity that decays in value through storage costs.
	CommodityType
)

func (t AssetType) String() string {
	switch t {
	case ShareType:
		return "SHARE"
	case CurrencyType:
		return "CURRENCY"
	case CommodityType:
		return "COMMODITY"
	default:
		return "unknown"
	}
}

// ParseAssetType parses a string into an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SHARE":
		return ShareType, nil
	case "CURRENCY":
		return CurrencyType, nil
	case "COMMODITY":
		return CommodityType, nil
	default:
		return 0, fmt.Errorf("unknown asset type %q: %w", s, ErrValidation)
	}
}

// Asset is the capability shared by all asset classes. Implementations are
// immutable value types; the set is closed (Share, Currency, Commodity).
type Asset interface {
	Symbol() string
	Name() string
	BasePrice() Money
	// PurchaseCost returns the total cost of acquiring quantity units,
	// including class-specific charges.
	PurchaseCost(quantity int64) (Money, error)
	// RealValue returns the liquidation value of quantity units net of
	// class-specific costs, never negative.
	RealValue(quantity int64) (Money, error)
	// Type returns the asset class tag, used by the persistence layer.
	Type() AssetType
}

var symbolPattern = regexp.MustCompile(`^[A-Z]{3,6}$`)

// NormalizeSymbol trims and uppercases a symbol, and checks it is 3 to 6
// latin letters.
func NormalizeSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return "", fmt.Errorf("symbol cannot be blank: %w", ErrValidation)
	}
	if !symbolPattern.MatchString(s) {
		return "", fmt.Errorf("symbol %q must be 3-6 uppercase letters: %w", symbol, ErrValidation)
	}
	return s, nil
}

// assetCore carries the fields common to every asset class.
type assetCore struct {
	symbol    string
	name      string
	basePrice Money
}

func newAssetCore(symbol, name string, basePrice Money) (assetCore, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return assetCore{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return assetCore{}, fmt.Errorf("asset name cannot be blank: %w", ErrValidation)
	}
	if !basePrice.IsPositive() {
		return assetCore{}, fmt.Errorf("base price must be positive, got %s: %w", basePrice.Amount(), ErrValidation)
	}
	return assetCore{symbol: sym, name: name, basePrice: basePrice}, nil
}

func (a assetCore) Symbol() string   { return a.symbol }
func (a assetCore) Name() string     { return a.name }
func (a assetCore) BasePrice() Money { return a.basePrice }

func validateQuantity(quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d: %w", quantity, ErrValidation)
	}
	return nil
}

// manipulationFee is the flat fee charged on every share purchase and
// subtracted from the real value on the way out.
var manipulationFee = M(3)

// Share is an equity share.
type Share struct {
	assetCore
}

// NewShare creates a Share asset.
func NewShare(symbol, name string, basePrice Money) (Share, error) {
	core, err := newAssetCore(symbol, name, basePrice)
	if err != nil {
		return Share{}, err
	}
	return Share{assetCore: core}, nil
}

func (s Share) Type() AssetType { return ShareType }

// PurchaseCost is basePrice*quantity plus the manipulation fee.
func (s Share) PurchaseCost(quantity int64) (Money, error) {
	if err := validateQuantity(quantity); err != nil {
		return Money{}, err
	}
	return s.basePrice.Mul(quantity).Add(manipulationFee), nil
}

// RealValue is basePrice*quantity minus the manipulation fee, floored at zero.
func (s Share) RealValue(quantity int64) (Money, error) {
	if err := validateQuantity(quantity); err != nil {
		return Money{}, err
	}
	return s.basePrice.Mul(quantity).Sub(manipulationFee).floorZero(), nil
}

// Currency is a foreign currency position. The base price is the ask side;
// the real value is computed on the bid side, base price minus spread.
type Currency struct {
	assetCore
	spread Money
}

// NewCurrency creates a Currency asset. The spread must satisfy
// 0 <= spread < basePrice so the bid stays positive.
func NewCurrency(symbol, name string, basePrice, spread Money) (Currency, error) {
	core, err := newAssetCore(symbol, name, basePrice)
	if err != nil {
		return Currency{}, err
	}
	if spread.IsNegative() {
		return Currency{}, fmt.Errorf("spread cannot be negative, got %s: %w", spread.Amount(), ErrValidation)
	}
	if spread.GreaterThanOrEqual(core.basePrice) {
		return Currency{}, fmt.Errorf("spread %s must stay below base price %s: %w", spread.Amount(), basePrice.Amount(), ErrValidation)
	}
	return Currency{assetCore: core, spread: spread}, nil
}

func (c Currency) Type() AssetType { return CurrencyType }

// Spread returns the bid/ask spread.
func (c Currency) Spread() Money { return c.spread }

// PurchaseCost buys at the ask, which is the base price.
func (c Currency) PurchaseCost(quantity int64) (Money, error) {
	if err := validateQuantity(quantity); err != nil {
		return Money{}, err
	}
	return c.basePrice.Mul(quantity), nil
}

// RealValue sells at the bid, base price minus spread.
func (c Currency) RealValue(quantity int64) (Money, error) {
	if err := validateQuantity(quantity); err != nil {
		return Money{}, err
	}
	return c.basePrice.Sub(c.spread).Mul(quantity), nil
}

// Commodity is a physical commodity with a per-unit daily storage cost.
type Commodity struct {
	assetCore
	storageCost Money // per unit per day
}

// NewCommodity creates a Commodity asset.
func NewCommodity(symbol, name string, basePrice, storageCostPerUnitPerDay Money) (Commodity, error) {
	core, err := newAssetCore(symbol, name, basePrice)
	if err != nil {
		return Commodity{}, err
	}
	if storageCostPerUnitPerDay.IsNegative() {
		return Commodity{}, fmt.Errorf("storage cost cannot be negative, got %s: %w", storageCostPerUnitPerDay.Amount(), ErrValidation)
	}
	return Commodity{assetCore: core, storageCost: storageCostPerUnitPerDay}, nil
}

func (c Commodity) Type() AssetType { return CommodityType }

// StorageCostPerUnitPerDay returns the daily storage cost of one unit.
func (c Commodity) StorageCostPerUnitPerDay() Money { return c.storageCost }

// PurchaseCost is basePrice*quantity; storage is charged over time, not upfront.
func (c Commodity) PurchaseCost(quantity int64) (Money, error) {
	if err := validateQuantity(quantity); err != nil {
		return Money{}, err
	}
	return c.basePrice.Mul(quantity), nil
}

// RealValue is the zero-day storage value.
func (c Commodity) RealValue(quantity int64) (Money, error) {
	return c.RealValueAfter(quantity, 0)
}

// RealValueAfter values the commodity after daysStored days of storage
// charges, floored at zero.
func (c Commodity) RealValueAfter(quantity, daysStored int64) (Money, error) {
	if err := validateQuantity(quantity); err != nil {
		return Money{}, err
	}
	if daysStored < 0 {
		return Money{}, fmt.Errorf("days stored cannot be negative, got %d: %w", daysStored, ErrValidation)
	}
	gross := c.basePrice.Mul(quantity)
	loss := c.storageCost.Mul(quantity).Mul(daysStored)
	return gross.Sub(loss).floorZero(), nil
}
