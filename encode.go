package portfolio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The portfolio file is a line format with three record types:
//
//	HEADER|CASH|<amount>
//	ASSET|<SHARE|CURRENCY|COMMODITY>|<symbol>|<name>|<basePrice>|<declaredQty>[|<extra>]
//	LOT|<date>|<qty>|<unitPrice>
//
// The extra field is the spread for a currency and the storage cost per unit
// per day for a commodity. LOT records belong to the most recent ASSET
// record; the declared quantity of every asset must equal the sum of its
// lots' quantities.

// DecodePortfolio reads the line format from r and reconstructs a portfolio.
// Any malformed record, unknown record type, or declared/actual quantity
// mismatch fails the load with ErrDataIntegrity.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	var (
		p           *Portfolio
		current     *Position
		declaredQty int64
		lotSum      int64
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "|")

		switch fields[0] {
		case "HEADER":
			if len(fields) != 3 || fields[1] != "CASH" {
				return nil, fmt.Errorf("line %d: malformed HEADER record: %w", lineNo, ErrDataIntegrity)
			}
			cash, err := decimal.NewFromString(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid cash amount %q: %w", lineNo, fields[2], ErrDataIntegrity)
			}
			p, err = NewPortfolio(M(cash), nil)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v: %w", lineNo, err, ErrDataIntegrity)
			}

		case "ASSET":
			if p == nil {
				return nil, fmt.Errorf("line %d: ASSET record before HEADER: %w", lineNo, ErrDataIntegrity)
			}
			if current != nil && declaredQty != lotSum {
				return nil, fmt.Errorf("line %d: asset %s declares quantity %d but lots sum to %d: %w",
					lineNo, current.Asset().Symbol(), declaredQty, lotSum, ErrDataIntegrity)
			}
			asset, qty, err := decodeAssetRecord(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v: %w", lineNo, err, ErrDataIntegrity)
			}
			if err := p.RegisterPosition(asset); err != nil {
				return nil, fmt.Errorf("line %d: %v: %w", lineNo, err, ErrDataIntegrity)
			}
			current, _ = p.Position(asset.Symbol())
			declaredQty, lotSum = qty, 0

		case "LOT":
			if current == nil {
				return nil, fmt.Errorf("line %d: LOT record before ASSET: %w", lineNo, ErrDataIntegrity)
			}
			lot, err := decodeLotRecord(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v: %w", lineNo, err, ErrDataIntegrity)
			}
			if err := current.AddLot(lot); err != nil {
				return nil, fmt.Errorf("line %d: %v: %w", lineNo, err, ErrDataIntegrity)
			}
			lotSum += lot.Quantity

		default:
			return nil, fmt.Errorf("line %d: unknown record type %q: %w", lineNo, fields[0], ErrDataIntegrity)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading portfolio: %w", err)
	}

	if p == nil {
		return nil, fmt.Errorf("portfolio file has no HEADER record: %w", ErrDataIntegrity)
	}
	if current != nil && declaredQty != lotSum {
		return nil, fmt.Errorf("asset %s declares quantity %d but lots sum to %d: %w",
			current.Asset().Symbol(), declaredQty, lotSum, ErrDataIntegrity)
	}
	return p, nil
}

func decodeAssetRecord(fields []string) (Asset, int64, error) {
	if len(fields) < 6 {
		return nil, 0, fmt.Errorf("malformed ASSET record")
	}
	kind, err := ParseAssetType(fields[1])
	if err != nil {
		return nil, 0, err
	}
	symbol, name := fields[2], fields[3]
	basePrice, err := decimal.NewFromString(fields[4])
	if err != nil {
		return nil, 0, fmt.Errorf("invalid base price %q", fields[4])
	}
	qty, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid declared quantity %q", fields[5])
	}

	extra := func() (Money, error) {
		if len(fields) != 7 {
			return Money{}, fmt.Errorf("%s record needs an extra field", fields[1])
		}
		v, err := decimal.NewFromString(fields[6])
		if err != nil {
			return Money{}, fmt.Errorf("invalid extra field %q", fields[6])
		}
		return M(v), nil
	}

	var asset Asset
	switch kind {
	case ShareType:
		if len(fields) != 6 {
			return nil, 0, fmt.Errorf("malformed SHARE record")
		}
		asset, err = NewShare(symbol, name, M(basePrice))
	case CurrencyType:
		var spread Money
		if spread, err = extra(); err == nil {
			asset, err = NewCurrency(symbol, name, M(basePrice), spread)
		}
	case CommodityType:
		var storage Money
		if storage, err = extra(); err == nil {
			asset, err = NewCommodity(symbol, name, M(basePrice), storage)
		}
	}
	if err != nil {
		return nil, 0, err
	}
	return asset, qty, nil
}

func decodeLotRecord(fields []string) (PurchaseLot, error) {
	if len(fields) != 4 {
		return PurchaseLot{}, fmt.Errorf("malformed LOT record")
	}
	day, err := ParseDate(fields[1])
	if err != nil {
		return PurchaseLot{}, err
	}
	qty, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return PurchaseLot{}, fmt.Errorf("invalid lot quantity %q", fields[2])
	}
	price, err := decimal.NewFromString(fields[3])
	if err != nil {
		return PurchaseLot{}, fmt.Errorf("invalid lot unit price %q", fields[3])
	}
	return NewPurchaseLot(day, qty, M(price))
}

// EncodePortfolio writes the portfolio to w in the line format. Positions
// are emitted sorted by symbol and each position's lots by purchase date
// ascending, so the output is canonical.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	if p == nil {
		return fmt.Errorf("portfolio cannot be nil: %w", ErrValidation)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "HEADER|CASH|%s\n", p.Cash().Amount())

	for pos := range p.Positions() {
		if err := encodeAssetRecord(bw, pos.Asset(), pos.TotalQuantity()); err != nil {
			return err
		}
		for lot := range pos.Lots() {
			if lot.Quantity <= 0 {
				continue
			}
			fmt.Fprintf(bw, "LOT|%s|%d|%s\n", lot.PurchaseDate, lot.Quantity, lot.UnitPrice.Amount())
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing portfolio: %w", err)
	}
	return nil
}

func encodeAssetRecord(w io.Writer, asset Asset, declaredQty int64) error {
	switch v := asset.(type) {
	case Share:
		fmt.Fprintf(w, "ASSET|%s|%s|%s|%s|%d\n",
			v.Type(), v.Symbol(), v.Name(), v.BasePrice().Amount(), declaredQty)
	case Currency:
		fmt.Fprintf(w, "ASSET|%s|%s|%s|%s|%d|%s\n",
			v.Type(), v.Symbol(), v.Name(), v.BasePrice().Amount(), declaredQty, v.Spread().Amount())
	case Commodity:
		fmt.Fprintf(w, "ASSET|%s|%s|%s|%s|%d|%s\n",
			v.Type(), v.Symbol(), v.Name(), v.BasePrice().Amount(), declaredQty, v.StorageCostPerUnitPerDay().Amount())
	default:
		return fmt.Errorf("unknown asset type %T: %w", asset, ErrDataIntegrity)
	}
	return nil
}
