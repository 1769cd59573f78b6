package portfolio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	p, err := NewPortfolio(M(1234.5), nil)
	require.NoError(t, err)

	share, err := NewShare("KGH", "KGHM Polska Miedz", M(100))
	require.NoError(t, err)
	eur, err := NewCurrency("EUR", "Euro", M(4.5), M(0.5))
	require.NoError(t, err)
	gold, err := NewCommodity("GOLD", "Gold bar", M(250), M(2))
	require.NoError(t, err)

	require.NoError(t, p.BuyOn(share, 5, MustParseDate("2023-01-01")))
	require.NoError(t, p.BuyOn(share, 10, MustParseDate("2023-02-01")))
	require.NoError(t, p.BuyOn(eur, 100, MustParseDate("2023-01-15")))
	require.NoError(t, p.BuyOn(gold, 2, MustParseDate("2023-03-01")))

	var buf bytes.Buffer
	require.NoError(t, EncodePortfolio(&buf, p))

	loaded, err := DecodePortfolio(&buf)
	require.NoError(t, err)

	assert.True(t, loaded.Cash().Equal(p.Cash()), "cash %s != %s", loaded.Cash().Amount(), p.Cash().Amount())
	for pos := range p.Positions() {
		got, ok := loaded.Position(pos.Asset().Symbol())
		require.True(t, ok, "position %s missing after reload", pos.Asset().Symbol())
		assert.Equal(t, pos.TotalQuantity(), got.TotalQuantity())
		assert.Equal(t, pos.LotCount(), got.LotCount())
		assert.Equal(t, pos.Asset().Type(), got.Asset().Type())
	}

	// A reload keeps FIFO behavior intact.
	result, err := loaded.Sell("KGH", 8, M(150))
	require.NoError(t, err)
	assert.True(t, result.TotalProfit().Equal(M(340)), "profit = %s, want 340", result.TotalProfit().Amount())
}

func TestEncodePortfolio_IsCanonical(t *testing.T) {
	p, err := NewPortfolio(M(1000), nil)
	require.NoError(t, err)
	kgh, err := NewShare("KGH", "KGHM", M(10))
	require.NoError(t, err)
	ale, err := NewShare("ALE", "Allegro", M(10))
	require.NoError(t, err)

	// Later symbol and later date bought first.
	require.NoError(t, p.BuyOn(kgh, 1, MustParseDate("2023-02-01")))
	require.NoError(t, p.BuyOn(kgh, 1, MustParseDate("2023-01-01")))
	require.NoError(t, p.BuyOn(ale, 1, MustParseDate("2023-01-01")))

	var buf bytes.Buffer
	require.NoError(t, EncodePortfolio(&buf, p))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"HEADER|CASH|961",
		"ASSET|SHARE|ALE|Allegro|10|1",
		"LOT|2023-01-01|1|10",
		"ASSET|SHARE|KGH|KGHM|10|2",
		"LOT|2023-01-01|1|10",
		"LOT|2023-02-01|1|10",
	}
	assert.Equal(t, want, lines)
}

func TestDecodePortfolio_Integrity(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "no header",
			input: "",
		},
		{
			name:  "asset before header",
			input: "ASSET|SHARE|KGH|KGHM|100|0\n",
		},
		{
			name:  "lot before asset",
			input: "HEADER|CASH|1000\nLOT|2023-01-01|5|100\n",
		},
		{
			name:  "unknown record type",
			input: "HEADER|CASH|1000\nNOISE|foo\n",
		},
		{
			name:  "malformed header",
			input: "HEADER|1000\n",
		},
		{
			name:  "negative cash",
			input: "HEADER|CASH|-1\n",
		},
		{
			name:  "declared quantity above lots",
			input: "HEADER|CASH|1000\nASSET|SHARE|KGH|KGHM|100|10\nLOT|2023-01-01|5|100\n",
		},
		{
			name:  "declared quantity below lots",
			input: "HEADER|CASH|1000\nASSET|SHARE|KGH|KGHM|100|5\nLOT|2023-01-01|5|100\nLOT|2023-02-01|5|100\n",
		},
		{
			name:  "mismatch detected before next asset",
			input: "HEADER|CASH|1000\nASSET|SHARE|KGH|KGHM|100|10\nLOT|2023-01-01|5|100\nASSET|SHARE|ALE|Allegro|40|0\n",
		},
		{
			name:  "currency without spread field",
			input: "HEADER|CASH|1000\nASSET|CURRENCY|EUR|Euro|4.5|0\n",
		},
		{
			name:  "share with stray extra field",
			input: "HEADER|CASH|1000\nASSET|SHARE|KGH|KGHM|100|0|9\n",
		},
		{
			name:  "bad lot date",
			input: "HEADER|CASH|1000\nASSET|SHARE|KGH|KGHM|100|5\nLOT|someday|5|100\n",
		},
		{
			name:  "bad lot quantity",
			input: "HEADER|CASH|1000\nASSET|SHARE|KGH|KGHM|100|5\nLOT|2023-01-01|five|100\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodePortfolio(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, ErrDataIntegrity)
		})
	}
}

func TestDecodePortfolio_SkipsBlankLines(t *testing.T) {
	input := "HEADER|CASH|1000\n\nASSET|SHARE|KGH|KGHM|100|5\n\nLOT|2023-01-01|5|100\n"
	p, err := DecodePortfolio(strings.NewReader(input))
	require.NoError(t, err)
	pos, ok := p.Position("KGH")
	require.True(t, ok)
	assert.EqualValues(t, 5, pos.TotalQuantity())
}
