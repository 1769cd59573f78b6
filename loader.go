package portfolio

import (
	"fmt"
	"os"
)

// LoadPortfolio opens, decodes and returns the portfolio stored at path.
func LoadPortfolio(path string) (*Portfolio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", path, err)
	}
	defer f.Close()

	p, err := DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode portfolio file %q: %w", path, err)
	}
	return p, nil
}

// SavePortfolio writes the portfolio to path in canonical line format,
// replacing any previous content.
func SavePortfolio(path string, p *Portfolio) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening portfolio file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodePortfolio(f, p)
}
