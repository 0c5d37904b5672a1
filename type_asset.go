package portfolio

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category classifies an asset for reporting purposes.
type Category int

const (
	Stock Category = iota
	ETF
	MutualFund
	Crypto
	Bond
	// Other is the explicit fallback for anything unrecognized.
	Other
)

func (c Category) String() string {
	switch c {
	case Stock:
		return "Stock"
	case ETF:
		return "ETF"
	case MutualFund:
		return "MutualFund"
	case Crypto:
		return "Crypto"
	case Bond:
		return "Bond"
	default:
		return "Other"
	}
}

// ParseCategory parses a string into a Category. Unrecognized input maps to
// Other rather than failing, so freshly imported assets always classify.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stock":
		return Stock
	case "etf":
		return ETF
	case "mutualfund", "mutual", "mf":
		return MutualFund
	case "crypto":
		return Crypto
	case "bond":
		return Bond
	default:
		return Other
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = ParseCategory(s)
	return nil
}

// Asset represents a tradeable instrument tracked in the ledger, keyed by its
// ticker. Assets are created on first reference and only ever updated in place.
type Asset struct {
	ticker   string // unique key
	name     string // display name
	category Category
	currency string // ISO 4217 code
}

// NewAsset creates an asset after validating its currency code.
func NewAsset(ticker, name string, category Category, currency string) (Asset, error) {
	if ticker == "" {
		return Asset{}, fmt.Errorf("asset ticker is missing")
	}
	if name == "" {
		name = ticker
	}
	if err := ValidateCurrency(currency); err != nil {
		return Asset{}, fmt.Errorf("invalid currency for asset %q: %w", ticker, err)
	}
	return Asset{ticker: ticker, name: name, category: category, currency: currency}, nil
}

// Ticker returns the unique ticker symbol of the asset.
func (a Asset) Ticker() string { return a.ticker }

// Name returns the display name of the asset.
func (a Asset) Name() string { return a.name }

// Category returns the asset's category.
func (a Asset) Category() Category { return a.category }

// Currency returns the ISO 4217 code the asset is traded in.
func (a Asset) Currency() string { return a.currency }
