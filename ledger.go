package portfolio

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
)

// DefaultCurrency is used for the cash balance and implicitly created assets
// when a ledger does not declare its own currency.
const DefaultCurrency = "USD"

// Ledger holds the full durable state of a portfolio: the asset directory,
// the price book, the chronological transaction log and the seed realized
// P&L values carried over from before the log began.
//
// The transaction log is always kept in ascending date order, with same-day
// ties broken by insertion order.
type Ledger struct {
	currency     string
	assets       map[string]Asset // by ticker
	prices       map[string]Money // current price by ticker
	transactions []Transaction
	seedRealized map[string]Money // by ticker
}

// NewLedger creates an empty ledger with the default cash currency.
func NewLedger() *Ledger {
	return &Ledger{
		currency:     DefaultCurrency,
		assets:       make(map[string]Asset),
		prices:       make(map[string]Money),
		seedRealized: make(map[string]Money),
	}
}

// Currency returns the ledger's cash currency.
func (l *Ledger) Currency() string { return l.currency }

// SetCurrency sets the ledger's cash currency after validating the code.
func (l *Ledger) SetCurrency(code string) error {
	if err := ValidateCurrency(code); err != nil {
		return err
	}
	l.currency = code
	return nil
}

// Asset returns the asset registered with this ticker, or nil if unknown.
func (l *Ledger) Asset(ticker string) *Asset {
	a, ok := l.assets[ticker]
	if !ok {
		return nil
	}
	return &a
}

// AddOrUpdateAsset registers an asset, replacing any previous definition for
// the same ticker. Assets are never deleted.
func (l *Ledger) AddOrUpdateAsset(a Asset) {
	l.assets[a.ticker] = a
}

// ensureAsset implicitly registers a bare asset on first reference by a
// transaction, the way an explicit add would.
func (l *Ledger) ensureAsset(ticker string) {
	if _, ok := l.assets[ticker]; ok {
		return
	}
	l.assets[ticker] = Asset{ticker: ticker, name: ticker, category: Stock, currency: l.currency}
}

// AllAssets iterates over registered assets in ticker order.
func (l *Ledger) AllAssets() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		tickers := slices.Collect(maps.Keys(l.assets))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(l.assets[ticker]) {
				return
			}
		}
	}
}

// Price returns the current price for a ticker, and whether one is known.
func (l *Ledger) Price(ticker string) (Money, bool) {
	p, ok := l.prices[ticker]
	return p, ok
}

// SetPrice records the current price for a ticker. The ticker must reference
// a registered asset.
func (l *Ledger) SetPrice(ticker string, price Money) error {
	a := l.Asset(ticker)
	if a == nil {
		return fmt.Errorf("unknown ticker %q: add the asset first", ticker)
	}
	if price.IsNegative() {
		return fmt.Errorf("price for %s cannot be negative, got %s", ticker, price)
	}
	l.prices[ticker] = M(price.value, a.Currency())
	return nil
}

// AllPrices iterates over known prices in ticker order.
func (l *Ledger) AllPrices() iter.Seq2[string, Money] {
	return func(yield func(string, Money) bool) {
		tickers := slices.Collect(maps.Keys(l.prices))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(ticker, l.prices[ticker]) {
				return
			}
		}
	}
}

// SeedRealized returns the persisted realized P&L carried for a ticker from
// before the transaction log began.
func (l *Ledger) SeedRealized(ticker string) Money {
	return l.seedRealized[ticker]
}

// SetSeedRealized records a seed realized P&L value for a ticker.
func (l *Ledger) SetSeedRealized(ticker string, amount Money) {
	l.seedRealized[ticker] = amount
}

// AllSeedRealized iterates over seed realized values in ticker order.
func (l *Ledger) AllSeedRealized() iter.Seq2[string, Money] {
	return func(yield func(string, Money) bool) {
		tickers := slices.Collect(maps.Keys(l.seedRealized))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(ticker, l.seedRealized[ticker]) {
				return
			}
		}
	}
}

// Append validates transactions, appends them to the log and restores the
// chronological order with a stable sort.
func (l *Ledger) Append(txs ...Transaction) error {
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("invalid %s transaction on %s: %w", tx.Type, tx.Date, err)
		}
	}
	for _, tx := range txs {
		if !tx.IsCash() {
			l.ensureAsset(tx.Ticker)
		}
		l.transactions = append(l.transactions, tx)
	}
	l.stableSort()
	return nil
}

// RemoveAt deletes the transaction at the given position in the log. The log
// order is untouched, removal cannot break it.
func (l *Ledger) RemoveAt(index int) error {
	if index < 0 || index >= len(l.transactions) {
		return fmt.Errorf("transaction index %d out of range [0..%d]", index, len(l.transactions)-1)
	}
	l.transactions = append(l.transactions[:index], l.transactions[index+1:]...)
	return nil
}

// Transactions returns an iterator over the log in stored order, yielding
// each transaction with its position.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// NumTransactions returns the number of transactions in the log.
func (l *Ledger) NumTransactions() int { return len(l.transactions) }

// stableSort sorts the log by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}
