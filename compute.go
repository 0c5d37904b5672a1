package portfolio

import (
	"iter"
	"maps"
	"slices"
)

// Computed is the ephemeral result of replaying the transaction log: the open
// tax lots per ticker, the realized P&L per ticker and the final cash balance.
//
// It is derived entirely from the log and the seed realized values, never
// persisted, and rebuilt from scratch on every valuation pass. Replaying the
// same log with the same seeds always yields an identical snapshot.
type Computed struct {
	lots     map[string]lots
	realized map[string]Money
	cash     Money
}

// Cash returns the final cash balance. Overdraft is permitted, so the value
// may be negative.
func (c *Computed) Cash() Money { return c.cash }

// Position returns the total open quantity for a ticker.
func (c *Computed) Position(ticker string) Quantity {
	return c.lots[ticker].totalQuantity()
}

// CostBasis returns the total remaining cost across a ticker's open lots.
func (c *Computed) CostBasis(ticker string) Money {
	return c.lots[ticker].totalCost()
}

// Realized returns the accumulated realized P&L for a ticker, seed included.
func (c *Computed) Realized(ticker string) Money {
	return c.realized[ticker]
}

// OpenLots returns the number of open lots for a ticker.
func (c *Computed) OpenLots(ticker string) int { return len(c.lots[ticker]) }

// Tickers iterates in lexical order over every ticker that has open lots or
// realized P&L.
func (c *Computed) Tickers() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for t := range c.lots {
			seen[t] = struct{}{}
		}
		for t := range c.realized {
			seen[t] = struct{}{}
		}
		tickers := slices.Collect(maps.Keys(seen))
		slices.Sort(tickers)
		for _, t := range tickers {
			if !yield(t) {
				return
			}
		}
	}
}

// Compute replays the transaction log in stored order and returns a fresh
// snapshot. The pass is a pure fold: it reads the log and the seed realized
// values and mutates neither, so it is safe to call repeatedly and from
// read-only contexts.
//
// The log is expected pre-sorted by date; Compute does not re-sort.
func (l *Ledger) Compute() *Computed {
	c := &Computed{
		lots:     make(map[string]lots),
		realized: make(map[string]Money),
		cash:     M(0, l.currency),
	}
	for ticker, seed := range l.seedRealized {
		c.realized[ticker] = seed
	}

	for _, tx := range l.transactions {
		if tx.IsCash() {
			switch tx.Type {
			case Deposit:
				c.cash = c.cash.Add(M(tx.Quantity.value, l.currency))
			case Withdraw, Fees:
				c.cash = c.cash.Sub(M(tx.Quantity.value, l.currency))
			}
			// BUY/SELL/DIVIDEND on CASH are rejected at the Append boundary
			// and cannot occur in a well-formed log.
			continue
		}

		switch tx.Type {
		case Buy:
			totalCost := tx.UnitPrice.Mul(tx.Quantity).Add(tx.Fees)
			c.lots[tx.Ticker] = c.lots[tx.Ticker].buy(tx.Date, tx.Quantity, tx.UnitPrice, tx.Fees)
			c.cash = c.cash.Sub(totalCost)
		case Sell:
			proceeds := tx.UnitPrice.Mul(tx.Quantity).Sub(tx.Fees)
			c.cash = c.cash.Add(proceeds)

			remaining, delta := c.lots[tx.Ticker].sell(tx.Quantity, tx.UnitPrice)
			c.lots[tx.Ticker] = remaining
			// The fee already reduced the cash proceeds; subtracting it here
			// makes the realized report carry the fee drag as well.
			c.realized[tx.Ticker] = c.realized[tx.Ticker].Add(delta.Sub(tx.Fees))
		case Dividend:
			amount := M(tx.Quantity.value, l.currency)
			c.cash = c.cash.Add(amount)
			c.realized[tx.Ticker] = c.realized[tx.Ticker].Add(amount)
		case Fees:
			// Fee booked against an asset ticker: same cash effect as a cash fee.
			c.cash = c.cash.Sub(M(tx.Quantity.value, l.currency))
		}
	}
	return c
}
