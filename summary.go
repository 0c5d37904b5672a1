package portfolio

import "sort"

// HoldingSummary is one row of the holdings report for a currently held asset.
type HoldingSummary struct {
	Ticker      string
	Name        string
	Category    Category
	Currency    string
	Quantity    Quantity
	AverageCost Money
	Price       Money // current market price, zero when unknown
	MarketValue Money
	CostBasis   Money
	Unrealized  Money
	Return      Percent // unrealized as a percentage of cost basis
	Realized    Money
}

// Holdings derives the summary rows for every ticker with at least one open
// lot, sorted by market value descending. Tickers with no open position are
// omitted even when they carry realized P&L.
//
// A missing price values the position at zero rather than failing, and the
// average cost and percentage return are zero when their denominators are.
func (l *Ledger) Holdings(c *Computed) []HoldingSummary {
	rows := make([]HoldingSummary, 0, len(c.lots))
	for ticker := range c.Tickers() {
		quantity := c.Position(ticker)
		if !quantity.GreaterThan(epsilon) {
			continue
		}
		asset := l.Asset(ticker)
		if asset == nil {
			// Cannot happen for a log built through Append, which registers
			// assets on first reference.
			continue
		}

		costBasis := c.CostBasis(ticker)
		price, _ := l.Price(ticker)
		marketValue := price.Mul(quantity)
		unrealized := marketValue.Sub(costBasis)

		avg := M(0, asset.Currency())
		if quantity.IsPositive() {
			avg = costBasis.Div(quantity)
		}

		rows = append(rows, HoldingSummary{
			Ticker:      ticker,
			Name:        asset.Name(),
			Category:    asset.Category(),
			Currency:    asset.Currency(),
			Quantity:    quantity,
			AverageCost: avg,
			Price:       price,
			MarketValue: marketValue,
			CostBasis:   costBasis,
			Unrealized:  unrealized,
			Return:      unrealized.PercentOf(costBasis),
			Realized:    c.Realized(ticker),
		})
	}

	// Tickers() yields in lexical order, the stable sort keeps that order
	// for equal market values.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[j].MarketValue.LessThan(rows[i].MarketValue)
	})
	return rows
}

// Totals aggregates the holdings rows into portfolio-wide totals.
type Totals struct {
	MarketValue Money
	CostBasis   Money
	Unrealized  Money
	Realized    Money
}

// SummaryTotals sums the given rows.
func SummaryTotals(rows []HoldingSummary) Totals {
	var t Totals
	for _, r := range rows {
		t.MarketValue = t.MarketValue.Add(r.MarketValue)
		t.CostBasis = t.CostBasis.Add(r.CostBasis)
		t.Unrealized = t.Unrealized.Add(r.Unrealized)
		t.Realized = t.Realized.Add(r.Realized)
	}
	return t
}
