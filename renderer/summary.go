// Package renderer formats ledger reports as markdown.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/veersanghvi09-sketch/portfolio"
)

// SummaryMarkdown renders the holdings summary as a markdown report: one
// table row per held asset, sorted by market value, followed by cash and
// portfolio totals.
func SummaryMarkdown(rows []portfolio.HoldingSummary, cash portfolio.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")

	if len(rows) == 0 {
		doc.PlainText("No open positions.")
	} else {
		table := md.TableSet{
			Header: []string{"Ticker", "Name", "Quantity", "Avg Cost", "Price", "Market Value", "Unrealized", "Return", "Realized"},
		}
		for _, r := range rows {
			table.Rows = append(table.Rows, []string{
				r.Ticker,
				r.Name,
				r.Quantity.String(),
				r.AverageCost.String(),
				r.Price.String(),
				r.MarketValue.String(),
				r.Unrealized.SignedString(),
				r.Return.SignedString(),
				r.Realized.SignedString(),
			})
		}
		doc.Table(table)
	}

	totals := portfolio.SummaryTotals(rows)
	doc.H2("Totals")
	doc.BulletList(
		fmt.Sprintf("Market Value: %s", totals.MarketValue),
		fmt.Sprintf("Cost Basis: %s", totals.CostBasis),
		fmt.Sprintf("Unrealized P&L: %s", totals.Unrealized.SignedString()),
		fmt.Sprintf("Realized P&L: %s", totals.Realized.SignedString()),
		fmt.Sprintf("Cash: %s", cash),
	)

	return doc.String()
}
