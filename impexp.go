package portfolio

import (
	"encoding/csv"
	"fmt"
	"io"
)

// this file contains the export format for spreadsheets.
// It should remain a plain flat table, easy to open anywhere.

var csvHeader = []string{
	"Ticker", "Name", "Category", "Currency",
	"Quantity", "AvgCost", "Price", "MarketValue",
	"CostBasis", "Unrealized", "Return", "Realized",
}

// ExportCSV writes the holdings summary to 'w' as CSV, one row per held
// asset followed by a final row carrying the cash balance. Quantities and
// amounts are written as plain decimal numbers, no rounding.
func ExportCSV(w io.Writer, rows []HoldingSummary, cash Money) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Ticker,
			r.Name,
			r.Category.String(),
			r.Currency,
			r.Quantity.String(),
			r.AverageCost.Amount().String(),
			r.Price.Amount().String(),
			r.MarketValue.Amount().String(),
			r.CostBasis.Amount().String(),
			r.Unrealized.Amount().String(),
			fmt.Sprintf("%.2f", float64(r.Return)),
			r.Realized.Amount().String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV row for %s: %w", r.Ticker, err)
		}
	}
	if err := cw.Write([]string{"Cash", "", "", cash.Currency(), "", "", "", "", "", "", "", cash.Amount().String()}); err != nil {
		return fmt.Errorf("cannot write CSV cash row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}
