package renderer

import (
	"fmt"

	"github.com/veersanghvi09-sketch/portfolio"
)

// Transaction renders a transaction as a one-line description.
func Transaction(tx portfolio.Transaction) string {
	switch tx.Type {
	case portfolio.Buy:
		return fmt.Sprintf("Bought %s of %s at %s", tx.Quantity, tx.Ticker, tx.UnitPrice)
	case portfolio.Sell:
		return fmt.Sprintf("Sold %s of %s at %s", tx.Quantity, tx.Ticker, tx.UnitPrice)
	case portfolio.Dividend:
		return fmt.Sprintf("Dividend of %s for %s", tx.Quantity, tx.Ticker)
	case portfolio.Deposit:
		return fmt.Sprintf("Deposited %s", tx.Quantity)
	case portfolio.Withdraw:
		return fmt.Sprintf("Withdrew %s", tx.Quantity)
	case portfolio.Fees:
		if tx.IsCash() {
			return fmt.Sprintf("Fee of %s", tx.Quantity)
		}
		return fmt.Sprintf("Fee of %s on %s", tx.Quantity, tx.Ticker)
	default:
		return string(tx.Type)
	}
}
