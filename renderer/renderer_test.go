package renderer

import (
	"strings"
	"testing"

	"github.com/veersanghvi09-sketch/portfolio"
)

func TestSummaryMarkdown(t *testing.T) {
	rows := []portfolio.HoldingSummary{
		{
			Ticker: "AAA", Name: "Alpha Corp", Category: portfolio.Stock, Currency: "USD",
			Quantity: portfolio.Q(6), AverageCost: portfolio.M(10.1, "USD"),
			Price: portfolio.M(15, "USD"), MarketValue: portfolio.M(90, "USD"),
			CostBasis: portfolio.M(60.6, "USD"), Unrealized: portfolio.M(29.4, "USD"),
			Return: 48.51, Realized: portfolio.M(7.1, "USD"),
		},
	}

	got := SummaryMarkdown(rows, portfolio.M(100, "USD"))

	for _, want := range []string{
		"# Portfolio Summary",
		"| AAA ",
		"Alpha Corp",
		"## Totals",
		"Cash:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary markdown missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	got := SummaryMarkdown(nil, portfolio.M(0, "USD"))
	if !strings.Contains(got, "No open positions.") {
		t.Errorf("empty summary missing placeholder:\n%s", got)
	}
}

func TestLogMarkdown(t *testing.T) {
	l := portfolio.NewLedger()
	err := l.Append(
		portfolio.Transaction{Ticker: "CASH", Type: portfolio.Deposit, Date: portfolio.MustParse("2023-01-01"), Quantity: portfolio.Q(1000)},
		portfolio.Transaction{Ticker: "AAA", Type: portfolio.Buy, Date: portfolio.MustParse("2023-01-02"), Quantity: portfolio.Q(10), UnitPrice: portfolio.M(10, "USD"), Note: "first buy"},
	)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	got := LogMarkdown(l)

	for _, want := range []string{
		"# Transaction Log",
		"| 0 ",
		"2023-01-01",
		"first buy",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("log markdown missing %q:\n%s", want, got)
		}
	}
}

func TestLogMarkdown_Empty(t *testing.T) {
	got := LogMarkdown(portfolio.NewLedger())
	if !strings.Contains(got, "The ledger is empty.") {
		t.Errorf("empty log missing placeholder:\n%s", got)
	}
}

func TestTransaction(t *testing.T) {
	tests := []struct {
		tx   portfolio.Transaction
		want string
	}{
		{portfolio.Transaction{Ticker: "AAA", Type: portfolio.Buy, Quantity: portfolio.Q(10), UnitPrice: portfolio.M(10, "USD")}, "Bought"},
		{portfolio.Transaction{Ticker: "AAA", Type: portfolio.Sell, Quantity: portfolio.Q(4), UnitPrice: portfolio.M(12, "USD")}, "Sold"},
		{portfolio.Transaction{Ticker: "AAA", Type: portfolio.Dividend, Quantity: portfolio.Q(5)}, "Dividend"},
		{portfolio.Transaction{Ticker: "CASH", Type: portfolio.Deposit, Quantity: portfolio.Q(100)}, "Deposited"},
		{portfolio.Transaction{Ticker: "CASH", Type: portfolio.Withdraw, Quantity: portfolio.Q(50)}, "Withdrew"},
		{portfolio.Transaction{Ticker: "CASH", Type: portfolio.Fees, Quantity: portfolio.Q(2)}, "Fee of"},
		{portfolio.Transaction{Ticker: "AAA", Type: portfolio.Fees, Quantity: portfolio.Q(2)}, "on AAA"},
	}
	for _, tc := range tests {
		if got := Transaction(tc.tx); !strings.Contains(got, tc.want) {
			t.Errorf("Transaction(%s %s) = %q, want it to contain %q", tc.tx.Type, tc.tx.Ticker, got, tc.want)
		}
	}
}
