package portfolio

import (
	"strings"
	"testing"
)

func TestLedger_AppendKeepsChronologicalOrder(t *testing.T) {
	l := NewLedger()
	err := l.Append(
		Transaction{Ticker: "AAA", Type: Buy, Date: MustParse("2023-03-01"), Quantity: Q(1), UnitPrice: M(10, "USD"), Note: "third"},
		Transaction{Ticker: "AAA", Type: Buy, Date: MustParse("2023-01-01"), Quantity: Q(1), UnitPrice: M(10, "USD"), Note: "first"},
		Transaction{Ticker: "AAA", Type: Buy, Date: MustParse("2023-02-01"), Quantity: Q(1), UnitPrice: M(10, "USD"), Note: "second"},
	)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	var notes []string
	for _, tx := range l.Transactions() {
		notes = append(notes, tx.Note)
	}
	if got, want := strings.Join(notes, ","), "first,second,third"; got != want {
		t.Errorf("log order = %s, want %s", got, want)
	}
}

func TestLedger_AppendStableForSameDayTies(t *testing.T) {
	l := NewLedger()
	err := l.Append(
		Transaction{Ticker: "AAA", Type: Buy, Date: MustParse("2023-01-01"), Quantity: Q(1), UnitPrice: M(10, "USD"), Note: "a"},
		Transaction{Ticker: "AAA", Type: Buy, Date: MustParse("2023-01-01"), Quantity: Q(1), UnitPrice: M(11, "USD"), Note: "b"},
		Transaction{Ticker: "AAA", Type: Buy, Date: MustParse("2023-01-01"), Quantity: Q(1), UnitPrice: M(12, "USD"), Note: "c"},
	)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	var notes []string
	for _, tx := range l.Transactions() {
		notes = append(notes, tx.Note)
	}
	if got, want := strings.Join(notes, ","), "a,b,c"; got != want {
		t.Errorf("same-day order = %s, want %s (insertion order)", got, want)
	}
}

func TestLedger_AppendRejectsCashTrades(t *testing.T) {
	testCases := []struct {
		name string
		tx   Transaction
	}{
		{"buy on CASH", Transaction{Ticker: CashTicker, Type: Buy, Date: MustParse("2023-01-01"), Quantity: Q(1), UnitPrice: M(10, "USD")}},
		{"sell on CASH", Transaction{Ticker: CashTicker, Type: Sell, Date: MustParse("2023-01-01"), Quantity: Q(1), UnitPrice: M(10, "USD")}},
		{"dividend on CASH", Transaction{Ticker: CashTicker, Type: Dividend, Date: MustParse("2023-01-01"), Quantity: Q(1)}},
		{"deposit on asset", Transaction{Ticker: "AAA", Type: Deposit, Date: MustParse("2023-01-01"), Quantity: Q(1)}},
		{"withdraw on asset", Transaction{Ticker: "AAA", Type: Withdraw, Date: MustParse("2023-01-01"), Quantity: Q(1)}},
		{"zero quantity buy", Transaction{Ticker: "AAA", Type: Buy, Date: MustParse("2023-01-01"), Quantity: Q(0), UnitPrice: M(10, "USD")}},
		{"missing date", Transaction{Ticker: "AAA", Type: Buy, Quantity: Q(1), UnitPrice: M(10, "USD")}},
		{"unknown type", Transaction{Ticker: "AAA", Type: "SPLIT", Date: MustParse("2023-01-01"), Quantity: Q(1)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			if err := l.Append(tc.tx); err == nil {
				t.Errorf("Append accepted %+v, want error", tc.tx)
			}
		})
	}
}

func TestLedger_AppendRegistersAssetOnFirstReference(t *testing.T) {
	l := newTestLedger(t,
		Transaction{Ticker: "AAA", Type: Buy, Date: MustParse("2023-01-01"), Quantity: Q(1), UnitPrice: M(10, "USD")},
	)

	a := l.Asset("AAA")
	if a == nil {
		t.Fatal("asset AAA not registered on first reference")
	}
	if a.Name() != "AAA" || a.Category() != Stock {
		t.Errorf("implicit asset = %q/%s, want AAA/Stock", a.Name(), a.Category())
	}

	// An explicit add afterwards updates in place.
	updated, err := NewAsset("AAA", "Triple A", ETF, "USD")
	if err != nil {
		t.Fatalf("NewAsset: %v", err)
	}
	l.AddOrUpdateAsset(updated)
	if got := l.Asset("AAA"); got.Name() != "Triple A" || got.Category() != ETF {
		t.Errorf("asset after update = %q/%s, want Triple A/ETF", got.Name(), got.Category())
	}
}

func TestLedger_RemoveAt(t *testing.T) {
	l := newTestLedger(t,
		Transaction{Ticker: "AAA", Type: Buy, Date: MustParse("2023-01-01"), Quantity: Q(1), UnitPrice: M(10, "USD"), Note: "keep"},
		Transaction{Ticker: "AAA", Type: Buy, Date: MustParse("2023-02-01"), Quantity: Q(1), UnitPrice: M(10, "USD"), Note: "drop"},
		Transaction{Ticker: "AAA", Type: Buy, Date: MustParse("2023-03-01"), Quantity: Q(1), UnitPrice: M(10, "USD"), Note: "keep"},
	)

	if err := l.RemoveAt(1); err != nil {
		t.Fatalf("RemoveAt: %v", err)
	}
	if l.NumTransactions() != 2 {
		t.Fatalf("transactions = %d, want 2", l.NumTransactions())
	}
	for _, tx := range l.Transactions() {
		if tx.Note == "drop" {
			t.Error("removed transaction still present")
		}
	}

	if err := l.RemoveAt(5); err == nil {
		t.Error("RemoveAt accepted an out-of-range index")
	}
	if err := l.RemoveAt(-1); err == nil {
		t.Error("RemoveAt accepted a negative index")
	}
}

func TestLedger_SetPrice(t *testing.T) {
	l := NewLedger()
	if err := l.SetPrice("AAA", M(15, "USD")); err == nil {
		t.Error("SetPrice accepted an unknown ticker")
	}

	a, err := NewAsset("AAA", "Triple A", Stock, "USD")
	if err != nil {
		t.Fatalf("NewAsset: %v", err)
	}
	l.AddOrUpdateAsset(a)

	if err := l.SetPrice("AAA", M(15, "")); err != nil {
		t.Fatalf("SetPrice: %v", err)
	}
	p, ok := l.Price("AAA")
	if !ok {
		t.Fatal("price not recorded")
	}
	if !p.Equal(M(15, "USD")) {
		t.Errorf("price = %s, want 15 USD (asset currency applied)", p)
	}

	if err := l.SetPrice("AAA", M(-1, "USD")); err == nil {
		t.Error("SetPrice accepted a negative price")
	}
}

func TestLedger_SetCurrency(t *testing.T) {
	l := NewLedger()
	if err := l.SetCurrency("EUR"); err != nil {
		t.Fatalf("SetCurrency: %v", err)
	}
	if l.Currency() != "EUR" {
		t.Errorf("currency = %s, want EUR", l.Currency())
	}
	if err := l.SetCurrency("NOPE"); err == nil {
		t.Error("SetCurrency accepted an invalid code")
	}
}

func TestNewAsset_Validation(t *testing.T) {
	if _, err := NewAsset("", "name", Stock, "USD"); err == nil {
		t.Error("NewAsset accepted an empty ticker")
	}
	if _, err := NewAsset("AAA", "name", Stock, "ZZZZ"); err == nil {
		t.Error("NewAsset accepted an invalid currency")
	}
	a, err := NewAsset("AAA", "", Crypto, "USD")
	if err != nil {
		t.Fatalf("NewAsset: %v", err)
	}
	if a.Name() != "AAA" {
		t.Errorf("empty name should default to the ticker, got %q", a.Name())
	}
}

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		in   string
		want Category
	}{
		{"stock", Stock},
		{"ETF", ETF},
		{"MutualFund", MutualFund},
		{"mf", MutualFund},
		{"crypto", Crypto},
		{"Bond", Bond},
		{"whatever", Other},
		{"", Other},
	}
	for _, tc := range testCases {
		if got := ParseCategory(tc.in); got != tc.want {
			t.Errorf("ParseCategory(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
