package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/veersanghvi09-sketch/portfolio"
	"github.com/veersanghvi09-sketch/portfolio/renderer"
)

// recordTransaction appends a transaction to the ledger file, snapshotting
// the previous state for undo.
func recordTransaction(tx portfolio.Transaction) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// snapshot before mutating, Push encodes the current state eagerly
	history := loadHistory()
	if err := history.Push(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := ledger.Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(history, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s\n", renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

// parseDateFlag validates a transaction date flag.
func parseDateFlag(s string) (portfolio.Date, error) {
	day, err := portfolio.ParseDate(s)
	if err != nil {
		return portfolio.Date{}, fmt.Errorf("cannot parse date %q: %w", s, err)
	}
	return day, nil
}

// --- Buy Command ---

type buyCmd struct {
	date     string
	ticker   string
	quantity float64
	price    float64
	fees     float64
	note     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares to open or add to a position" }
func (*buyCmd) Usage() string {
	return `buy -t <ticker> -q <quantity> -p <price> [-f <fees>] [-d <date>] [-n <note>]

  Purchases shares of an asset. The total cost including fees is debited
  from the cash balance, and a new tax lot is opened.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", portfolio.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.Float64Var(&c.fees, "f", 0, "Transaction fees")
	f.StringVar(&c.note, "n", "", "An optional note for the transaction")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.quantity <= 0 || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return recordTransaction(portfolio.Transaction{
		Ticker:    c.ticker,
		Type:      portfolio.Buy,
		Date:      day,
		Quantity:  portfolio.Q(c.quantity),
		UnitPrice: portfolio.M(c.price, ""),
		Fees:      portfolio.M(c.fees, ""),
		Note:      c.note,
	})
}

// --- Sell Command ---

type sellCmd struct {
	date     string
	ticker   string
	quantity float64
	price    float64
	fees     float64
	note     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares to trim or close a position" }
func (*sellCmd) Usage() string {
	return `sell -t <ticker> -q <quantity> -p <price> [-f <fees>] [-d <date>] [-n <note>]

  Sells shares of an asset. Lots are consumed oldest first, the realized
  gain is recorded, and the proceeds net of fees are credited to cash.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", portfolio.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.Float64Var(&c.fees, "f", 0, "Transaction fees")
	f.StringVar(&c.note, "n", "", "An optional note for the transaction")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.quantity <= 0 || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return recordTransaction(portfolio.Transaction{
		Ticker:    c.ticker,
		Type:      portfolio.Sell,
		Date:      day,
		Quantity:  portfolio.Q(c.quantity),
		UnitPrice: portfolio.M(c.price, ""),
		Fees:      portfolio.M(c.fees, ""),
		Note:      c.note,
	})
}

// --- Dividend Command ---

type dividendCmd struct {
	date   string
	ticker string
	amount float64
	note   string
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "record a cash dividend paid by an asset" }
func (*dividendCmd) Usage() string {
	return `dividend -t <ticker> -q <amount> [-d <date>] [-n <note>]

  Records a cash dividend. The amount is credited to cash and counted as
  realized gain for the paying asset.
`
}

func (c *dividendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", portfolio.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.Float64Var(&c.amount, "q", 0, "Dividend cash amount")
	f.StringVar(&c.note, "n", "", "An optional note for the transaction")
}

func (c *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return recordTransaction(portfolio.Transaction{
		Ticker:   c.ticker,
		Type:     portfolio.Dividend,
		Date:     day,
		Quantity: portfolio.Q(c.amount),
		Note:     c.note,
	})
}

// --- Cash Commands ---

// cashCmd is the shared implementation of deposit, withdraw and fee.
type cashCmd struct {
	txType   portfolio.TxType
	name     string
	synopsis string
	usage    string

	date   string
	ticker string
	amount float64
	note   string
}

func (c *cashCmd) Name() string     { return c.name }
func (c *cashCmd) Synopsis() string { return c.synopsis }
func (c *cashCmd) Usage() string    { return c.usage }

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", portfolio.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "q", 0, "Cash amount")
	f.StringVar(&c.note, "n", "", "An optional note for the transaction")
	if c.txType == portfolio.Fees {
		f.StringVar(&c.ticker, "t", portfolio.CashTicker, "Ticker the fee relates to")
	}
}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	ticker := c.ticker
	if ticker == "" {
		ticker = portfolio.CashTicker
	}
	return recordTransaction(portfolio.Transaction{
		Ticker:   ticker,
		Type:     c.txType,
		Date:     day,
		Quantity: portfolio.Q(c.amount),
		Note:     c.note,
	})
}

type depositCmd struct{ cashCmd }

func newDepositCmd() *depositCmd {
	return &depositCmd{cashCmd{
		txType:   portfolio.Deposit,
		name:     "deposit",
		synopsis: "add cash to the portfolio",
		usage: `deposit -q <amount> [-d <date>] [-n <note>]

  Credits the cash balance.
`,
	}}
}

type withdrawCmd struct{ cashCmd }

func newWithdrawCmd() *withdrawCmd {
	return &withdrawCmd{cashCmd{
		txType:   portfolio.Withdraw,
		name:     "withdraw",
		synopsis: "take cash out of the portfolio",
		usage: `withdraw -q <amount> [-d <date>] [-n <note>]

  Debits the cash balance. Overdrafts are permitted.
`,
	}}
}

type feeCmd struct{ cashCmd }

func newFeeCmd() *feeCmd {
	return &feeCmd{cashCmd{
		txType:   portfolio.Fees,
		name:     "fee",
		synopsis: "record an account or asset fee",
		usage: `fee -q <amount> [-t <ticker>] [-d <date>] [-n <note>]

  Debits the cash balance. The optional ticker records which asset the fee
  relates to; it does not change the asset's cost basis.
`,
	}}
}
