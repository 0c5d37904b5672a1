package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/veersanghvi09-sketch/portfolio"
)

// --- Asset Command ---

type assetCmd struct {
	ticker   string
	name     string
	category string
	currency string
}

func (*assetCmd) Name() string     { return "asset" }
func (*assetCmd) Synopsis() string { return "declare or update an asset" }
func (*assetCmd) Usage() string {
	return `asset -t <ticker> [-n <name>] [-c <category>] [-cur <currency>]

  Declares an asset, or updates its name, category or currency if the
  ticker is already known. Categories: Stock, ETF, MutualFund, Crypto,
  Bond, Other.
`
}

func (c *assetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.StringVar(&c.name, "n", "", "Display name, defaults to the ticker")
	f.StringVar(&c.category, "c", "Stock", "Asset category")
	f.StringVar(&c.currency, "cur", "", "Asset currency, defaults to the ledger currency")
}

func (c *assetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	history := loadHistory()
	if err := history.Push(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	currency := c.currency
	if currency == "" {
		currency = ledger.Currency()
	}
	asset, err := portfolio.NewAsset(c.ticker, c.name, portfolio.ParseCategory(c.category), currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid asset: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.AddOrUpdateAsset(asset)

	if err := saveLedger(history, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Declared %s (%s, %s, %s)\n", asset.Ticker(), asset.Name(), asset.Category(), asset.Currency())
	return subcommands.ExitSuccess
}

// --- Price Command ---

type priceCmd struct {
	ticker string
	price  float64
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "set the current market price of an asset" }
func (*priceCmd) Usage() string {
	return `price -t <ticker> -p <price>

  Sets the current market price used to value the position. The ticker
  must be a declared asset.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Asset ticker")
	f.Float64Var(&c.price, "p", 0, "Current price per share")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	history := loadHistory()
	if err := history.Push(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := ledger.SetPrice(c.ticker, portfolio.M(c.price, "")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveLedger(history, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	price, _ := ledger.Price(c.ticker)
	fmt.Printf("Priced %s at %s\n", c.ticker, price)
	return subcommands.ExitSuccess
}
