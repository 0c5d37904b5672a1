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

// --- Summary Command ---

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the holdings summary" }
func (*summaryCmd) Usage() string {
	return `summary

  Shows one row per held asset with quantity, average cost, market value,
  unrealized and realized gains, followed by portfolio totals and cash.
`
}
func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	computed := ledger.Compute()
	rows := ledger.Holdings(computed)
	printMarkdown(renderer.SummaryMarkdown(rows, computed.Cash()))
	return subcommands.ExitSuccess
}

// --- Log Command ---

type logCmd struct{}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list all transactions in the ledger" }
func (*logCmd) Usage() string {
	return `log

  Lists every transaction in chronological order. The index column is the
  position accepted by the delete command.
`
}
func (*logCmd) SetFlags(*flag.FlagSet) {}

func (c *logCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LogMarkdown(ledger))
	return subcommands.ExitSuccess
}

// --- Export Command ---

type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the holdings summary as CSV" }
func (*exportCmd) Usage() string {
	return `export [-o <file>]

  Writes the holdings summary as CSV, one row per held asset plus a final
  cash row. Writes to stdout unless -o is given.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file, defaults to stdout")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	computed := ledger.Compute()
	rows := ledger.Holdings(computed)

	out := os.Stdout
	if c.outputFile != "" {
		f, err := os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot create %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		out = f
	}

	if err := portfolio.ExportCSV(out, rows, computed.Cash()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.outputFile != "" {
		fmt.Printf("Exported %d holdings to %s\n", len(rows), c.outputFile)
	}
	return subcommands.ExitSuccess
}
