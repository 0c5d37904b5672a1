// Package cmd implements the CLI application to manage a portfolio ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/veersanghvi09-sketch/portfolio"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&assetCmd{}, "assets")
	c.Register(&priceCmd{}, "assets")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&dividendCmd{}, "transactions")
	c.Register(newDepositCmd(), "transactions")
	c.Register(newWithdrawCmd(), "transactions")
	c.Register(newFeeCmd(), "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&undoCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&logCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "portfolio.jsonl", "Path to the ledger file (JSONL format)")

func undoFile() string { return *ledgerFile + ".undo" }

// loadLedger reads the ledger from the app ledger file. A missing file is
// not an error: it yields an empty ledger.
func loadLedger() (*portfolio.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting from an empty ledger")
		return portfolio.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	ledger, err := portfolio.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load ledger file %q: %w", *ledgerFile, err)
	}
	return ledger, nil
}

// saveLedger writes the undo stack and the ledger back to disk. Callers push
// a snapshot of the pre-mutation state onto history before mutating.
func saveLedger(history *portfolio.History, ledger *portfolio.Ledger) error {
	if err := saveHistory(history); err != nil {
		return err
	}
	return writeLedgerFile(ledger)
}

func writeLedgerFile(ledger *portfolio.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("cannot write ledger file %q: %w", *ledgerFile, err)
	}
	if err := portfolio.EncodeLedger(f, ledger); err != nil {
		f.Close()
		return fmt.Errorf("cannot save ledger file %q: %w", *ledgerFile, err)
	}
	return f.Close()
}

// loadHistory reads the undo stack. A missing or unreadable undo file yields
// an empty history: undo is best effort, it never blocks a mutation.
func loadHistory() *portfolio.History {
	f, err := os.Open(undoFile())
	if err != nil {
		return &portfolio.History{}
	}
	defer f.Close()
	h, err := portfolio.DecodeHistory(f)
	if err != nil {
		log.Printf("warning, discarding unreadable undo file %q: %v", undoFile(), err)
		return &portfolio.History{}
	}
	return h
}

func saveHistory(h *portfolio.History) error {
	f, err := os.Create(undoFile())
	if err != nil {
		return fmt.Errorf("cannot write undo file %q: %w", undoFile(), err)
	}
	if err := portfolio.EncodeHistory(f, h); err != nil {
		f.Close()
		return fmt.Errorf("cannot save undo file %q: %w", undoFile(), err)
	}
	return f.Close()
}
