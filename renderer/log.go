package renderer

import (
	"bytes"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/veersanghvi09-sketch/portfolio"
)

// LogMarkdown renders the transaction log as a markdown table, one row per
// transaction in ledger order. The index column is the position used by the
// delete command.
func LogMarkdown(l *portfolio.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transaction Log")

	if l.NumTransactions() == 0 {
		doc.PlainText("The ledger is empty.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"#", "Date", "Event", "Note"},
	}
	for i, tx := range l.Transactions() {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i),
			tx.Date.String(),
			Transaction(tx),
			tx.Note,
		})
	}
	doc.Table(table)

	return doc.String()
}
