package portfolio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The ledger file is JSONL: one self-describing JSON object per line, with a
// "kind" discriminator. Kinds are a header carrying the cash currency, asset
// declarations, current prices, seed realized values, and transactions.
const (
	kindLedger   = "ledger"
	kindAsset    = "asset"
	kindPrice    = "price"
	kindRealized = "realized"
	kindTx       = "tx"
)

type headerLine struct {
	Kind     string `json:"kind"`
	Currency string `json:"currency"`
}

type assetLine struct {
	Kind     string `json:"kind"`
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Currency string `json:"currency"`
}

type priceLine struct {
	Kind   string          `json:"kind"`
	Ticker string          `json:"ticker"`
	Price  decimal.Decimal `json:"price"`
}

type realizedLine struct {
	Kind   string          `json:"kind"`
	Ticker string          `json:"ticker"`
	Amount decimal.Decimal `json:"amount"`
}

type txLine struct {
	Kind     string          `json:"kind"`
	Ticker   string          `json:"ticker"`
	Type     string          `json:"type"`
	Date     Date            `json:"date"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Fees     decimal.Decimal `json:"fees"`
	Note     string          `json:"note"`
}

// EncodeLedger writes the full ledger state to w in the JSONL ledger format.
// The output is canonical: stable key order, assets and prices sorted by
// ticker, transactions in log order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	writeLine := func(obj *jsonObjectWriter) error {
		data, err := obj.MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write ledger line: %w", err)
		}
		return nil
	}

	var header jsonObjectWriter
	header.Append("kind", kindLedger)
	header.Append("currency", l.currency)
	if err := writeLine(&header); err != nil {
		return err
	}

	for a := range l.AllAssets() {
		var line jsonObjectWriter
		line.Append("kind", kindAsset)
		line.Append("ticker", a.Ticker())
		line.Append("name", a.Name())
		line.Append("category", a.Category())
		line.Append("currency", a.Currency())
		if err := writeLine(&line); err != nil {
			return err
		}
	}

	for ticker, price := range l.AllPrices() {
		var line jsonObjectWriter
		line.Append("kind", kindPrice)
		line.Append("ticker", ticker)
		line.Append("price", price)
		if err := writeLine(&line); err != nil {
			return err
		}
	}

	for ticker, amount := range l.AllSeedRealized() {
		var line jsonObjectWriter
		line.Append("kind", kindRealized)
		line.Append("ticker", ticker)
		line.Append("amount", amount)
		if err := writeLine(&line); err != nil {
			return err
		}
	}

	for _, tx := range l.Transactions() {
		var line jsonObjectWriter
		line.Append("kind", kindTx)
		data, err := tx.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal transaction: %w", err)
		}
		// splice the transaction fields after the discriminator
		line.Embed(data)
		if err := writeLine(&line); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a ledger from the JSONL format. Decoding is strict: an
// unknown kind, an unknown field, or a line that fails validation aborts the
// load with an error rather than being skipped.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue
		}

		var identifier struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify kind in %q: %w", lineNo, string(lineBytes), err)
		}

		switch identifier.Kind {
		case kindLedger:
			var line headerLine
			if err := strictUnmarshal(lineBytes, &line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if err := ledger.SetCurrency(line.Currency); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case kindAsset:
			var line assetLine
			if err := strictUnmarshal(lineBytes, &line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			a, err := NewAsset(line.Ticker, line.Name, ParseCategory(line.Category), line.Currency)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			ledger.AddOrUpdateAsset(a)
		case kindPrice:
			var line priceLine
			if err := strictUnmarshal(lineBytes, &line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if err := ledger.SetPrice(line.Ticker, M(line.Price, "")); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case kindRealized:
			var line realizedLine
			if err := strictUnmarshal(lineBytes, &line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			ledger.SetSeedRealized(line.Ticker, M(line.Amount, ledger.currency))
		case kindTx:
			var line txLine
			if err := strictUnmarshal(lineBytes, &line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			txType, err := ParseTxType(line.Type)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			tx := Transaction{
				Ticker:    line.Ticker,
				Type:      txType,
				Date:      line.Date,
				Quantity:  Q(line.Quantity),
				UnitPrice: M(line.Price, ""),
				Fees:      M(line.Fees, ""),
				Note:      line.Note,
			}
			if err := ledger.Append(tx); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown kind %q", lineNo, identifier.Kind)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	return ledger, nil
}

// strictUnmarshal decodes a single JSON object and fails on unknown fields.
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("malformed line %q: %w", string(data), err)
	}
	return nil
}
