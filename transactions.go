package portfolio

import (
	"errors"
	"fmt"
	"strings"
)

// CashTicker is the reserved ticker marking pure cash-ledger events.
const CashTicker = "CASH"

// TxType is a typed string identifying the kind of a transaction.
type TxType string

const (
	Buy      TxType = "BUY"
	Sell     TxType = "SELL"
	Dividend TxType = "DIVIDEND"
	Deposit  TxType = "DEPOSIT"
	Withdraw TxType = "WITHDRAW"
	Fees     TxType = "FEES"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(strings.ToUpper(strings.TrimSpace(s))) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	case Dividend:
		return Dividend, nil
	case Deposit:
		return Deposit, nil
	case Withdraw:
		return Withdraw, nil
	case Fees:
		return Fees, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Transaction is an immutable record in the transaction log.
//
// For BUY and SELL, Quantity is a number of units and UnitPrice the price per
// unit. For DIVIDEND, DEPOSIT, WITHDRAW and FEES the Quantity field holds the
// cash amount and UnitPrice is ignored.
type Transaction struct {
	Ticker    string   `json:"ticker"`
	Type      TxType   `json:"type"`
	Date      Date     `json:"date"`
	Quantity  Quantity `json:"quantity"`
	UnitPrice Money    `json:"price,omitempty"`
	Fees      Money    `json:"fees,omitempty"`
	Note      string   `json:"note,omitempty"`
}

// IsCash reports whether the transaction is a pure cash-ledger event.
func (t Transaction) IsCash() bool { return t.Ticker == CashTicker }

// Equal reports whether two transactions are equal in value.
func (t Transaction) Equal(o Transaction) bool {
	return t.Ticker == o.Ticker &&
		t.Type == o.Type &&
		t.Date == o.Date &&
		t.Quantity.Equal(o.Quantity) &&
		t.UnitPrice.Equal(o.UnitPrice) &&
		t.Fees.Equal(o.Fees) &&
		t.Note == o.Note
}

// Validate checks a transaction before it enters the log. The valuation engine
// assumes well-formed input, so every reject lives here, on the boundary.
func (t Transaction) Validate() error {
	if t.Ticker == "" {
		return errors.New("transaction ticker is missing")
	}
	if t.Date.IsZero() {
		return errors.New("transaction date is missing")
	}
	switch t.Type {
	case Buy, Sell:
		if t.IsCash() {
			return fmt.Errorf("%s is not meaningful on the %s ticker", t.Type, CashTicker)
		}
		if !t.Quantity.IsPositive() {
			return fmt.Errorf("%s quantity must be positive, got %s", t.Type, t.Quantity)
		}
		if t.UnitPrice.IsNegative() {
			return fmt.Errorf("%s unit price cannot be negative, got %s", t.Type, t.UnitPrice)
		}
	case Dividend:
		if t.IsCash() {
			return fmt.Errorf("%s is not meaningful on the %s ticker", t.Type, CashTicker)
		}
		if !t.Quantity.IsPositive() {
			return fmt.Errorf("dividend amount must be positive, got %s", t.Quantity)
		}
	case Deposit, Withdraw:
		if !t.IsCash() {
			return fmt.Errorf("%s must target the %s ticker, got %q", t.Type, CashTicker, t.Ticker)
		}
		if !t.Quantity.IsPositive() {
			return fmt.Errorf("%s amount must be positive, got %s", t.Type, t.Quantity)
		}
	case Fees:
		// By convention FEES target CASH, but a fee booked against an asset
		// ticker is accepted and hits the cash balance all the same.
		if !t.Quantity.IsPositive() {
			return fmt.Errorf("fee amount must be positive, got %s", t.Quantity)
		}
	default:
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if t.Fees.IsNegative() {
		return fmt.Errorf("transaction fees cannot be negative, got %s", t.Fees)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface with a stable field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", t.Ticker)
	w.Append("type", t.Type)
	w.Append("date", t.Date)
	w.Append("quantity", t.Quantity)
	if !t.UnitPrice.IsZero() {
		w.Append("price", t.UnitPrice)
	}
	if !t.Fees.IsZero() {
		w.Append("fees", t.Fees)
	}
	w.Optional("note", t.Note)
	return w.MarshalJSON()
}
