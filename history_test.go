package portfolio

import (
	"bytes"
	"testing"
)

func TestHistory_PopRestoresPreviousState(t *testing.T) {
	l := newTestLedger(t,
		Transaction{Ticker: "CASH", Type: Deposit, Date: MustParse("2023-01-01"), Quantity: Q(100)},
	)

	var h History
	if err := h.Push(l); err != nil {
		t.Fatalf("Push: %v", err)
	}

	err := l.Append(Transaction{Ticker: "CASH", Type: Withdraw, Date: MustParse("2023-01-02"), Quantity: Q(40)})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if !l.Compute().Cash().Equal(M(60, "USD")) {
		t.Fatalf("cash after withdraw = %s, want 60", l.Compute().Cash())
	}

	restored, err := h.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if restored.NumTransactions() != 1 {
		t.Errorf("restored transactions = %d, want 1", restored.NumTransactions())
	}
	if !restored.Compute().Cash().Equal(M(100, "USD")) {
		t.Errorf("restored cash = %s, want 100", restored.Compute().Cash())
	}
	if h.Len() != 0 {
		t.Errorf("len after pop = %d, want 0", h.Len())
	}
}

func TestHistory_PopOnEmpty(t *testing.T) {
	var h History
	if _, err := h.Pop(); err == nil {
		t.Error("Pop on an empty history succeeded, want error")
	}
}

func TestHistory_DepthIsBounded(t *testing.T) {
	l := NewLedger()

	var h History
	for i := 0; i < historyDepth+10; i++ {
		if err := h.Push(l); err != nil {
			t.Fatalf("Push %d: %v", i, err)
		}
	}
	if h.Len() != historyDepth {
		t.Errorf("len = %d, want %d", h.Len(), historyDepth)
	}
}

func TestHistory_EncodeDecodeRoundTrip(t *testing.T) {
	l := newTestLedger(t,
		Transaction{Ticker: "CASH", Type: Deposit, Date: MustParse("2023-01-01"), Quantity: Q(100)},
	)

	var h History
	if err := h.Push(l); err != nil {
		t.Fatalf("Push: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeHistory(&buf, &h); err != nil {
		t.Fatalf("EncodeHistory: %v", err)
	}

	got, err := DecodeHistory(&buf)
	if err != nil {
		t.Fatalf("DecodeHistory: %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("len = %d, want 1", got.Len())
	}
	restored, err := got.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if !restored.Compute().Cash().Equal(M(100, "USD")) {
		t.Errorf("restored cash = %s, want 100", restored.Compute().Cash())
	}
}

func TestHistory_PopIsLIFO(t *testing.T) {
	var h History

	first := newTestLedger(t,
		Transaction{Ticker: "CASH", Type: Deposit, Date: MustParse("2023-01-01"), Quantity: Q(1)},
	)
	if err := h.Push(first); err != nil {
		t.Fatalf("Push: %v", err)
	}
	second := newTestLedger(t,
		Transaction{Ticker: "CASH", Type: Deposit, Date: MustParse("2023-01-01"), Quantity: Q(1)},
		Transaction{Ticker: "CASH", Type: Deposit, Date: MustParse("2023-01-02"), Quantity: Q(1)},
	)
	if err := h.Push(second); err != nil {
		t.Fatalf("Push: %v", err)
	}

	got, err := h.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if got.NumTransactions() != 2 {
		t.Errorf("first pop transactions = %d, want 2", got.NumTransactions())
	}
	got, err = h.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if got.NumTransactions() != 1 {
		t.Errorf("second pop transactions = %d, want 1", got.NumTransactions())
	}
}
