package portfolio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// historyDepth bounds the number of snapshots kept for undo.
const historyDepth = 50

// History is a bounded stack of encoded ledger snapshots used for undo.
//
// It lives entirely outside the valuation engine: callers push a snapshot
// before each mutation, and undo is simply decoding an earlier snapshot and
// recomputing from it.
type History struct {
	snapshots [][]byte
}

// Push records the current state of the ledger. The oldest snapshot is
// dropped once the stack is full.
func (h *History) Push(l *Ledger) error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return fmt.Errorf("cannot snapshot ledger: %w", err)
	}
	h.snapshots = append(h.snapshots, buf.Bytes())
	if len(h.snapshots) > historyDepth {
		h.snapshots = h.snapshots[1:]
	}
	return nil
}

// Pop restores and returns the most recent snapshot, or an error when there
// is nothing to undo.
func (h *History) Pop() (*Ledger, error) {
	if len(h.snapshots) == 0 {
		return nil, fmt.Errorf("nothing to undo")
	}
	last := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	ledger, err := DecodeLedger(bytes.NewReader(last))
	if err != nil {
		return nil, fmt.Errorf("corrupted snapshot: %w", err)
	}
	return ledger, nil
}

// Len returns the number of snapshots available to undo.
func (h *History) Len() int { return len(h.snapshots) }

// EncodeHistory writes the snapshot stack to w, one JSON line per snapshot,
// oldest first. Each line wraps a full encoded ledger as a string.
func EncodeHistory(w io.Writer, h *History) error {
	for _, s := range h.snapshots {
		var line jsonObjectWriter
		line.Append("snapshot", string(s))
		data, err := line.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode snapshot: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write snapshot: %w", err)
		}
	}
	return nil
}

// DecodeHistory reads a snapshot stack written by EncodeHistory.
func DecodeHistory(r io.Reader) (*History, error) {
	h := &History{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue
		}
		var line struct {
			Snapshot string `json:"snapshot"`
		}
		if err := strictUnmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("snapshot %d: %w", lineNo, err)
		}
		h.snapshots = append(h.snapshots, []byte(line.Snapshot))
		if len(h.snapshots) > historyDepth {
			h.snapshots = h.snapshots[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read history: %w", err)
	}
	return h, nil
}
