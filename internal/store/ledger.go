package store

import (
	"slices"

	"github.com/mesh-intelligence/foodfresh/pkg/types"
)

// Ledger is the list of wasted items and their running total. A Ledger is a
// value: Append and Cleared return a new Ledger and leave the receiver
// untouched, so the store can build the next state before committing it.
type Ledger struct {
	records []types.WasteRecord
	total   types.Price
}

// NewLedger builds a Ledger from records, recomputing the total.
func NewLedger(records []types.WasteRecord) Ledger {
	l := Ledger{records: slices.Clone(records)}
	for _, r := range records {
		l.total = l.total.Add(r.Price)
	}
	return l
}

// Append returns the ledger with r added at the end.
func (l Ledger) Append(r types.WasteRecord) Ledger {
	next := make([]types.WasteRecord, len(l.records), len(l.records)+1)
	copy(next, l.records)
	return Ledger{
		records: append(next, r),
		total:   l.total.Add(r.Price),
	}
}

// Cleared returns an empty ledger.
func (l Ledger) Cleared() Ledger {
	return Ledger{}
}

// Records returns a copy of the records in insertion order.
func (l Ledger) Records() []types.WasteRecord {
	if l.records == nil {
		return []types.WasteRecord{}
	}
	return slices.Clone(l.records)
}

// Total returns the sum of all record prices.
func (l Ledger) Total() types.Price {
	return l.total
}

// Len returns the number of records.
func (l Ledger) Len() int {
	return len(l.records)
}

// Snapshot returns the ledger as delivered to subscribers.
func (l Ledger) Snapshot() types.WasteLedger {
	return types.WasteLedger{Records: l.Records(), Total: l.total}
}
