// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txledger

import (
	"cmp"
	"fmt"
	"sort"
)

// SortKey is a structured, totally-ordered key for arranging ledger entries
// in display order.  Keys compare component-wise: containing block height
// first (unmined entries carry UnminedHeight and so sort after every mined
// entry), then the generated flag, then receipt time, then entry sequence
// number.  The ordering is deterministic regardless of when a recompute
// happens.
type SortKey struct {
	// Height is the height of the containing block, or UnminedHeight.
	Height int32

	// Generated is true for coinbase transactions.
	Generated bool

	// Received is the unix time the wallet first saw the transaction.
	Received int64

	// Index is the entry's sequence number within its transaction.
	Index int
}

// Compare returns -1, 0, or 1 depending on whether k sorts before, equal
// to, or after other.
func (k SortKey) Compare(other SortKey) int {
	if c := cmp.Compare(k.Height, other.Height); c != 0 {
		return c
	}
	if k.Generated != other.Generated {
		if other.Generated {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(k.Received, other.Received); c != 0 {
		return c
	}
	return cmp.Compare(k.Index, other.Index)
}

// Less returns true if k sorts strictly before other.
func (k SortKey) Less(other SortKey) bool {
	return k.Compare(other) < 0
}

// String renders the key as a fixed-width dash-separated string for logs
// and debugging.  Ordering decisions should use Compare or Less, not the
// rendered form.
func (k SortKey) String() string {
	generated := 0
	if k.Generated {
		generated = 1
	}
	return fmt.Sprintf("%010d-%01d-%010d-%03d", k.Height, generated,
		k.Received, k.Index)
}

// SortEntries arranges entries into display order by their status sort
// keys, lowest first.  Entries must have had their status derived at least
// once, as freshly decomposed entries all carry zero keys.
func SortEntries(entries []*LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Status.SortKey.Less(entries[j].Status.SortKey)
	})
}
