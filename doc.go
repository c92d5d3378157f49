// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txledger classifies wallet transactions for display.

A single wallet transaction may be shown to the user as zero or more ledger
entries: a transaction paying several recipients produces one entry per
payee, a transaction paying only the wallet's own addresses produces one
entry per received output, and a payment back to the wallet itself collapses
into a single entry carrying only the fee loss.  Decompose performs this
expansion, assigning each entry a transaction-scoped sequence number so that
the pair (transaction hash, sequence number) uniquely identifies a display
row.

Each entry carries a mutable EntryStatus describing its confirmation depth,
lock state, and coin generation maturity.  UpdateStatus recomputes the
status in place from a caller-supplied chain snapshot and is idempotent;
StatusUpdateNeeded reports when a recompute is required because the best
chain height moved.

The package holds no state of its own and performs no I/O.  Wallet
ownership, address extraction, and chain lookups are provided by the caller
through the Ownership and ChainView interfaces.
*/
package txledger
