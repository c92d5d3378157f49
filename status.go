// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txledger

import (
	"math"
	"time"

	"github.com/btcsuite/btcd/txscript"
	"github.com/lightningnetwork/lnd/clock"
)

const (
	// UnminedHeight is the sentinel block height carried in the sort key
	// of an entry whose transaction is not in the main chain.  It is the
	// maximum representable height, so unmined entries sort after all
	// mined ones.
	UnminedHeight int32 = math.MaxInt32

	// DefaultConfirmations is the confirmation depth at which an entry
	// is displayed as confirmed when the caller does not configure one.
	DefaultConfirmations int32 = 6

	// offlineTimeout is how long a transaction may sit unrequested by
	// any peer before it is presumed to have failed to propagate.
	offlineTimeout = 2 * time.Minute
)

// LockState describes the confirmation or lock state of a ledger entry.
type LockState uint8

// These constants define the possible lock states.
const (
	// LockNone is the zero value of a status that has never been
	// derived.
	LockNone LockState = iota

	// LockOpenUntilBlock marks a non-final transaction whose lock time
	// is a block height.  OpenFor holds the block delta.
	LockOpenUntilBlock

	// LockOpenUntilDate marks a non-final transaction whose lock time is
	// a unix timestamp.  OpenFor holds the timestamp.
	LockOpenUntilDate

	// LockOffline marks a transaction that likely failed to propagate:
	// it has sat past the offline timeout without any peer requesting
	// it.
	LockOffline

	// LockUnconfirmed marks a transaction below the configured
	// confirmation threshold.
	LockUnconfirmed

	// LockConfirmed marks a transaction at or beyond the configured
	// confirmation threshold.
	LockConfirmed
)

// String returns the lock state as a human-readable string.
func (s LockState) String() string {
	switch s {
	case LockNone:
		return "none"
	case LockOpenUntilBlock:
		return "openuntilblock"
	case LockOpenUntilDate:
		return "openuntildate"
	case LockOffline:
		return "offline"
	case LockUnconfirmed:
		return "unconfirmed"
	case LockConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Maturity describes whether a generation reward is old enough to be
// spendable.  It is meaningful only for generated and stake-mint entries.
type Maturity uint8

// These constants define the possible maturity states.
const (
	// MaturityNotApplicable is carried by entries that are not
	// generation rewards.
	MaturityNotApplicable Maturity = iota

	// MaturityImmature marks a reward still below the maturity depth.
	MaturityImmature

	// MaturityWarning marks an immature reward whose block appears not
	// to have propagated to any peer.
	MaturityWarning

	// MaturityMature marks a spendable reward.
	MaturityMature

	// MaturityNotAccepted marks a reward whose block is not in the main
	// chain, most likely orphaned.
	MaturityNotAccepted
)

// String returns the maturity as a human-readable string.
func (m Maturity) String() string {
	switch m {
	case MaturityNotApplicable:
		return "notapplicable"
	case MaturityImmature:
		return "immature"
	case MaturityWarning:
		return "matureswarning"
	case MaturityMature:
		return "mature"
	case MaturityNotAccepted:
		return "notaccepted"
	default:
		return "unknown"
	}
}

// EntryStatus is the mutable display status of a ledger entry.  It is
// overwritten wholesale by UpdateStatus; callers must not retain pointers
// into it across recomputes.
type EntryStatus struct {
	// SortKey totally orders the entry against all other entries.
	SortKey SortKey

	// Confirmed mirrors the transaction's confirmation state.
	Confirmed bool

	// Depth is the confirmation depth at the last recompute.
	Depth int32

	// ObservedHeight is the best chain height at the last recompute.  It
	// is the sole staleness signal consulted by StatusUpdateNeeded.
	ObservedHeight int32

	// LockState is the entry's confirmation or lock state.
	LockState LockState

	// OpenFor qualifies the open lock states: a block delta for
	// LockOpenUntilBlock, a unix timestamp for LockOpenUntilDate, and
	// zero otherwise.
	OpenFor int64

	// Maturity is the generation reward maturity, or
	// MaturityNotApplicable for non-generation entries.
	Maturity Maturity

	// MaturesIn is the number of blocks until the reward is spendable.
	// It is valid only while Maturity is MaturityImmature or
	// MaturityWarning.
	MaturesIn int32
}

// UpdateStatus recomputes the entry's display status in place from the
// transaction snapshot and chain context.  It never fails: an unresolvable
// block degrades to the unmined sentinel rather than an error.  The
// recompute is idempotent and has no effect beyond overwriting the status,
// so entries of the same transaction may be recomputed in any order.
func (e *LedgerEntry) UpdateStatus(tx *TxSummary, chain ChainContext) {
	bestHeight := chain.Chain.BestHeight()

	height := chain.Chain.ResolveBlock(&tx.BlockHash).UnwrapOr(
		UnminedHeight,
	)

	status := EntryStatus{
		SortKey: SortKey{
			Height:    height,
			Generated: tx.Coinbase,
			Received:  tx.Received.Unix(),
			Index:     e.Index,
		},
		Confirmed:      tx.Confirmed,
		Depth:          tx.Depth,
		ObservedHeight: bestHeight,
	}

	switch {
	case !tx.Final:
		if tx.LockTime < txscript.LockTimeThreshold {
			status.LockState = LockOpenUntilBlock
			status.OpenFor = int64(bestHeight) - int64(tx.LockTime)
		} else {
			status.LockState = LockOpenUntilDate
			status.OpenFor = int64(tx.LockTime)
		}

	case unrequestedAndStale(tx, chain.Clock):
		status.LockState = LockOffline

	case tx.Depth < chain.minConf():
		status.LockState = LockUnconfirmed

	default:
		status.LockState = LockConfirmed
	}

	if e.Kind == KindGenerated || e.Kind == KindStakeMint {
		switch {
		case tx.TotalCredit != 0:
			status.Maturity = MaturityMature

		case tx.InMainChain:
			// The reward is not yet spendable.  If nobody has
			// requested the block either, it may not have made it
			// out to the network.
			status.MaturesIn = tx.BlocksToMaturity
			if unrequestedAndStale(tx, chain.Clock) {
				status.Maturity = MaturityWarning
			} else {
				status.Maturity = MaturityImmature
			}

		default:
			status.Maturity = MaturityNotAccepted
		}
	}

	e.Status = status
}

// StatusUpdateNeeded returns true if the entry's status was last derived
// against a different best height and must be recomputed.  Recomputing when
// it returns false is harmless.
func (e *LedgerEntry) StatusUpdateNeeded(chain ChainContext) bool {
	return e.Status.ObservedHeight != chain.Chain.BestHeight()
}

// unrequestedAndStale reports whether the transaction was received longer
// ago than the offline timeout without any peer ever requesting it.
func unrequestedAndStale(tx *TxSummary, clk clock.Clock) bool {
	return clk.Now().Sub(tx.Received) > offlineTimeout &&
		tx.RequestCount == 0
}
