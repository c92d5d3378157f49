// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txledger

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// EntryKind describes the funds-flow topology a ledger entry represents.
type EntryKind uint8

// These constants define the possible entry kinds.
const (
	// KindOther is a transaction with mixed input ownership whose payees
	// cannot be broken down.  Only the net value change is displayed.
	KindOther EntryKind = iota

	// KindStakeMint is a proof-of-stake generation transaction.
	KindStakeMint

	// KindGenerated is a coinbase reward output.
	KindGenerated

	// KindRecvWithAddress is an output received to an address the wallet
	// holds a key for.
	KindRecvWithAddress

	// KindRecvFromOther is an output received through a script that does
	// not resolve to one of the wallet's addresses.
	KindRecvFromOther

	// KindSendToSelf is a payment back to the wallet itself; only the
	// fee loss is displayed.
	KindSendToSelf

	// KindSendToAddress is a payment to a recognizable address.
	KindSendToAddress

	// KindSendToOther is a payment through a script with no canonical
	// address.
	KindSendToOther
)

// String returns the entry kind as a human-readable string.
func (k EntryKind) String() string {
	switch k {
	case KindStakeMint:
		return "stakemint"
	case KindGenerated:
		return "generated"
	case KindRecvWithAddress:
		return "recvwithaddress"
	case KindRecvFromOther:
		return "recvfromother"
	case KindSendToSelf:
		return "sendtoself"
	case KindSendToAddress:
		return "sendtoaddress"
	case KindSendToOther:
		return "sendtoother"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// LedgerEntry is one display-ready row derived from a wallet transaction.
// All fields except Status are fixed at creation.
type LedgerEntry struct {
	// TxHash is the hash of the originating transaction.
	TxHash chainhash.Hash

	// Index is the entry's sequence number among entries decomposed from
	// the same transaction.  The pair (TxHash, Index) uniquely
	// identifies an entry.
	Index int

	// Time is the transaction's display timestamp.
	Time time.Time

	// Kind describes the funds flow this entry represents.
	Kind EntryKind

	// Counterparty is the address or label of the other party, if known.
	// It is empty for self payments and mixed-ownership transactions.
	Counterparty string

	// Debit is the value leaving the wallet, expressed as a non-positive
	// amount.  For send entries the first emitted entry additionally
	// carries the whole transaction fee.
	Debit btcutil.Amount

	// Credit is the value entering the wallet, expressed as a
	// non-negative amount.
	Credit btcutil.Amount

	// Status is the entry's display status.  It is recomputed in place
	// by UpdateStatus and is the only mutable part of an entry.
	Status EntryStatus
}

// ID returns the stable identifier of the entry, formed from the
// transaction hash and the entry's sequence number.
func (e *LedgerEntry) ID() string {
	return fmt.Sprintf("%v-%03d", e.TxHash, e.Index)
}

// ShouldShow returns true if the transaction should appear in the ledger at
// all.  Regular transactions are shown right away since they can always be
// mined later, but generated coins are held back until at least one block
// has been built on top of theirs: if the containing block is reorganized
// out, the reward never becomes valid, and it is not an error for that to
// happen to some share of blocks.
func ShouldShow(tx *TxSummary) bool {
	if tx.Coinbase && tx.Depth < 2 {
		return false
	}
	return true
}

// Decompose expands a wallet transaction into its display entries.  It
// returns nil when ShouldShow rejects the transaction.  Entry sequence
// numbers are assigned in emission order and are stable for the life of
// the transaction, so Decompose must not be re-run with different
// ownership answers for a transaction whose entries are already displayed.
func Decompose(tx *TxSummary, own Ownership) []*LedgerEntry {
	if !ShouldShow(tx) {
		return nil
	}

	net := tx.TotalCredit - tx.TotalDebit

	var parts []*LedgerEntry
	switch {
	case tx.CoinStake:
		parts = append(parts, &LedgerEntry{
			TxHash: tx.Hash,
			Time:   tx.TxTime,
			Kind:   KindStakeMint,
			Debit:  -tx.TotalDebit,
			Credit: tx.TotalValueOut,
		})

	case net > 0 || tx.Coinbase:
		// Credit: one entry per wallet-controlled output, in output
		// order.
		for _, out := range tx.MsgTx.TxOut {
			if !own.IsMineOutput(out) {
				continue
			}

			entry := &LedgerEntry{
				TxHash: tx.Hash,
				Index:  len(parts),
				Time:   tx.TxTime,
				Credit: btcutil.Amount(out.Value),
			}

			var (
				encoded string
				haveKey bool
			)
			own.ExtractAddress(out.PkScript).WhenSome(
				func(addr btcutil.Address) {
					encoded = addr.EncodeAddress()
					haveKey = own.HaveAddress(addr)
				},
			)

			switch {
			case tx.Coinbase:
				entry.Kind = KindGenerated
			case haveKey:
				entry.Kind = KindRecvWithAddress
				entry.Counterparty = encoded
			default:
				entry.Kind = KindRecvFromOther
				entry.Counterparty = tx.FromLabel
			}

			parts = append(parts, entry)
		}

	default:
		parts = decomposeDebit(tx, own, net)
	}

	log.Debugf("Decomposed transaction %v into %d ledger entries",
		tx.Hash, len(parts))

	return parts
}

// decomposeDebit handles the net-nonpositive, non-generation topologies:
// payment to self, pure send, and mixed-ownership debits.
func decomposeDebit(tx *TxSummary, own Ownership,
	net btcutil.Amount) []*LedgerEntry {

	allFromMe := true
	for _, in := range tx.MsgTx.TxIn {
		allFromMe = allFromMe && own.IsMineInput(in)
	}
	allToMe := true
	for _, out := range tx.MsgTx.TxOut {
		allToMe = allToMe && own.IsMineOutput(out)
	}

	switch {
	case allFromMe && allToMe:
		// Payment to self.  Gross movement is uninteresting here, so
		// the change is backed out of both sides and only the fee
		// loss remains.
		return []*LedgerEntry{{
			TxHash: tx.Hash,
			Time:   tx.TxTime,
			Kind:   KindSendToSelf,
			Debit:  -(tx.TotalDebit - tx.Change),
			Credit: tx.TotalCredit - tx.Change,
		}}

	case allFromMe:
		fee := tx.TotalDebit - tx.TotalValueOut

		var parts []*LedgerEntry
		for _, out := range tx.MsgTx.TxOut {
			// Outputs paying back to the wallet are change, not
			// payees.
			if own.IsMineOutput(out) {
				continue
			}

			entry := &LedgerEntry{
				TxHash: tx.Hash,
				Index:  len(parts),
				Time:   tx.TxTime,
			}

			addr := own.ExtractAddress(out.PkScript)
			if addr.IsSome() {
				entry.Kind = KindSendToAddress
				addr.WhenSome(func(a btcutil.Address) {
					entry.Counterparty = a.EncodeAddress()
				})
			} else {
				entry.Kind = KindSendToOther
				entry.Counterparty = tx.ToLabel
			}

			// The whole fee is attached to the first payee entry.
			value := btcutil.Amount(out.Value)
			if fee > 0 {
				value += fee
				fee = 0
			}
			entry.Debit = -value

			parts = append(parts, entry)
		}
		return parts

	default:
		// Mixed debit: some inputs are not ours, so the payees cannot
		// be broken down.  Only the net effect is displayed.
		entry := &LedgerEntry{
			TxHash: tx.Hash,
			Time:   tx.TxTime,
			Kind:   KindOther,
		}
		if net < 0 {
			entry.Debit = net
		} else {
			entry.Credit = net
		}
		return []*LedgerEntry{entry}
	}
}
