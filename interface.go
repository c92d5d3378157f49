// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txledger

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/lightningnetwork/lnd/clock"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Ownership reports which pieces of a transaction are controlled by the
// wallet.  Implementations are expected to be consistent for the duration
// of a single Decompose call.
type Ownership interface {
	// IsMineOutput returns true if the output pays to an address the
	// wallet controls.  Change outputs are considered mine.
	IsMineOutput(out *wire.TxOut) bool

	// IsMineInput returns true if the input spends an output the wallet
	// controls.
	IsMineInput(in *wire.TxIn) bool

	// ExtractAddress resolves an output script to its canonical address,
	// or None if the script does not pay to a single recognizable
	// address.
	ExtractAddress(pkScript []byte) fn.Option[btcutil.Address]

	// HaveAddress returns true if the wallet holds the key for the
	// address.
	HaveAddress(addr btcutil.Address) bool
}

// ChainView is a read-only snapshot of the best chain.  Callers must keep
// the view consistent across a single status recompute.
type ChainView interface {
	// ResolveBlock maps a block hash to its height in the main chain, or
	// None if the block is unknown or not on the main chain.
	ResolveBlock(hash *chainhash.Hash) fn.Option[int32]

	// BestHeight returns the height of the best known block.
	BestHeight() int32
}

// ChainContext bundles the oracles a status recompute reads.  It is passed
// explicitly rather than read from process-wide state so that recomputes
// are deterministic under test.
type ChainContext struct {
	// Chain resolves blocks and reports the best height.
	Chain ChainView

	// Clock supplies the network-adjusted wall clock used by the offline
	// propagation heuristic.
	Clock clock.Clock

	// Confirmations is the depth at which an entry is displayed as
	// confirmed.  A zero value falls back to DefaultConfirmations.
	Confirmations int32
}

// minConf returns the configured confirmation threshold.
func (c *ChainContext) minConf() int32 {
	if c.Confirmations == 0 {
		return DefaultConfirmations
	}
	return c.Confirmations
}
