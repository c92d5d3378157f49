// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txledger

import (
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// TxSummary is a caller-materialized snapshot of a single wallet
// transaction.  The wallet-derived totals are computed over outputs and
// inputs the wallet controls; the package never recomputes them.  A
// summary is treated as immutable for the duration of a Decompose or
// UpdateStatus call.
type TxSummary struct {
	// Hash is the transaction hash.
	Hash chainhash.Hash

	// MsgTx is the underlying transaction.
	MsgTx *wire.MsgTx

	// TxTime is the display timestamp of the transaction.
	TxTime time.Time

	// Received is the time the wallet first saw the transaction.
	Received time.Time

	// TotalCredit is the spendable credit over all wallet-controlled
	// outputs.  It is zero for a generation reward that has not yet
	// matured.
	TotalCredit btcutil.Amount

	// TotalDebit is the total value of wallet-controlled outputs spent
	// by this transaction.
	TotalDebit btcutil.Amount

	// TotalValueOut is the sum of all output values.
	TotalValueOut btcutil.Amount

	// Change is the portion of the outputs returned to the wallet's own
	// change addresses.
	Change btcutil.Amount

	// Coinbase is true if the transaction creates new coins as a block
	// reward.
	Coinbase bool

	// CoinStake is true if the transaction is a proof-of-stake
	// generation transaction.
	CoinStake bool

	// Final is true once the transaction's lock time has elapsed.
	Final bool

	// LockTime is the raw lock time field.  Values below
	// txscript.LockTimeThreshold are block heights; values at or above
	// it are unix timestamps.
	LockTime uint32

	// BlockHash is the hash of the block containing the transaction, or
	// the zero hash while unmined.
	BlockHash chainhash.Hash

	// Confirmed mirrors the wallet's confirmation state for the
	// transaction.
	Confirmed bool

	// Depth is the number of blocks in the main chain at or after the
	// containing block, or zero while unmined.
	Depth int32

	// InMainChain is true if the containing block is part of the main
	// chain.
	InMainChain bool

	// BlocksToMaturity is the number of blocks remaining before a
	// generation reward becomes spendable.
	BlocksToMaturity int32

	// RequestCount is the number of times peers have requested the
	// transaction or its containing block.
	RequestCount int

	// FromLabel and ToLabel are free-form counterparty labels recorded
	// with the transaction, if any.
	FromLabel string
	ToLabel   string
}

// SummaryFromMsgTx creates a summary with the mechanical fields filled in
// from the raw transaction: hash, timestamps, total value out, coinbase
// flag, and lock time.  Wallet-derived fields (credit, debit, change,
// confirmation state) remain zero and must be set by the caller.
func SummaryFromMsgTx(msgTx *wire.MsgTx, received time.Time) *TxSummary {
	var valueOut btcutil.Amount
	for _, out := range msgTx.TxOut {
		valueOut += btcutil.Amount(out.Value)
	}

	return &TxSummary{
		Hash:          msgTx.TxHash(),
		MsgTx:         msgTx,
		TxTime:        received,
		Received:      received,
		TotalValueOut: valueOut,
		Coinbase:      blockchain.IsCoinBaseTx(msgTx),
		LockTime:      msgTx.LockTime,
		Final:         msgTx.LockTime == 0,
	}
}
