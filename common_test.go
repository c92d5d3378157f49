// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txledger

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/lightningnetwork/lnd/clock"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/require"
)

var (
	// testTime is the receipt time used by all test transactions unless a
	// case overrides it.
	testTime = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	// Distinct fake output scripts.  The mock ownership keys off the raw
	// script bytes, so the scripts only need to be unique.
	scriptMineA   = []byte{0x51, 0x01}
	scriptMineB   = []byte{0x51, 0x02}
	scriptChange  = []byte{0x51, 0x03}
	scriptExtern  = []byte{0x52, 0x01}
	scriptExtern2 = []byte{0x52, 0x02}
	scriptNoAddr  = []byte{0x52, 0x03}
)

// mockOwnership implements Ownership over fixed script and address sets.
type mockOwnership struct {
	mineOutputs map[string]bool
	mineInputs  map[wire.OutPoint]bool
	addrs       map[string]btcutil.Address
	keys        map[string]bool
}

func newMockOwnership() *mockOwnership {
	return &mockOwnership{
		mineOutputs: make(map[string]bool),
		mineInputs:  make(map[wire.OutPoint]bool),
		addrs:       make(map[string]btcutil.Address),
		keys:        make(map[string]bool),
	}
}

func (m *mockOwnership) IsMineOutput(out *wire.TxOut) bool {
	return m.mineOutputs[string(out.PkScript)]
}

func (m *mockOwnership) IsMineInput(in *wire.TxIn) bool {
	return m.mineInputs[in.PreviousOutPoint]
}

func (m *mockOwnership) ExtractAddress(
	pkScript []byte) fn.Option[btcutil.Address] {

	addr, ok := m.addrs[string(pkScript)]
	if !ok {
		return fn.None[btcutil.Address]()
	}
	return fn.Some(addr)
}

func (m *mockOwnership) HaveAddress(addr btcutil.Address) bool {
	return m.keys[addr.EncodeAddress()]
}

// addMineScript registers an owned output script with a resolvable address
// the wallet holds a key for.
func (m *mockOwnership) addMineScript(t *testing.T, script []byte,
	seed byte) btcutil.Address {

	t.Helper()

	addr := testAddr(t, seed)
	m.mineOutputs[string(script)] = true
	m.addrs[string(script)] = addr
	m.keys[addr.EncodeAddress()] = true
	return addr
}

// addExternScript registers a non-owned output script with a resolvable
// address the wallet has no key for.
func (m *mockOwnership) addExternScript(t *testing.T, script []byte,
	seed byte) btcutil.Address {

	t.Helper()

	addr := testAddr(t, seed)
	m.addrs[string(script)] = addr
	return addr
}

// testAddr derives a deterministic P2PKH address from a one byte seed.
func testAddr(t *testing.T, seed byte) btcutil.Address {
	t.Helper()

	pkHash := make([]byte, 20)
	pkHash[0] = seed
	addr, err := btcutil.NewAddressPubKeyHash(
		pkHash, &chaincfg.MainNetParams,
	)
	require.NoError(t, err)
	return addr
}

// testChain implements ChainView over a fixed block-height map.
type testChain struct {
	blocks map[chainhash.Hash]int32
	height int32
}

func (c *testChain) ResolveBlock(hash *chainhash.Hash) fn.Option[int32] {
	height, ok := c.blocks[*hash]
	if !ok {
		return fn.None[int32]()
	}
	return fn.Some(height)
}

func (c *testChain) BestHeight() int32 {
	return c.height
}

// testChainCtx returns a chain context over a single known block at the
// given height, with the clock frozen at testTime.
func testChainCtx(blockHash chainhash.Hash, blockHeight,
	bestHeight int32) ChainContext {

	return ChainContext{
		Chain: &testChain{
			blocks: map[chainhash.Hash]int32{
				blockHash: blockHeight,
			},
			height: bestHeight,
		},
		Clock: clock.NewTestClock(testTime),
	}
}

// makeTx builds a transaction spending a single bogus previous output and
// paying the given values to the given scripts.
func makeTx(values []int64, scripts [][]byte) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	prevHash := chainhash.Hash{0xaa}
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prevHash, 0), nil, nil))
	for i, value := range values {
		tx.AddTxOut(wire.NewTxOut(value, scripts[i]))
	}
	return tx
}

// makeCoinbaseTx builds a coinbase transaction paying the reward to the
// given script.
func makeCoinbaseTx(reward int64, script []byte) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{
			Index: wire.MaxPrevOutIndex,
		},
		SignatureScript: []byte{0x04, 0x00, 0x00, 0x00, 0x00},
	})
	tx.AddTxOut(wire.NewTxOut(reward, script))
	return tx
}

// ownInputs marks every input of the transaction as owned by the wallet.
func (m *mockOwnership) ownInputs(tx *wire.MsgTx) {
	for _, in := range tx.TxIn {
		m.mineInputs[in.PreviousOutPoint] = true
	}
}

// summaryFor wraps a transaction in a snapshot with the common display
// fields filled in.  Wallet totals are left for the caller.
func summaryFor(tx *wire.MsgTx) *TxSummary {
	s := SummaryFromMsgTx(tx, testTime)
	s.Final = true
	s.RequestCount = 1
	return s
}
