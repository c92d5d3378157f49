// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txledger

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// ExtractPkScriptAddr resolves an output script to its canonical address
// for the given network.  Scripts that fail to parse, pay to no address, or
// pay to more than one address (bare multisig) resolve to None.  Ownership
// implementations that have no custom address handling can use this as
// their ExtractAddress.
func ExtractPkScriptAddr(pkScript []byte,
	net *chaincfg.Params) fn.Option[btcutil.Address] {

	_, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, net)
	if err != nil || len(addrs) != 1 {
		return fn.None[btcutil.Address]()
	}
	return fn.Some(addrs[0])
}
