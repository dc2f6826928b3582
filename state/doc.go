// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package state manages the ledger accounts.
// It follows the flow as below:
//
//	         o
//	         |
//	[ revertable state ]
//	         |
//	  [ stacked map ] -> [ journal ] -> [ playback(staging) ] -> [ kv bulk write ]
//	         |
//	 [ account cache ]
//	         |
//	  [ kv store bucket ]
//
// Every account is a balance, a nonce, the program owning its data and the data itself.
// Nothing reaches the kv store until a Stage is committed, so reverting to a checkpoint
// discards every write made after it.
package state
