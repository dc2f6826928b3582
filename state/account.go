// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vechain/stakepool/kv"
	"github.com/vechain/stakepool/thor"
)

// Account is the ledger entry stored at an address.
type Account struct {
	Balance uint64
	Nonce   uint64
	Program thor.Address // program allowed to write Data, zero for plain wallets
	Data    []byte
}

// IsEmpty returns if an account is empty.
// An empty account is removed from the store when committed.
func (a *Account) IsEmpty() bool {
	return a.Balance == 0 && a.Nonce == 0 && a.Program.IsZero() && len(a.Data) == 0
}

func emptyAccount() *Account {
	return &Account{}
}

func loadAccount(getter kv.Getter, addr thor.Address) (*Account, error) {
	data, err := getter.Get(addr[:])
	if err != nil {
		if getter.IsNotFound(err) {
			return emptyAccount(), nil
		}
		return nil, err
	}
	var a Account
	if err := rlp.DecodeBytes(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func saveAccount(putter kv.Putter, addr thor.Address, a *Account) error {
	if a.IsEmpty() {
		return putter.Delete(addr[:])
	}
	data, err := rlp.EncodeToBytes(a)
	if err != nil {
		return err
	}
	return putter.Put(addr[:], data)
}
