// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"crypto/ecdsa"
	"sync"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/vechain/stakepool/staking"
	"github.com/vechain/stakepool/thor"
)

// DevAccount is a pre-funded devnet key pair. The first one is the
// conventional pool authority in local setups.
type DevAccount struct {
	Address    thor.Address
	PrivateKey *ecdsa.PrivateKey
}

var devKeys = []string{
	"dce1443bd2ef0c2631adc1c67e5c93f13dc23a41c18b536effbbdcbcdb96fb65",
	"321d6443bc6177273b5abf54210fe806d451d6b7973bccc2384ef78bbcd0bf51",
	"2d7c882bad2a01105e36dda3646693bc1aaaa45b0ed63fb0ce23c060294f3af2",
	"593537225b037191d322c3b1df585fb1e5100811b71a6f7fc7e29cca1333483e",
	"ca7b25fc980c759df5f3ce17a3d881d6e19a38e651fc4315fc08917edab41058",
	"88d2d80b12b92feaa0da6d62309463d20408157723f2d7e799b6a74ead9a673b",
	"fbb9e7ba5fe9969a71c6599052237b91adeb1e5fc0c96727b66e56ff5d02f9d0",
	"547fb081e73dc2e22b4aae5c60e2970b008ac4fc3073aebc27d41ace9c4f53e9",
	"c8c53657e41a8d669349fc287f57457bd746cb1fcfc38cf94d235deb2cfca81b",
	"87e0eba9c86c494d98353800571089f316740b0cb84c9a7cdf2fe5c9997c7966",
}

// DevAccounts returns the pre-funded devnet accounts, in a fixed order.
var DevAccounts = sync.OnceValue(func() []DevAccount {
	accs := make([]DevAccount, 0, len(devKeys))
	for _, hex := range devKeys {
		key, err := crypto.HexToECDSA(hex)
		if err != nil {
			panic(err)
		}
		accs = append(accs, DevAccount{
			Address:    thor.Address(crypto.PubkeyToAddress(key.PublicKey)),
			PrivateKey: key,
		})
	}
	return accs
})

// DevAccountBalance is allocated to every dev account.
const DevAccountBalance = 1_000_000 * thor.UnitsPerCoin

// devnetLaunchTime is 2025-01-01 00:00:00 UTC.
const devnetLaunchTime = 1735689600

// NewDevnet builds the devnet genesis: the default program and params,
// with DevAccountBalance credited to each dev account.
func NewDevnet() *Genesis {
	var accounts []Account
	for _, acc := range DevAccounts() {
		accounts = append(accounts, Account{Address: acc.Address, Balance: DevAccountBalance})
	}

	builder := new(Builder).
		Timestamp(devnetLaunchTime).
		Program(DefaultProgram).
		Params(staking.DefaultParams).
		State(allocate(accounts))

	gen, err := newGenesis("devnet", builder)
	if err != nil {
		panic(err)
	}
	return gen
}
