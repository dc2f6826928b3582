// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import "github.com/vechain/stakepool/thor"

// Params holds the tunables of a staking program.
type Params struct {
	// StakeAccountReserve is moved from the depositor to a stake account when it is created.
	StakeAccountReserve uint64 `yaml:"stakeAccountReserve" json:"stakeAccountReserve"`
}

// DefaultParams is used when genesis does not override them.
var DefaultParams = Params{
	StakeAccountReserve: thor.UnitsPerCoin / 1000,
}
