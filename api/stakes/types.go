// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakes

import (
	"github.com/vechain/stakepool/client"
	"github.com/vechain/stakepool/thor"
)

// Stake is the response of GET /stakes/{owner}.
// Amounts are in whole coins, as decimal strings.
type Stake struct {
	Owner          thor.Address `json:"owner"`
	Balance        string       `json:"balance"`
	StakedAmount   string       `json:"stakedAmount"`
	TotalStaked    string       `json:"totalStaked"`
	StakingPeriod  uint64       `json:"stakingPeriod"`
	StakeTimestamp uint64       `json:"stakeTimestamp"`
	UnlockTime     uint64       `json:"unlockTime"`
	Remaining      uint64       `json:"remaining"`
}

func newStake(info *client.StakeInfo) *Stake {
	return &Stake{
		Owner:          info.Owner,
		Balance:        thor.FormatCoins(info.Balance),
		StakedAmount:   thor.FormatCoins(info.StakedAmount),
		TotalStaked:    thor.FormatCoins(info.TotalStaked),
		StakingPeriod:  info.LockPeriod,
		StakeTimestamp: info.StakeTimestamp,
		UnlockTime:     info.UnlockTime,
		Remaining:      info.Remaining,
	}
}
