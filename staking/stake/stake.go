// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stake

import "github.com/vechain/stakepool/thor"

type body struct {
	Owner          thor.Address
	Amount         uint64
	StakeTimestamp uint64
}

// Stake is the per-depositor record.
type Stake struct {
	body *body
}

func (s *Stake) Owner() thor.Address    { return s.body.Owner }
func (s *Stake) Amount() uint64         { return s.body.Amount }
func (s *Stake) StakeTimestamp() uint64 { return s.body.StakeTimestamp }

// IsEmpty returns whether nothing is currently staked.
func (s *Stake) IsEmpty() bool {
	return s.body.Amount == 0
}
