// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"math"

	"github.com/vechain/stakepool/thor"
)

// body is the persisted layout of the pool record.
type body struct {
	Authority   thor.Address
	LockPeriod  uint64 // seconds
	TotalStaked uint64
}

// Pool is the singleton pool record of a staking program.
type Pool struct {
	body *body
}

func (p *Pool) Authority() thor.Address { return p.body.Authority }
func (p *Pool) LockPeriod() uint64      { return p.body.LockPeriod }
func (p *Pool) TotalStaked() uint64     { return p.body.TotalStaked }

// UnlockTime returns the time at which a stake made at stakedAt can be withdrawn.
// ok is false when the sum does not fit in 64 bits, in which case the stake never unlocks.
func (p *Pool) UnlockTime(stakedAt uint64) (unlockAt uint64, ok bool) {
	unlockAt = stakedAt + p.body.LockPeriod
	if unlockAt < stakedAt {
		return 0, false
	}
	return unlockAt, true
}

// Remaining returns the seconds left at now until a stake made at stakedAt unlocks.
// A stake whose unlock time overflows reports math.MaxUint64.
func (p *Pool) Remaining(stakedAt, now uint64) uint64 {
	unlockAt, ok := p.UnlockTime(stakedAt)
	if !ok {
		return math.MaxUint64
	}
	if now >= unlockAt {
		return 0
	}
	return unlockAt - now
}
