// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package client

import (
	"context"

	"github.com/vechain/stakepool/staking"
	"github.com/vechain/stakepool/state"
	"github.com/vechain/stakepool/thor"
)

// StakeInfo is the view of one depositor. Missing accounts read as zeros.
type StakeInfo struct {
	Owner          thor.Address `json:"owner"`
	Balance        uint64       `json:"balance"`
	StakedAmount   uint64       `json:"stakedAmount"`
	StakeTimestamp uint64       `json:"stakeTimestamp"`
	TotalStaked    uint64       `json:"totalStaked"`
	LockPeriod     uint64       `json:"lockPeriod"`
	UnlockTime     uint64       `json:"unlockTime"`
	Remaining      uint64       `json:"remaining"`
}

// PoolInfo is the view of the pool.
type PoolInfo struct {
	Address     thor.Address `json:"address"`
	Initialized bool         `json:"initialized"`
	Authority   thor.Address `json:"authority"`
	LockPeriod  uint64       `json:"lockPeriod"`
	TotalStaked uint64       `json:"totalStaked"`
	Custody     uint64       `json:"custody"`
	Stakers     int          `json:"stakers"`
}

// StakeInfo reads the stake of owner as of now. All fields come from the
// same committed state.
func (c *Client) StakeInfo(ctx context.Context, owner thor.Address) (*StakeInfo, error) {
	info := &StakeInfo{Owner: owner}
	err := c.rt.View(ctx, func(st *state.State, now uint64) (err error) {
		if info.Balance, err = st.GetBalance(owner); err != nil {
			return err
		}
		program := staking.New(c.rt.Program(), st, c.rt.Params())
		p, err := program.GetPool()
		if err != nil {
			return err
		}
		stake, err := program.GetStake(owner)
		if err != nil {
			return err
		}
		if p != nil {
			info.TotalStaked = p.TotalStaked()
			info.LockPeriod = p.LockPeriod()
		}
		if stake != nil {
			info.StakedAmount = stake.Amount()
			info.StakeTimestamp = stake.StakeTimestamp()
		}
		if p != nil && stake != nil && !stake.IsEmpty() {
			info.UnlockTime, _ = p.UnlockTime(stake.StakeTimestamp())
			info.Remaining = p.Remaining(stake.StakeTimestamp(), now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// PoolInfo reads the pool from one committed state.
func (c *Client) PoolInfo(ctx context.Context) (*PoolInfo, error) {
	info := &PoolInfo{Address: staking.PoolAddress(c.rt.Program())}
	err := c.rt.View(ctx, func(st *state.State, _ uint64) (err error) {
		program := staking.New(c.rt.Program(), st, c.rt.Params())
		p, err := program.GetPool()
		if err != nil {
			return err
		}
		if info.Custody, err = program.Custody(); err != nil {
			return err
		}
		if p == nil {
			return nil
		}
		stakes, err := program.Stakes()
		if err != nil {
			return err
		}
		info.Initialized = true
		info.Authority = p.Authority()
		info.LockPeriod = p.LockPeriod()
		info.TotalStaked = p.TotalStaked()
		for _, stake := range stakes {
			if !stake.IsEmpty() {
				info.Stakers++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}
