// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vechain/stakepool/state"
	"github.com/vechain/stakepool/thor"
)

// ClockAddress holds the last observed ledger time.
var ClockAddress = thor.BytesToAddress([]byte("SysvarClock"))

// Clock provides the current unix time in seconds.
type Clock interface {
	Now() uint64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() uint64 { return uint64(time.Now().Unix()) }

// ManualClock is moved explicitly. Useful for tests and dev setups.
type ManualClock struct {
	now atomic.Uint64
}

func NewManualClock(now uint64) *ManualClock {
	c := &ManualClock{}
	c.now.Store(now)
	return c
}

func (c *ManualClock) Now() uint64         { return c.now.Load() }
func (c *ManualClock) Set(now uint64)      { c.now.Store(now) }
func (c *ManualClock) Advance(secs uint64) { c.now.Add(secs) }

// LastTime returns the ledger time persisted by the last executed transaction.
func LastTime(st *state.State) (uint64, error) {
	var last uint64
	_, err := st.DecodeData(ClockAddress, func(data []byte) error {
		return rlp.DecodeBytes(data, &last)
	})
	return last, err
}

// tick returns the time for the next transaction and persists it.
// The result never goes below the previously persisted time.
func tick(st *state.State, clock Clock) (uint64, error) {
	last, err := LastTime(st)
	if err != nil {
		return 0, err
	}
	now := max(clock.Now(), last)
	if now != last {
		err = InitClock(st, now)
	}
	return now, err
}

// InitClock sets the ledger time, typically to the launch time at genesis.
func InitClock(st *state.State, now uint64) error {
	return st.EncodeData(ClockAddress, ClockAddress, func() ([]byte, error) {
		return rlp.EncodeToBytes(now)
	})
}
