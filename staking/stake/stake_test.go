// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stake

import (
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/stakepool/lvldb"
	"github.com/vechain/stakepool/staking/reverts"
	"github.com/vechain/stakepool/state"
	"github.com/vechain/stakepool/test/datagen"
	"github.com/vechain/stakepool/thor"
)

func newService(t *testing.T) (*Service, *state.State) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	st := state.NewStater(db).NewState()
	return New(datagen.RandAddress(), st), st
}

func TestDepositWithdraw(t *testing.T) {
	svc, _ := newService(t)
	owner := datagen.RandAddress()

	_, err := svc.GetExisting(owner)
	assert.ErrorIs(t, err, reverts.ErrAccountNotFound)

	s, err := svc.Create(owner)
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())

	require.NoError(t, svc.Deposit(s, 10, 100))
	require.NoError(t, svc.Deposit(s, 5, 200))
	assert.ErrorIs(t, svc.Deposit(s, math.MaxUint64, 300), reverts.ErrArithmeticOverflow)

	got, err := svc.GetExisting(owner)
	require.NoError(t, err)
	assert.Equal(t, owner, got.Owner())
	assert.Equal(t, uint64(15), got.Amount())
	assert.Equal(t, uint64(200), got.StakeTimestamp())

	amount, err := svc.Withdraw(got)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), amount)

	got, err = svc.Get(owner)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
	assert.Equal(t, uint64(200), got.StakeTimestamp())
}

func TestForEach(t *testing.T) {
	svc, st := newService(t)
	owners := datagen.RandAddresses(3)
	for i, o := range owners {
		s, err := svc.Create(o)
		require.NoError(t, err)
		require.NoError(t, svc.Deposit(s, uint64(i+1), 1))
	}

	// a record with the same layout at a non-derived address is skipped
	foreign := datagen.RandAddress()
	require.NoError(t, st.EncodeData(foreign, svc.program, func() ([]byte, error) {
		return rlp.EncodeToBytes(&body{Owner: owners[0], Amount: 99})
	}))

	seen := make(map[thor.Address]uint64)
	require.NoError(t, svc.ForEach(func(s *Stake) bool {
		seen[s.Owner()] = s.Amount()
		return true
	}))
	assert.Len(t, seen, 3)
	for i, o := range owners {
		assert.Equal(t, uint64(i+1), seen[o])
	}

	var n int
	require.NoError(t, svc.ForEach(func(*Stake) bool {
		n++
		return false
	}))
	assert.Equal(t, 1, n)
}
