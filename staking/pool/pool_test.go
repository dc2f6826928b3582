// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/stakepool/lvldb"
	"github.com/vechain/stakepool/staking/reverts"
	"github.com/vechain/stakepool/state"
	"github.com/vechain/stakepool/test/datagen"
)

func newService(t *testing.T) *Service {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(datagen.RandAddress(), state.NewStater(db).NewState())
}

func TestUnlockTime(t *testing.T) {
	p := &Pool{&body{LockPeriod: 5}}

	at, ok := p.UnlockTime(100)
	assert.True(t, ok)
	assert.Equal(t, uint64(105), at)

	assert.Equal(t, uint64(3), p.Remaining(100, 102))
	assert.Equal(t, uint64(0), p.Remaining(100, 105))
	assert.Equal(t, uint64(0), p.Remaining(100, 1000))

	_, ok = p.UnlockTime(math.MaxUint64 - 4)
	assert.False(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), p.Remaining(math.MaxUint64-4, math.MaxUint64))
}

func TestService(t *testing.T) {
	svc := newService(t)
	authority := datagen.RandAddress()

	p, err := svc.Get()
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = svc.GetExisting()
	assert.ErrorIs(t, err, reverts.ErrAccountNotFound)

	p, err = svc.Create(authority, 10)
	require.NoError(t, err)
	require.NoError(t, svc.AddStaked(p, 7))
	require.NoError(t, svc.SetLockPeriod(p, 20))

	got, err := svc.GetExisting()
	require.NoError(t, err)
	assert.Equal(t, authority, got.Authority())
	assert.Equal(t, uint64(20), got.LockPeriod())
	assert.Equal(t, uint64(7), got.TotalStaked())

	assert.ErrorIs(t, svc.SubStaked(got, 8), reverts.ErrArithmeticUnderflow)
	assert.ErrorIs(t, svc.AddStaked(got, math.MaxUint64), reverts.ErrArithmeticOverflow)
	assert.Equal(t, uint64(7), got.TotalStaked())

	require.NoError(t, svc.SubStaked(got, 7))
	got, err = svc.Get()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got.TotalStaked())
}

func TestAddress(t *testing.T) {
	program := datagen.RandAddress()
	assert.Equal(t, Address(program), New(program, nil).Address())
	assert.NotEqual(t, Address(program), Address(datagen.RandAddress()))
}
