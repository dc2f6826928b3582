// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/stakepool/client"
	"github.com/vechain/stakepool/genesis"
	"github.com/vechain/stakepool/lvldb"
	"github.com/vechain/stakepool/runtime"
	"github.com/vechain/stakepool/staking/reverts"
	"github.com/vechain/stakepool/state"
	"github.com/vechain/stakepool/test/datagen"
	"github.com/vechain/stakepool/tx"
)

func newTestClient(t *testing.T) (*client.Client, *runtime.ManualClock) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	stater := state.NewStater(db)
	meta, err := genesis.NewDevnet().Build(stater)
	require.NoError(t, err)

	clock := runtime.NewManualClock(meta.LaunchTime)
	rt := runtime.New(stater, meta.Program, meta.ChainTag(), meta.Params, clock)
	return client.New(rt), clock
}

func TestStakeInfoEmpty(t *testing.T) {
	c, _ := newTestClient(t)
	owner := datagen.RandAddress()

	info, err := c.StakeInfo(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, &client.StakeInfo{Owner: owner}, info)

	pool, err := c.PoolInfo(context.Background())
	require.NoError(t, err)
	assert.False(t, pool.Initialized)
	assert.Equal(t, uint64(0), pool.TotalStaked)
}

func TestStakeFlow(t *testing.T) {
	c, clock := newTestClient(t)
	ctx := context.Background()
	authority, user := genesis.DevAccounts()[0], genesis.DevAccounts()[1]

	receipt, err := c.SignAndSend(ctx, authority.PrivateKey, tx.Initialize{LockPeriod: 5})
	require.NoError(t, err)
	require.False(t, receipt.Reverted, receipt.RevertReason)

	trx, err := c.BuildStake(user.Address, 100_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), trx.Nonce())
	receipt, err = c.Send(ctx, tx.MustSign(trx, user.PrivateKey))
	require.NoError(t, err)
	require.False(t, receipt.Reverted, receipt.RevertReason)

	clock.Advance(2)
	info, err := c.StakeInfo(ctx, user.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000_000), info.StakedAmount)
	assert.Equal(t, uint64(100_000_000), info.TotalStaked)
	assert.Equal(t, uint64(5), info.LockPeriod)
	assert.Equal(t, info.StakeTimestamp+5, info.UnlockTime)
	assert.Equal(t, uint64(3), info.Remaining)

	trx, err = c.BuildUnstake(user.Address)
	require.NoError(t, err)
	receipt, err = c.Send(ctx, tx.MustSign(trx, user.PrivateKey))
	require.NoError(t, err)
	assert.ErrorIs(t, receipt.Err(), reverts.ErrStakingPeriodNotComplete)

	clock.Advance(3)
	receipt, err = c.SignAndSend(ctx, user.PrivateKey, tx.Unstake{})
	require.NoError(t, err)
	require.False(t, receipt.Reverted, receipt.RevertReason)
	assert.Equal(t, uint64(100_000_000), receipt.Released)

	pool, err := c.PoolInfo(ctx)
	require.NoError(t, err)
	assert.True(t, pool.Initialized)
	assert.Equal(t, authority.Address, pool.Authority)
	assert.Equal(t, uint64(0), pool.TotalStaked)
	assert.Equal(t, 0, pool.Stakers)

	nonce, err := c.Nonce(user.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), nonce)
}

func TestSendRejected(t *testing.T) {
	c, _ := newTestClient(t)
	user := genesis.DevAccounts()[1]

	trx, err := c.BuildStake(user.Address, 1)
	require.NoError(t, err)

	_, err = c.Send(context.Background(), trx)
	assert.ErrorIs(t, err, tx.ErrUnsigned)
}
