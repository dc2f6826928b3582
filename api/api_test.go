// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/stakepool/api"
	"github.com/vechain/stakepool/api/node"
	"github.com/vechain/stakepool/api/pool"
	"github.com/vechain/stakepool/api/stakes"
	"github.com/vechain/stakepool/client"
	"github.com/vechain/stakepool/genesis"
	"github.com/vechain/stakepool/lvldb"
	"github.com/vechain/stakepool/runtime"
	"github.com/vechain/stakepool/state"
	"github.com/vechain/stakepool/test/datagen"
	"github.com/vechain/stakepool/tx"
)

type testServer struct {
	ts    *httptest.Server
	meta  *genesis.Meta
	rt    *runtime.Runtime
	clock *runtime.ManualClock
}

func newTestServer(t *testing.T) *testServer {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	stater := state.NewStater(db)
	meta, err := genesis.NewDevnet().Build(stater)
	require.NoError(t, err)

	clock := runtime.NewManualClock(meta.LaunchTime)
	rt := runtime.New(stater, meta.Program, meta.ChainTag(), meta.Params, clock)

	ts := httptest.NewServer(api.New(meta, rt, api.Options{AllowedOrigins: "*", EnableMetrics: true}))
	t.Cleanup(ts.Close)
	return &testServer{ts, meta, rt, clock}
}

func (s *testServer) get(t *testing.T, path string) ([]byte, int) {
	res, err := http.Get(s.ts.URL + path)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return body, res.StatusCode
}

func TestNodeInfo(t *testing.T) {
	s := newTestServer(t)

	body, status := s.get(t, "/node/info")
	require.Equal(t, http.StatusOK, status, string(body))

	var info node.Info
	require.NoError(t, json.Unmarshal(body, &info))
	assert.Equal(t, s.meta.Name, info.Network)
	assert.Equal(t, s.meta.ID, info.GenesisID)
	assert.Equal(t, s.meta.ChainTag(), info.ChainTag)
	assert.Equal(t, s.meta.Program, info.Program)
	assert.Equal(t, s.meta.LaunchTime, info.Time)
}

func TestPoolNotInitialized(t *testing.T) {
	s := newTestServer(t)

	body, status := s.get(t, "/pool")
	require.Equal(t, http.StatusOK, status, string(body))

	var p pool.Pool
	require.NoError(t, json.Unmarshal(body, &p))
	assert.False(t, p.Initialized)
	assert.Nil(t, p.Authority)
	assert.Equal(t, "0", p.TotalStaked)
}

func TestStakeAndPool(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	c := client.New(s.rt)
	authority, user := genesis.DevAccounts()[0], genesis.DevAccounts()[1]

	receipt, err := c.SignAndSend(ctx, authority.PrivateKey, tx.Initialize{LockPeriod: 5})
	require.NoError(t, err)
	require.False(t, receipt.Reverted, receipt.RevertReason)
	receipt, err = c.SignAndSend(ctx, user.PrivateKey, tx.Stake{Amount: 100_000_000})
	require.NoError(t, err)
	require.False(t, receipt.Reverted, receipt.RevertReason)
	s.clock.Advance(2)

	body, status := s.get(t, "/stakes/"+user.Address.String())
	require.Equal(t, http.StatusOK, status, string(body))

	var stake stakes.Stake
	require.NoError(t, json.Unmarshal(body, &stake))
	assert.Equal(t, user.Address, stake.Owner)
	assert.Equal(t, "0.1", stake.StakedAmount)
	assert.Equal(t, "0.1", stake.TotalStaked)
	assert.Equal(t, uint64(5), stake.StakingPeriod)
	assert.Equal(t, uint64(3), stake.Remaining)

	// base58 form resolves to the same owner
	body, status = s.get(t, "/stakes/"+user.Address.Base58())
	require.Equal(t, http.StatusOK, status, string(body))
	var again stakes.Stake
	require.NoError(t, json.Unmarshal(body, &again))
	assert.Equal(t, stake, again)

	body, status = s.get(t, "/pool")
	require.Equal(t, http.StatusOK, status, string(body))
	var p pool.Pool
	require.NoError(t, json.Unmarshal(body, &p))
	assert.True(t, p.Initialized)
	require.NotNil(t, p.Authority)
	assert.Equal(t, authority.Address, *p.Authority)
	assert.Equal(t, uint64(5), p.LockPeriod)
	assert.Equal(t, "0.1", p.TotalStaked)
	assert.Equal(t, 1, p.Stakers)
}

func TestStakeUnknownOwner(t *testing.T) {
	s := newTestServer(t)
	owner := datagen.RandAddress()

	body, status := s.get(t, "/stakes/"+owner.String())
	require.Equal(t, http.StatusOK, status, string(body))

	var stake stakes.Stake
	require.NoError(t, json.Unmarshal(body, &stake))
	assert.Equal(t, owner, stake.Owner)
	assert.Equal(t, "0", stake.StakedAmount)
}

func TestStakeBadOwner(t *testing.T) {
	s := newTestServer(t)

	body, status := s.get(t, "/stakes/not-an-address")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "owner")
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	res, err := http.Post(s.ts.URL+"/pool", "application/json", nil)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, s.ts.URL+"/pool", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.org")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}
