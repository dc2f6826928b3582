// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/stakepool/genesis"
	"github.com/vechain/stakepool/lvldb"
	"github.com/vechain/stakepool/runtime"
	"github.com/vechain/stakepool/staking"
	"github.com/vechain/stakepool/state"
	"github.com/vechain/stakepool/thor"
)

func TestDevGenesis(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	gene := genesis.NewDevnet()
	assert.Equal(t, gene.ID(), genesis.NewDevnet().ID())

	stater := state.NewStater(db)
	meta, err := gene.Build(stater)
	require.NoError(t, err)
	assert.Equal(t, "devnet", meta.Name)
	assert.Equal(t, genesis.DefaultProgram, meta.Program)
	assert.Equal(t, staking.DefaultParams, meta.Params)
	assert.Equal(t, gene.ID()[31], meta.ChainTag())

	st := stater.NewState()
	for _, acc := range genesis.DevAccounts() {
		bal, err := st.GetBalance(acc.Address)
		require.NoError(t, err)
		assert.Equal(t, genesis.DevAccountBalance, bal)
	}

	now, err := runtime.LastTime(st)
	require.NoError(t, err)
	assert.Equal(t, meta.LaunchTime, now)
}

func TestDevAccounts(t *testing.T) {
	accs := genesis.DevAccounts()
	require.Len(t, accs, 10)
	assert.Equal(t, thor.MustParseAddress("0x7567d83b7b8d80addcb281a71d54fc7b3364ffed"), accs[0].Address)
	assert.Equal(t, thor.MustParseAddress("0xf077b491b355E64048cE21E3A6Fc4751eEeA77fa"), accs[1].Address)

	seen := make(map[thor.Address]bool)
	for _, acc := range accs {
		assert.Equal(t, thor.Address(crypto.PubkeyToAddress(acc.PrivateKey.PublicKey)), acc.Address)
		assert.False(t, seen[acc.Address], "duplicate dev account %v", acc.Address)
		seen[acc.Address] = true
	}
	assert.Same(t, &accs[0], &genesis.DevAccounts()[0], "dev accounts are built once")
}

const customYAML = `
name: localnet
launchTime: 1700000000
program: "0x0000000000000000000000000000000000001234"
params:
  stakeAccountReserve: 42
accounts:
  - address: "0x0000000000000000000000000000000000000001"
    balance: 1000
  - address: "0x0000000000000000000000000000000000000002"
    balance: 2000
`

func TestCustomNet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(customYAML), 0o600))

	custom, err := genesis.LoadCustomGenesis(path)
	require.NoError(t, err)
	require.Len(t, custom.Accounts, 2)

	gene, err := genesis.NewCustomNet(custom)
	require.NoError(t, err)

	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	stater := state.NewStater(db)
	meta, err := gene.Build(stater)
	require.NoError(t, err)
	assert.Equal(t, "localnet", meta.Name)
	assert.Equal(t, thor.BytesToAddress([]byte{0x12, 0x34}), meta.Program)
	assert.Equal(t, uint64(42), meta.Params.StakeAccountReserve)

	bal, err := stater.NewState().GetBalance(thor.BytesToAddress([]byte{2}))
	require.NoError(t, err)
	assert.Equal(t, uint64(2000), bal)
}

func TestCustomNetValidation(t *testing.T) {
	_, err := genesis.NewCustomNet(&genesis.CustomGenesis{})
	assert.ErrorContains(t, err, "launchTime")

	_, err = genesis.NewCustomNet(&genesis.CustomGenesis{LaunchTime: 1})
	assert.ErrorContains(t, err, "at least one account")

	_, err = genesis.NewCustomNet(&genesis.CustomGenesis{
		LaunchTime: 1,
		Accounts:   []genesis.Account{{Address: thor.BytesToAddress([]byte{1})}},
	})
	assert.ErrorContains(t, err, "non-zero")

	_, err = genesis.ParseCustomGenesis([]byte("accounts: [{address: nope}]"))
	assert.Error(t, err)
}

func TestMeta(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	_, err = genesis.ReadMeta(db)
	assert.ErrorIs(t, err, genesis.ErrNotInitialized)

	meta := genesis.NewDevnet().Meta()
	require.NoError(t, genesis.WriteMeta(db, meta))

	got, err := genesis.ReadMeta(db)
	require.NoError(t, err)
	assert.Equal(t, meta, got)
}
