// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/stakepool/test/datagen"
	"github.com/vechain/stakepool/thor"
)

func newTestTx(t *testing.T, ins Instruction) *Transaction {
	trx, err := NewBuilder(datagen.RandAddress()).
		ChainTag(0x4a).
		Instruction(ins).
		Accounts(datagen.RandAddress(), datagen.RandAddress()).
		Nonce(7).
		Build()
	require.NoError(t, err)
	return trx
}

func TestSign(t *testing.T) {
	pk, err := crypto.GenerateKey()
	require.NoError(t, err)

	trx := newTestTx(t, Stake{Amount: 100})
	_, err = trx.Origin()
	assert.ErrorIs(t, err, ErrUnsigned)
	assert.True(t, trx.ID().IsZero())

	signed, err := Sign(trx, pk)
	require.NoError(t, err)

	origin, err := signed.Origin()
	require.NoError(t, err)
	assert.Equal(t, thor.Address(crypto.PubkeyToAddress(pk.PublicKey)), origin)
	assert.Equal(t, trx.SigningHash(), signed.SigningHash())
	assert.Equal(t, thor.Blake2b(signed.SigningHash().Bytes(), origin.Bytes()), signed.ID())
}

func TestInvalidSignature(t *testing.T) {
	trx := newTestTx(t, Unstake{}).WithSignature([]byte{1, 2, 3})
	_, err := trx.Origin()
	assert.Error(t, err)
}

func TestEncoding(t *testing.T) {
	pk, err := crypto.GenerateKey()
	require.NoError(t, err)
	signed := MustSign(newTestTx(t, AdjustLockPeriod{LockPeriod: 60}), pk)

	data, err := signed.MarshalBinary()
	require.NoError(t, err)

	var decoded Transaction
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, signed.ID(), decoded.ID())
	assert.Equal(t, signed.Program(), decoded.Program())
	assert.Equal(t, signed.Accounts(), decoded.Accounts())
	assert.Equal(t, uint64(7), decoded.Nonce())
	assert.Equal(t, byte(0x4a), decoded.ChainTag())

	ins, err := decoded.Instruction()
	require.NoError(t, err)
	assert.Equal(t, AdjustLockPeriod{LockPeriod: 60}, ins)
	assert.Contains(t, decoded.String(), "adjust_lock_period")
}

func TestSigningHashCoversFields(t *testing.T) {
	program := datagen.RandAddress()
	build := func(nonce uint64, ins Instruction) *Transaction {
		trx, err := NewBuilder(program).Instruction(ins).Nonce(nonce).Build()
		require.NoError(t, err)
		return trx
	}

	base := build(1, Stake{Amount: 1}).SigningHash()
	assert.NotEqual(t, base, build(2, Stake{Amount: 1}).SigningHash())
	assert.NotEqual(t, base, build(1, Stake{Amount: 2}).SigningHash())
	assert.NotEqual(t, base, build(1, Initialize{LockPeriod: 1}).SigningHash())
}

func TestDecodeInstruction(t *testing.T) {
	payload, err := rlp.EncodeToBytes(Initialize{LockPeriod: 5})
	require.NoError(t, err)

	tests := []struct {
		name    string
		kind    Kind
		payload []byte
		want    Instruction
		wantErr bool
	}{
		{"initialize", KindInitialize, payload, Initialize{LockPeriod: 5}, false},
		{"adjust", KindAdjustLockPeriod, payload, AdjustLockPeriod{LockPeriod: 5}, false},
		{"stake", KindStake, payload, Stake{Amount: 5}, false},
		{"unstake", KindUnstake, nil, Unstake{}, false},
		{"unstake with args", KindUnstake, payload, nil, true},
		{"garbage", KindStake, []byte{0xff}, nil, true},
		{"unknown kind", Kind(99), payload, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeInstruction(tt.kind, tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.kind, got.Kind())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "initialize", KindInitialize.String())
	assert.Equal(t, "unstake", KindUnstake.String())
	assert.Equal(t, "unknown(9)", Kind(9).String())
}
