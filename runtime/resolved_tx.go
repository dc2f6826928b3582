// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/vechain/stakepool/staking"
	"github.com/vechain/stakepool/thor"
	"github.com/vechain/stakepool/tx"
)

// ResolvedTransaction is a transaction whose signer and instruction have been checked.
type ResolvedTransaction struct {
	tx          *tx.Transaction
	Origin      thor.Address
	Instruction tx.Instruction
}

// ResolveTransaction resolves the transaction and performs basic validation.
func ResolveTransaction(trx *tx.Transaction, chainTag byte, program thor.Address) (*ResolvedTransaction, error) {
	if trx.ChainTag() != chainTag {
		return nil, errors.Errorf("chain tag mismatch: want %d, got %d", chainTag, trx.ChainTag())
	}
	if trx.Program() != program {
		return nil, errors.Errorf("unknown program %v", trx.Program())
	}
	origin, err := trx.Origin()
	if err != nil {
		return nil, errors.Wrap(err, "recover signer")
	}
	ins, err := trx.Instruction()
	if err != nil {
		return nil, err
	}
	if want := InstructionAccounts(program, origin, ins.Kind()); !slices.Equal(want, trx.Accounts()) {
		return nil, errors.Errorf("%v expects accounts %v, got %v", ins.Kind(), want, trx.Accounts())
	}
	return &ResolvedTransaction{
		tx:          trx,
		Origin:      origin,
		Instruction: ins,
	}, nil
}

// InstructionAccounts lists the accounts an instruction of kind signed by
// signer touches, in the order a transaction must name them.
func InstructionAccounts(program, signer thor.Address, kind tx.Kind) []thor.Address {
	pool := staking.PoolAddress(program)
	switch kind {
	case tx.KindInitialize, tx.KindAdjustLockPeriod:
		return []thor.Address{pool}
	case tx.KindStake, tx.KindUnstake:
		return []thor.Address{pool, staking.StakeAddress(program, signer)}
	default:
		return nil
	}
}
