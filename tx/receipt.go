// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"github.com/vechain/stakepool/staking/reverts"
	"github.com/vechain/stakepool/thor"
)

// Receipt represents the results of a transaction.
type Receipt struct {
	TxID      thor.Bytes32 `json:"txID"`
	Signer    thor.Address `json:"signer"`
	Kind      Kind         `json:"kind"`
	Nonce     uint64       `json:"nonce"`
	Timestamp uint64       `json:"timestamp"`

	// Released is the amount returned to the signer by an unstake.
	Released uint64 `json:"released"`

	// Reverted is set when the instruction failed and all its writes were discarded.
	Reverted     bool         `json:"reverted"`
	RevertKind   reverts.Kind `json:"revertKind,omitempty"`
	RevertReason string       `json:"revertReason,omitempty"`

	// Remaining is the lock time left when the revert is StakingPeriodNotComplete.
	Remaining uint64 `json:"remaining,omitempty"`
}

// Err rebuilds the revert error of a reverted receipt, or nil.
func (r *Receipt) Err() error {
	if !r.Reverted {
		return nil
	}
	if r.RevertKind == reverts.KindStakingPeriodNotComplete {
		return reverts.NewStakingPeriodNotComplete(r.Remaining)
	}
	return reverts.New(r.RevertKind, r.RevertReason)
}
