// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

// Kind identifies the instruction carried by a transaction.
type Kind uint8

const (
	KindInitialize Kind = iota + 1
	KindAdjustLockPeriod
	KindStake
	KindUnstake
)

func (k Kind) String() string {
	switch k {
	case KindInitialize:
		return "initialize"
	case KindAdjustLockPeriod:
		return "adjust_lock_period"
	case KindStake:
		return "stake"
	case KindUnstake:
		return "unstake"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Instruction is a typed, decoded instruction.
type Instruction interface {
	Kind() Kind
}

// Initialize creates the pool, making the signer its authority.
type Initialize struct {
	LockPeriod uint64
}

// AdjustLockPeriod replaces the pool lock period.
type AdjustLockPeriod struct {
	LockPeriod uint64
}

// Stake deposits Amount from the signer.
type Stake struct {
	Amount uint64
}

// Unstake withdraws the signer's whole stake.
type Unstake struct{}

func (Initialize) Kind() Kind       { return KindInitialize }
func (AdjustLockPeriod) Kind() Kind { return KindAdjustLockPeriod }
func (Stake) Kind() Kind            { return KindStake }
func (Unstake) Kind() Kind          { return KindUnstake }

func encodeInstruction(ins Instruction) ([]byte, error) {
	if _, ok := ins.(Unstake); ok {
		return nil, nil
	}
	return rlp.EncodeToBytes(ins)
}

// DecodeInstruction decodes the payload of the given kind.
func DecodeInstruction(kind Kind, payload []byte) (Instruction, error) {
	switch kind {
	case KindInitialize:
		var ins Initialize
		if err := rlp.DecodeBytes(payload, &ins); err != nil {
			return nil, errors.Wrap(err, "decode initialize")
		}
		return ins, nil
	case KindAdjustLockPeriod:
		var ins AdjustLockPeriod
		if err := rlp.DecodeBytes(payload, &ins); err != nil {
			return nil, errors.Wrap(err, "decode adjust lock period")
		}
		return ins, nil
	case KindStake:
		var ins Stake
		if err := rlp.DecodeBytes(payload, &ins); err != nil {
			return nil, errors.Wrap(err, "decode stake")
		}
		return ins, nil
	case KindUnstake:
		if len(payload) != 0 {
			return nil, errors.New("unstake takes no arguments")
		}
		return Unstake{}, nil
	default:
		return nil, errors.Errorf("unknown instruction kind %d", uint8(kind))
	}
}
