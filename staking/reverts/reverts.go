// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"errors"
	"fmt"
)

// Kind classifies a revert so callers can match it without parsing messages.
type Kind uint8

const (
	KindNone Kind = iota
	KindAlreadyInitialized
	KindInvalidParameter
	KindUnauthorized
	KindInsufficientFunds
	KindArithmeticOverflow
	KindArithmeticUnderflow
	KindStakingPeriodNotComplete
	KindNothingStaked
	KindAccountNotFound
)

var kindNames = [...]string{
	KindNone:                     "",
	KindAlreadyInitialized:       "AlreadyInitialized",
	KindInvalidParameter:         "InvalidParameter",
	KindUnauthorized:             "Unauthorized",
	KindInsufficientFunds:        "InsufficientFunds",
	KindArithmeticOverflow:       "ArithmeticOverflow",
	KindArithmeticUnderflow:      "ArithmeticUnderflow",
	KindStakingPeriodNotComplete: "StakingPeriodNotComplete",
	KindNothingStaked:            "NothingStaked",
	KindAccountNotFound:          "AccountNotFound",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown revert kind %q", text)
}

// Sentinels for errors.Is matching. Only the kind is compared.
var (
	ErrAlreadyInitialized       = New(KindAlreadyInitialized, "staking pool already initialized")
	ErrInvalidParameter         = New(KindInvalidParameter, "invalid parameter")
	ErrUnauthorized             = New(KindUnauthorized, "unauthorized")
	ErrInsufficientFunds        = New(KindInsufficientFunds, "insufficient funds")
	ErrArithmeticOverflow       = New(KindArithmeticOverflow, "arithmetic overflow")
	ErrArithmeticUnderflow      = New(KindArithmeticUnderflow, "arithmetic underflow")
	ErrStakingPeriodNotComplete = New(KindStakingPeriodNotComplete, "staking period not complete")
	ErrNothingStaked            = New(KindNothingStaked, "nothing staked")
	ErrAccountNotFound          = New(KindAccountNotFound, "account not found")
)

type ErrRevert struct {
	kind      Kind
	message   string
	remaining uint64
}

func New(kind Kind, message string) *ErrRevert {
	return &ErrRevert{
		kind:    kind,
		message: message,
	}
}

func Newf(kind Kind, format string, args ...any) *ErrRevert {
	return New(kind, fmt.Sprintf(format, args...))
}

// NewStakingPeriodNotComplete reports a withdrawal attempted before the lock expired.
func NewStakingPeriodNotComplete(remaining uint64) *ErrRevert {
	return &ErrRevert{
		kind:      KindStakingPeriodNotComplete,
		message:   fmt.Sprintf("staking period not complete: %ds remaining", remaining),
		remaining: remaining,
	}
}

func (e *ErrRevert) Error() string {
	return e.message
}

func (e *ErrRevert) Kind() Kind {
	return e.kind
}

// Remaining returns the seconds left until unlock for StakingPeriodNotComplete reverts.
func (e *ErrRevert) Remaining() uint64 {
	return e.remaining
}

// Is reports whether target is a revert of the same kind.
func (e *ErrRevert) Is(target error) bool {
	t, ok := target.(*ErrRevert)
	return ok && t.kind == e.kind
}

func IsRevertErr(err any) bool {
	if err == nil {
		return false
	}
	e, ok := err.(error)
	if !ok {
		return false
	}
	var ve *ErrRevert
	return errors.As(e, &ve)
}

// KindOf returns the kind of the revert wrapped by err, or KindNone.
func KindOf(err error) Kind {
	var ve *ErrRevert
	if errors.As(err, &ve) {
		return ve.kind
	}
	return KindNone
}
