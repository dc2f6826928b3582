// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stake

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/vechain/stakepool/staking/reverts"
	"github.com/vechain/stakepool/state"
	"github.com/vechain/stakepool/thor"
)

// Seed prefixes the owner address when deriving a stake address.
var Seed = []byte("user")

// Address returns the stake address of owner under the given program.
func Address(program, owner thor.Address) thor.Address {
	return thor.DeriveAddress(program, Seed, owner[:])
}

type Service struct {
	program thor.Address
	state   *state.State
}

func New(program thor.Address, st *state.State) *Service {
	return &Service{
		program: program,
		state:   st,
	}
}

// AddressOf returns the stake address of owner.
func (s *Service) AddressOf(owner thor.Address) thor.Address {
	return Address(s.program, owner)
}

// Get returns the stake of owner, or nil if none was ever created.
func (s *Service) Get(owner thor.Address) (*Stake, error) {
	var b body
	found, err := s.state.DecodeData(Address(s.program, owner), func(data []byte) error {
		return rlp.DecodeBytes(data, &b)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get stake")
	}
	if !found {
		return nil, nil
	}
	return &Stake{&b}, nil
}

// GetExisting returns the stake of owner, or an AccountNotFound revert.
func (s *Service) GetExisting(owner thor.Address) (*Stake, error) {
	st, err := s.Get(owner)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, reverts.Newf(reverts.KindAccountNotFound, "no stake account for %v", owner)
	}
	return st, nil
}

// Create writes an empty stake record for owner.
func (s *Service) Create(owner thor.Address) (*Stake, error) {
	st := &Stake{&body{Owner: owner}}
	if err := s.update(st); err != nil {
		return nil, err
	}
	return st, nil
}

// Deposit adds amount to the stake and restarts its lock at now.
func (s *Service) Deposit(st *Stake, amount, now uint64) error {
	total := st.body.Amount + amount
	if total < amount {
		return reverts.Newf(reverts.KindArithmeticOverflow, "stake amount overflows adding %d", amount)
	}
	st.body.Amount = total
	st.body.StakeTimestamp = now
	return s.update(st)
}

// Withdraw zeroes the stake and returns the released amount.
func (s *Service) Withdraw(st *Stake) (uint64, error) {
	amount := st.body.Amount
	st.body.Amount = 0
	if err := s.update(st); err != nil {
		return 0, err
	}
	return amount, nil
}

// ForEach calls fn for every stake record of the program in address order.
func (s *Service) ForEach(fn func(*Stake) bool) error {
	return s.state.ForEachOwnedBy(s.program, func(addr thor.Address, acc *state.Account) bool {
		var b body
		if err := rlp.DecodeBytes(acc.Data, &b); err != nil {
			return true
		}
		// the pool record shares the layout, skip anything not derived from its owner
		if addr != Address(s.program, b.Owner) {
			return true
		}
		return fn(&Stake{&b})
	})
}

func (s *Service) update(st *Stake) error {
	return s.state.EncodeData(Address(s.program, st.body.Owner), s.program, func() ([]byte, error) {
		return rlp.EncodeToBytes(st.body)
	})
}
