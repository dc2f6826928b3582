// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pool

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/vechain/stakepool/staking/reverts"
	"github.com/vechain/stakepool/state"
	"github.com/vechain/stakepool/thor"
)

// Seed is the derivation seed of the pool address.
var Seed = []byte("staking_pool")

// Address returns the pool address of the given program.
func Address(program thor.Address) thor.Address {
	return thor.DeriveAddress(program, Seed)
}

type Service struct {
	program thor.Address
	addr    thor.Address
	state   *state.State
}

func New(program thor.Address, st *state.State) *Service {
	return &Service{
		program: program,
		addr:    Address(program),
		state:   st,
	}
}

// Address returns the address holding the pool record and its custody balance.
func (s *Service) Address() thor.Address {
	return s.addr
}

// Get returns the pool, or nil if it was never created.
func (s *Service) Get() (*Pool, error) {
	var b body
	found, err := s.state.DecodeData(s.addr, func(data []byte) error {
		return rlp.DecodeBytes(data, &b)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pool")
	}
	if !found {
		return nil, nil
	}
	return &Pool{&b}, nil
}

// GetExisting returns the pool, or an AccountNotFound revert.
func (s *Service) GetExisting() (*Pool, error) {
	p, err := s.Get()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, reverts.Newf(reverts.KindAccountNotFound, "staking pool %v not initialized", s.addr)
	}
	return p, nil
}

// Create writes a new pool record.
func (s *Service) Create(authority thor.Address, lockPeriod uint64) (*Pool, error) {
	p := &Pool{&body{
		Authority:  authority,
		LockPeriod: lockPeriod,
	}}
	if err := s.update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) SetLockPeriod(p *Pool, lockPeriod uint64) error {
	p.body.LockPeriod = lockPeriod
	return s.update(p)
}

// AddStaked increases the pool total, failing on overflow.
func (s *Service) AddStaked(p *Pool, amount uint64) error {
	total := p.body.TotalStaked + amount
	if total < amount {
		return reverts.Newf(reverts.KindArithmeticOverflow, "total staked overflows adding %d", amount)
	}
	p.body.TotalStaked = total
	return s.update(p)
}

// SubStaked decreases the pool total, failing on underflow.
func (s *Service) SubStaked(p *Pool, amount uint64) error {
	if p.body.TotalStaked < amount {
		return reverts.Newf(reverts.KindArithmeticUnderflow,
			"total staked %d is less than %d", p.body.TotalStaked, amount)
	}
	p.body.TotalStaked -= amount
	return s.update(p)
}

func (s *Service) update(p *Pool) error {
	return s.state.EncodeData(s.addr, s.program, func() ([]byte, error) {
		return rlp.EncodeToBytes(p.body)
	})
}
