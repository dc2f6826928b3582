// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"github.com/pkg/errors"

	"github.com/vechain/stakepool/log"
	"github.com/vechain/stakepool/staking/pool"
	"github.com/vechain/stakepool/staking/reverts"
	"github.com/vechain/stakepool/staking/stake"
	"github.com/vechain/stakepool/state"
	"github.com/vechain/stakepool/thor"
)

var logger = log.WithContext("pkg", "staking")

func SetLogger(l log.Logger) {
	logger = l
}

// PoolAddress returns the address of the pool record of program.
func PoolAddress(program thor.Address) thor.Address {
	return pool.Address(program)
}

// StakeAddress returns the address of the stake record of owner under program.
func StakeAddress(program, owner thor.Address) thor.Address {
	return stake.Address(program, owner)
}

// Staking implements the instructions of a staking program over one state.
type Staking struct {
	addr   thor.Address
	state  *state.State
	params Params

	poolService  *pool.Service
	stakeService *stake.Service
}

// New create a new instance.
func New(addr thor.Address, st *state.State, params Params) *Staking {
	return &Staking{
		addr:   addr,
		state:  st,
		params: params,

		poolService:  pool.New(addr, st),
		stakeService: stake.New(addr, st),
	}
}

//
// Getters - no state change
//

// Address returns the program address.
func (s *Staking) Address() thor.Address {
	return s.addr
}

// GetPool returns the pool, or nil if it is not initialized.
func (s *Staking) GetPool() (*pool.Pool, error) {
	return s.poolService.Get()
}

// GetStake returns the stake of owner, or nil if owner never staked.
func (s *Staking) GetStake(owner thor.Address) (*stake.Stake, error) {
	return s.stakeService.Get(owner)
}

// Custody returns the balance held at the pool address.
func (s *Staking) Custody() (uint64, error) {
	return s.state.GetBalance(s.poolService.Address())
}

// Stakes lists every stake record in address order.
func (s *Staking) Stakes() ([]*stake.Stake, error) {
	var list []*stake.Stake
	err := s.stakeService.ForEach(func(st *stake.Stake) bool {
		list = append(list, st)
		return true
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

//
// Setters - state change
//

// Initialize creates the pool with caller as its authority.
func (s *Staking) Initialize(caller thor.Address, lockPeriod uint64) error {
	logger.Debug("initializing pool", "authority", caller, "lockPeriod", lockPeriod)

	p, err := s.poolService.Get()
	if err != nil {
		return err
	}
	if p != nil {
		return reverts.Newf(reverts.KindAlreadyInitialized, "staking pool %v already initialized", s.poolService.Address())
	}
	if lockPeriod == 0 {
		return reverts.New(reverts.KindInvalidParameter, "lock period must be greater than zero")
	}

	if _, err := s.poolService.Create(caller, lockPeriod); err != nil {
		return err
	}

	logger.Info("initialized pool", "pool", s.poolService.Address(), "authority", caller, "lockPeriod", lockPeriod)
	return nil
}

// AdjustLockPeriod replaces the lock period. It applies to existing stakes too.
func (s *Staking) AdjustLockPeriod(caller thor.Address, lockPeriod uint64) error {
	logger.Debug("adjusting lock period", "caller", caller, "lockPeriod", lockPeriod)

	p, err := s.poolService.GetExisting()
	if err != nil {
		return err
	}
	if p.Authority() != caller {
		logger.Info("adjust lock period rejected", "caller", caller, "authority", p.Authority())
		return reverts.Newf(reverts.KindUnauthorized, "caller %v is not the pool authority", caller)
	}
	if lockPeriod == 0 {
		return reverts.New(reverts.KindInvalidParameter, "lock period must be greater than zero")
	}

	old := p.LockPeriod()
	if err := s.poolService.SetLockPeriod(p, lockPeriod); err != nil {
		return err
	}

	logger.Info("adjusted lock period", "from", old, "to", lockPeriod)
	return nil
}

// Stake deposits amount from caller into the pool and restarts the lock of
// the caller's whole stake at now.
func (s *Staking) Stake(caller thor.Address, amount uint64, now uint64) error {
	logger.Debug("staking", "owner", caller, "amount", thor.FormatCoins(amount))

	if amount == 0 {
		return reverts.New(reverts.KindInvalidParameter, "stake amount must be greater than zero")
	}
	p, err := s.poolService.GetExisting()
	if err != nil {
		return err
	}
	st, err := s.stakeService.Get(caller)
	if err != nil {
		return err
	}

	var reserve uint64
	if st == nil {
		reserve = s.params.StakeAccountReserve
	}
	required, ok := addUint64(amount, reserve)
	if !ok {
		return reverts.New(reverts.KindArithmeticOverflow, "stake amount plus account reserve overflows")
	}
	balance, err := s.state.GetBalance(caller)
	if err != nil {
		return err
	}
	if balance < required {
		return reverts.Newf(reverts.KindInsufficientFunds,
			"balance %d is less than the %d required", balance, required)
	}
	if st != nil {
		if _, ok := addUint64(st.Amount(), amount); !ok {
			return reverts.Newf(reverts.KindArithmeticOverflow, "stake amount overflows adding %d", amount)
		}
	}
	if _, ok := addUint64(p.TotalStaked(), amount); !ok {
		return reverts.Newf(reverts.KindArithmeticOverflow, "total staked overflows adding %d", amount)
	}

	if st == nil {
		if err := s.transfer(caller, s.stakeService.AddressOf(caller), reserve); err != nil {
			return err
		}
		if st, err = s.stakeService.Create(caller); err != nil {
			return err
		}
		logger.Debug("created stake account", "owner", caller, "reserve", reserve)
	}
	if err := s.transfer(caller, s.poolService.Address(), amount); err != nil {
		return err
	}
	if err := s.stakeService.Deposit(st, amount, now); err != nil {
		return err
	}
	if err := s.poolService.AddStaked(p, amount); err != nil {
		return err
	}

	logger.Info("staked", "owner", caller, "amount", thor.FormatCoins(amount), "staked", thor.FormatCoins(st.Amount()))
	return nil
}

// Unstake releases the caller's whole stake once its lock has expired.
func (s *Staking) Unstake(caller thor.Address, now uint64) (uint64, error) {
	logger.Debug("unstaking", "owner", caller)

	p, err := s.poolService.GetExisting()
	if err != nil {
		return 0, err
	}
	st, err := s.stakeService.GetExisting(caller)
	if err != nil {
		return 0, err
	}
	if st.Owner() != caller {
		return 0, reverts.Newf(reverts.KindUnauthorized, "caller %v does not own the stake", caller)
	}
	if st.IsEmpty() {
		return 0, reverts.New(reverts.KindNothingStaked, "nothing staked")
	}
	if remaining := p.Remaining(st.StakeTimestamp(), now); remaining > 0 {
		logger.Info("unstake rejected, still locked", "owner", caller, "remaining", remaining)
		return 0, reverts.NewStakingPeriodNotComplete(remaining)
	}

	amount := st.Amount()
	if p.TotalStaked() < amount {
		return 0, reverts.Newf(reverts.KindArithmeticUnderflow,
			"total staked %d is less than %d", p.TotalStaked(), amount)
	}
	custody, err := s.Custody()
	if err != nil {
		return 0, err
	}
	if custody < amount {
		return 0, reverts.Newf(reverts.KindInsufficientFunds,
			"pool custody %d is less than %d", custody, amount)
	}

	if err := s.transfer(s.poolService.Address(), caller, amount); err != nil {
		return 0, err
	}
	if _, err := s.stakeService.Withdraw(st); err != nil {
		return 0, err
	}
	if err := s.poolService.SubStaked(p, amount); err != nil {
		return 0, err
	}

	logger.Info("unstaked", "owner", caller, "amount", thor.FormatCoins(amount))
	return amount, nil
}

// transfer moves currency and reports ledger failures as reverts.
func (s *Staking) transfer(from, to thor.Address, amount uint64) error {
	err := s.state.Transfer(from, to, amount)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, state.ErrInsufficientBalance):
		return reverts.Newf(reverts.KindInsufficientFunds, "%v cannot cover %d", from, amount)
	case errors.Is(err, state.ErrBalanceOverflow):
		return reverts.Newf(reverts.KindArithmeticOverflow, "balance of %v overflows receiving %d", to, amount)
	default:
		return err
	}
}
