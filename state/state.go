// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/vechain/stakepool/kv"
	"github.com/vechain/stakepool/stackedmap"
	"github.com/vechain/stakepool/thor"
)

var (
	// ErrInsufficientBalance is returned when a debit exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrBalanceOverflow is returned when a credit overflows the balance.
	ErrBalanceOverflow = errors.New("balance overflow")
)

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// State manages the ledger accounts.
type State struct {
	stater *Stater
	sm     *stackedmap.StackedMap[thor.Address, *Account] // keeps revisions of accounts
}

func newState(stater *Stater) *State {
	s := &State{stater: stater}
	s.sm = stackedmap.New(func(addr thor.Address) (*Account, bool, error) {
		a, err := stater.loadAccount(addr)
		if err != nil {
			return nil, false, err
		}
		return a, true, nil
	})
	return s
}

// getAccount gets account by address. the returned account should not be modified.
func (s *State) getAccount(addr thor.Address) (*Account, error) {
	acc, _, err := s.sm.Get(addr)
	if err != nil {
		return nil, &Error{err}
	}
	return acc, nil
}

// getAccountCopy get a copy of account by address.
func (s *State) getAccountCopy(addr thor.Address) (Account, error) {
	acc, err := s.getAccount(addr)
	if err != nil {
		return Account{}, err
	}
	return *acc, nil
}

func (s *State) updateAccount(addr thor.Address, acc *Account) {
	s.sm.Put(addr, acc)
}

// GetAccount returns a copy of the account at the given address.
// A missing account is returned as an empty one.
func (s *State) GetAccount(addr thor.Address) (*Account, error) {
	cpy, err := s.getAccountCopy(addr)
	if err != nil {
		return nil, err
	}
	cpy.Data = bytes.Clone(cpy.Data)
	return &cpy, nil
}

// Exists returns whether a non-empty account exists at the given address.
func (s *State) Exists(addr thor.Address) (bool, error) {
	acc, err := s.getAccount(addr)
	if err != nil {
		return false, err
	}
	return !acc.IsEmpty(), nil
}

// GetBalance returns balance for the given address.
func (s *State) GetBalance(addr thor.Address) (uint64, error) {
	acc, err := s.getAccount(addr)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// SetBalance set balance for the given address.
func (s *State) SetBalance(addr thor.Address, balance uint64) error {
	cpy, err := s.getAccountCopy(addr)
	if err != nil {
		return err
	}
	cpy.Balance = balance
	s.updateAccount(addr, &cpy)
	return nil
}

// Transfer moves amount from one balance to another.
// Nothing is written unless both sides can be updated.
func (s *State) Transfer(from, to thor.Address, amount uint64) error {
	if amount == 0 || from == to {
		return nil
	}
	fromBal, err := s.GetBalance(from)
	if err != nil {
		return err
	}
	if fromBal < amount {
		return ErrInsufficientBalance
	}
	toBal, err := s.GetBalance(to)
	if err != nil {
		return err
	}
	if toBal > math.MaxUint64-amount {
		return ErrBalanceOverflow
	}
	if err := s.SetBalance(from, fromBal-amount); err != nil {
		return err
	}
	return s.SetBalance(to, toBal+amount)
}

// GetNonce returns the transaction nonce of the given address.
func (s *State) GetNonce(addr thor.Address) (uint64, error) {
	acc, err := s.getAccount(addr)
	if err != nil {
		return 0, err
	}
	return acc.Nonce, nil
}

// SetNonce sets the transaction nonce of the given address.
func (s *State) SetNonce(addr thor.Address, nonce uint64) error {
	cpy, err := s.getAccountCopy(addr)
	if err != nil {
		return err
	}
	cpy.Nonce = nonce
	s.updateAccount(addr, &cpy)
	return nil
}

// GetProgram returns the program owning the data of the given address.
func (s *State) GetProgram(addr thor.Address) (thor.Address, error) {
	acc, err := s.getAccount(addr)
	if err != nil {
		return thor.Address{}, err
	}
	return acc.Program, nil
}

// EncodeData sets the account data encoded by enc and assigns it to program.
// Error returned by enc will be absorbed by State instance.
func (s *State) EncodeData(addr, program thor.Address, enc func() ([]byte, error)) error {
	data, err := enc()
	if err != nil {
		return &Error{err}
	}
	cpy, err := s.getAccountCopy(addr)
	if err != nil {
		return err
	}
	if !cpy.Program.IsZero() && cpy.Program != program {
		return &Error{errors.Errorf("account %v is owned by program %v", addr, cpy.Program)}
	}
	cpy.Program = program
	cpy.Data = data
	s.updateAccount(addr, &cpy)
	return nil
}

// DecodeData gets and decodes the account data.
// dec is not called for accounts without data.
// Error returned by dec will be absorbed by State instance.
func (s *State) DecodeData(addr thor.Address, dec func([]byte) error) (bool, error) {
	acc, err := s.getAccount(addr)
	if err != nil {
		return false, err
	}
	if len(acc.Data) == 0 {
		return false, nil
	}
	if err := dec(acc.Data); err != nil {
		return true, &Error{err}
	}
	return true, nil
}

// ForEachOwnedBy calls fn for every non-empty account whose data belongs to program,
// in address order, including uncommitted changes. Iteration stops when fn returns false.
func (s *State) ForEachOwnedBy(program thor.Address, fn func(addr thor.Address, acc *Account) bool) error {
	dirty := make(map[thor.Address]*Account)
	s.sm.Journal(func(addr thor.Address, acc *Account) bool {
		dirty[addr] = acc
		return true
	})

	matched := make(map[thor.Address]*Account)
	for addr, acc := range dirty {
		if acc.Program == program && !acc.IsEmpty() {
			matched[addr] = acc
		}
	}

	iter := s.stater.store.Iterate(kv.Range{})
	defer iter.Release()
	for iter.Next() {
		addr := thor.BytesToAddress(iter.Key())
		if _, ok := dirty[addr]; ok {
			continue
		}
		acc, err := s.stater.loadAccount(addr)
		if err != nil {
			return &Error{err}
		}
		if acc.Program == program {
			matched[addr] = acc
		}
	}
	if err := iter.Error(); err != nil {
		return &Error{err}
	}

	addrs := make([]thor.Address, 0, len(matched))
	for addr := range matched {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i][:], addrs[j][:]) < 0
	})
	for _, addr := range addrs {
		acc := *matched[addr]
		if !fn(addr, &acc) {
			break
		}
	}
	return nil
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo revert to checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	s.sm.PopTo(revision)
}

// Stage makes a stage object to commit all changes.
func (s *State) Stage() *Stage {
	changes := make(map[thor.Address]*Account)
	s.sm.Journal(func(addr thor.Address, acc *Account) bool {
		changes[addr] = acc
		return true
	})
	return &Stage{stater: s.stater, changes: changes}
}
