// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"io"
	"sort"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vechain/stakepool/thor"
)

// Stage abstracts changes on the accounts.
type Stage struct {
	stater  *Stater
	changes map[thor.Address]*Account
}

func (s *Stage) sortedAddrs() []thor.Address {
	addrs := make([]thor.Address, 0, len(s.changes))
	for addr := range s.changes {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i][:], addrs[j][:]) < 0
	})
	return addrs
}

// Len returns the number of changed accounts.
func (s *Stage) Len() int {
	return len(s.changes)
}

// Hash computes a digest over the changed accounts, in address order.
func (s *Stage) Hash() thor.Bytes32 {
	return thor.Blake2bFn(func(w io.Writer) {
		for _, addr := range s.sortedAddrs() {
			w.Write(addr[:])
			rlp.Encode(w, s.changes[addr])
		}
	})
}

// Commit writes all changes into the store in one atomic bulk.
func (s *Stage) Commit() error {
	s.stater.mu.Lock()
	defer s.stater.mu.Unlock()

	bulk := s.stater.store.Bulk()
	for _, addr := range s.sortedAddrs() {
		if err := saveAccount(bulk, addr, s.changes[addr]); err != nil {
			return &Error{err}
		}
	}
	if err := bulk.Write(); err != nil {
		return &Error{err}
	}
	for addr, acc := range s.changes {
		s.stater.cache.Add(addr, acc)
		metricAccountCounter().AddWithLabel(1, map[string]string{"type": "write", "target": "store"})
	}
	return nil
}
