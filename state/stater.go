// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"sync"

	"github.com/vechain/stakepool/cache"
	"github.com/vechain/stakepool/kv"
	"github.com/vechain/stakepool/thor"
)

const (
	accountBucket    = kv.Bucket("a")
	accountCacheSize = 4096
)

// Stater is the state creator.
// States created by the same Stater share one account cache, kept in sync on commit.
type Stater struct {
	store kv.Store
	cache *cache.LRU
	mu    sync.RWMutex // guards store writes against cache fills
}

// NewStater create a new stater.
func NewStater(db kv.Store) *Stater {
	c, _ := cache.NewLRU(accountCacheSize)
	return &Stater{
		store: accountBucket.NewStore(db),
		cache: c,
	}
}

// NewState create a new state object on top of the latest committed accounts.
func (s *Stater) NewState() *State {
	return newState(s)
}

func (s *Stater) loadAccount(addr thor.Address) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, hit, err := s.cache.GetOrLoad(addr, func(key any) (any, error) {
		return loadAccount(s.store, key.(thor.Address))
	})
	if err != nil {
		return nil, err
	}
	if hit {
		metricAccountCounter().AddWithLabel(1, map[string]string{"type": "read", "target": "cache"})
	} else {
		metricAccountCounter().AddWithLabel(1, map[string]string{"type": "read", "target": "store"})
	}
	return v.(*Account), nil
}
