// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package cache holds the bounded in-memory caches shared by the state
// layer and the API rate limiter.
package cache

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// LRU is a fixed-size, thread-safe least-recently-used cache.
type LRU struct {
	*lru.Cache
}

// NewLRU creates an LRU holding at most size entries. size must be positive.
func NewLRU(size int) (*LRU, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "new lru cache")
	}
	return &LRU{c}, nil
}

// Loader produces the value for a missing key.
type Loader func(key any) (any, error)

// GetOrLoad returns the cached value for key, calling load on a miss and
// caching its result. hit reports whether load was skipped. Failed loads
// are not cached.
func (c *LRU) GetOrLoad(key any, load Loader) (v any, hit bool, err error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}
	if v, err = load(key); err != nil {
		return nil, false, err
	}
	c.Add(key, v)
	return v, false, nil
}
