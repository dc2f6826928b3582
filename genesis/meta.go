// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/vechain/stakepool/kv"
	"github.com/vechain/stakepool/staking"
	"github.com/vechain/stakepool/thor"
)

const metaBucket = kv.Bucket("m")

var metaKey = []byte("genesis")

// ErrNotInitialized is returned when the store has no genesis.
var ErrNotInitialized = errors.New("data directory not initialized")

// Meta describes the chain a store was initialized with.
type Meta struct {
	Name       string
	ID         thor.Bytes32
	LaunchTime uint64
	Program    thor.Address
	Params     staking.Params
}

// ChainTag returns the last byte of the genesis ID.
func (m *Meta) ChainTag() byte {
	return m.ID[31]
}

// WriteMeta saves the meta into the store.
func WriteMeta(w kv.Putter, m *Meta) error {
	data, err := rlp.EncodeToBytes(m)
	if err != nil {
		return err
	}
	return metaBucket.NewPutter(w).Put(metaKey, data)
}

// ReadMeta loads the meta from the store.
func ReadMeta(r kv.Getter) (*Meta, error) {
	data, err := metaBucket.NewGetter(r).Get(metaKey)
	if err != nil {
		if r.IsNotFound(err) {
			return nil, ErrNotInitialized
		}
		return nil, err
	}
	var m Meta
	if err := rlp.DecodeBytes(data, &m); err != nil {
		return nil, errors.Wrap(err, "decode genesis meta")
	}
	return &m, nil
}
