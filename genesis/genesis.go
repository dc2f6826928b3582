// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"github.com/pkg/errors"

	"github.com/vechain/stakepool/state"
	"github.com/vechain/stakepool/thor"
)

// Genesis to build genesis state.
type Genesis struct {
	builder *Builder
	id      thor.Bytes32
	name    string
}

func newGenesis(name string, builder *Builder) (*Genesis, error) {
	id, err := builder.ComputeID()
	if err != nil {
		return nil, errors.Wrap(err, "compute genesis id")
	}
	return &Genesis{builder, id, name}, nil
}

// Build build the genesis state into the stater and returns its meta.
func (g *Genesis) Build(stater *state.Stater) (*Meta, error) {
	id, err := g.builder.Build(stater)
	if err != nil {
		return nil, err
	}
	if id != g.id {
		return nil, errors.New("genesis id mismatch")
	}
	return g.Meta(), nil
}

// ID returns genesis ID.
func (g *Genesis) ID() thor.Bytes32 {
	return g.id
}

// Name returns network name.
func (g *Genesis) Name() string {
	return g.name
}

// Meta returns the chain meta this genesis produces.
func (g *Genesis) Meta() *Meta {
	return &Meta{
		Name:       g.name,
		ID:         g.id,
		LaunchTime: g.builder.timestamp,
		Program:    g.builder.program,
		Params:     g.builder.params,
	}
}

// DefaultProgram is the staking program address used by built-in networks.
var DefaultProgram = thor.DeriveAddress(thor.Address{}, []byte("stakepool"))

func allocate(accounts []Account) func(*state.State) error {
	return func(st *state.State) error {
		for _, a := range accounts {
			if a.Balance == 0 {
				return errors.Errorf("%v: balance must be a non-zero integer", a.Address)
			}
			bal, err := st.GetBalance(a.Address)
			if err != nil {
				return err
			}
			if bal+a.Balance < bal {
				return errors.Errorf("%v: balance overflow", a.Address)
			}
			if err := st.SetBalance(a.Address, bal+a.Balance); err != nil {
				return err
			}
		}
		return nil
	}
}
