// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"io"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/vechain/stakepool/lvldb"
	"github.com/vechain/stakepool/runtime"
	"github.com/vechain/stakepool/staking"
	"github.com/vechain/stakepool/state"
	"github.com/vechain/stakepool/thor"
)

// Builder helper to build genesis state.
type Builder struct {
	timestamp uint64
	program   thor.Address
	params    staking.Params

	stateProcs []func(state *state.State) error
}

// Timestamp set launch time.
func (b *Builder) Timestamp(t uint64) *Builder {
	b.timestamp = t
	return b
}

// Program set the staking program address.
func (b *Builder) Program(addr thor.Address) *Builder {
	b.program = addr
	return b
}

// Params set the staking program params.
func (b *Builder) Params(params staking.Params) *Builder {
	b.params = params
	return b
}

// State add a state process
func (b *Builder) State(proc func(state *state.State) error) *Builder {
	b.stateProcs = append(b.stateProcs, proc)
	return b
}

// ComputeID compute genesis ID.
func (b *Builder) ComputeID() (thor.Bytes32, error) {
	db, err := lvldb.NewMem()
	if err != nil {
		return thor.Bytes32{}, err
	}
	defer db.Close()

	return b.Build(state.NewStater(db))
}

// Build applies the genesis state and returns the genesis ID.
func (b *Builder) Build(stater *state.Stater) (id thor.Bytes32, err error) {
	st := stater.NewState()

	if err := runtime.InitClock(st, b.timestamp); err != nil {
		return thor.Bytes32{}, errors.Wrap(err, "init clock")
	}
	for _, proc := range b.stateProcs {
		if err := proc(st); err != nil {
			return thor.Bytes32{}, errors.Wrap(err, "state process")
		}
	}

	stage := st.Stage()
	stateHash := stage.Hash()
	if err := stage.Commit(); err != nil {
		return thor.Bytes32{}, errors.Wrap(err, "commit state")
	}

	return thor.Blake2bFn(func(w io.Writer) {
		rlp.Encode(w, []any{stateHash, b.timestamp, b.program, b.params.StakeAccountReserve})
	}), nil
}
