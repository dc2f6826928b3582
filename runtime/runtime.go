// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/vechain/stakepool/log"
	"github.com/vechain/stakepool/staking"
	"github.com/vechain/stakepool/staking/reverts"
	"github.com/vechain/stakepool/state"
	"github.com/vechain/stakepool/thor"
	"github.com/vechain/stakepool/tx"
)

var logger = log.WithContext("pkg", "runtime")

// ErrBadNonce is returned for transactions whose nonce is not the signer's next one.
var ErrBadNonce = errors.New("bad nonce")

// Runtime is to support transaction execution.
// Transactions are executed one at a time, each against the latest committed state.
type Runtime struct {
	stater   *state.Stater
	program  thor.Address
	chainTag byte
	params   staking.Params
	clock    Clock

	sem chan struct{}
}

// New create a Runtime object.
func New(
	stater *state.Stater,
	program thor.Address,
	chainTag byte,
	params staking.Params,
	clock Clock,
) *Runtime {
	return &Runtime{
		stater:   stater,
		program:  program,
		chainTag: chainTag,
		params:   params,
		clock:    clock,
		sem:      make(chan struct{}, 1),
	}
}

func (rt *Runtime) Program() thor.Address  { return rt.program }
func (rt *Runtime) ChainTag() byte         { return rt.chainTag }
func (rt *Runtime) Params() staking.Params { return rt.params }

func (rt *Runtime) lock(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case rt.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (rt *Runtime) unlock() { <-rt.sem }

// State returns a fresh view of the committed state.
func (rt *Runtime) State() *state.State {
	return rt.stater.NewState()
}

// Staking returns the staking program bound to a fresh view of the committed state.
func (rt *Runtime) Staking() *staking.Staking {
	return staking.New(rt.program, rt.stater.NewState(), rt.params)
}

// Now returns the time the next transaction would observe.
func (rt *Runtime) Now() (uint64, error) {
	return rt.now(rt.stater.NewState())
}

func (rt *Runtime) now(st *state.State) (uint64, error) {
	last, err := LastTime(st)
	if err != nil {
		return 0, err
	}
	return max(rt.clock.Now(), last), nil
}

// View calls fn with one view of the committed state and the time the next
// transaction would observe. No transaction commits while fn runs.
func (rt *Runtime) View(ctx context.Context, fn func(st *state.State, now uint64) error) error {
	if err := rt.lock(ctx); err != nil {
		return err
	}
	defer rt.unlock()

	st := rt.stater.NewState()
	now, err := rt.now(st)
	if err != nil {
		return err
	}
	return fn(st, now)
}

// Execute executes a transaction.
// A rejected transaction returns an error and leaves no trace.
// An executed one always returns a receipt; a failed instruction is reported
// via receipt.Reverted, its writes are discarded but the signer nonce is consumed.
func (rt *Runtime) Execute(ctx context.Context, trx *tx.Transaction) (*tx.Receipt, error) {
	if err := rt.lock(ctx); err != nil {
		return nil, err
	}
	defer rt.unlock()

	start := time.Now()
	receipt, err := rt.execute(trx)
	result := "success"
	switch {
	case err != nil:
		result = "rejected"
		logger.Debug("transaction rejected", "kind", trx.Kind(), "error", err)
	case receipt.Reverted:
		result = "reverted"
	}
	metricInstructionCount().AddWithLabel(1, map[string]string{"kind": trx.Kind().String(), "result": result})
	metricExecutionDuration().Observe(time.Since(start).Microseconds())
	return receipt, err
}

func (rt *Runtime) execute(trx *tx.Transaction) (*tx.Receipt, error) {
	resolved, err := ResolveTransaction(trx, rt.chainTag, rt.program)
	if err != nil {
		return nil, err
	}

	st := rt.stater.NewState()
	nonce, err := st.GetNonce(resolved.Origin)
	if err != nil {
		return nil, err
	}
	if trx.Nonce() != nonce {
		return nil, errors.Wrapf(ErrBadNonce, "want %d, got %d", nonce, trx.Nonce())
	}
	if nonce == math.MaxUint64 {
		return nil, errors.Wrap(ErrBadNonce, "nonce exhausted")
	}

	now, err := tick(st, rt.clock)
	if err != nil {
		return nil, err
	}
	if err := st.SetNonce(resolved.Origin, nonce+1); err != nil {
		return nil, err
	}

	receipt := &tx.Receipt{
		TxID:      trx.ID(),
		Signer:    resolved.Origin,
		Kind:      trx.Kind(),
		Nonce:     nonce,
		Timestamp: now,
	}

	// checkpoint to be reverted when the instruction fails.
	checkpoint := st.NewCheckpoint()
	program := staking.New(rt.program, st, rt.params)

	released, err := rt.dispatch(program, resolved, now)
	if err != nil {
		if !reverts.IsRevertErr(err) {
			return nil, err
		}
		st.RevertTo(checkpoint)
		receipt.Reverted = true
		receipt.RevertKind = reverts.KindOf(err)
		receipt.RevertReason = err.Error()
		var revert *reverts.ErrRevert
		if errors.As(err, &revert) {
			receipt.Remaining = revert.Remaining()
		}
		logger.Debug("instruction reverted", "kind", trx.Kind(), "signer", resolved.Origin, "reason", err)
	}
	receipt.Released = released

	if err := st.Stage().Commit(); err != nil {
		return nil, err
	}

	if !receipt.Reverted {
		if p, err := program.GetPool(); err == nil && p != nil {
			metricTotalStaked().Set(int64(min(p.TotalStaked(), math.MaxInt64)))
		}
	}
	return receipt, nil
}

func (rt *Runtime) dispatch(program *staking.Staking, resolved *ResolvedTransaction, now uint64) (uint64, error) {
	switch ins := resolved.Instruction.(type) {
	case tx.Initialize:
		return 0, program.Initialize(resolved.Origin, ins.LockPeriod)
	case tx.AdjustLockPeriod:
		return 0, program.AdjustLockPeriod(resolved.Origin, ins.LockPeriod)
	case tx.Stake:
		return 0, program.Stake(resolved.Origin, ins.Amount, now)
	case tx.Unstake:
		return program.Unstake(resolved.Origin, now)
	default:
		return 0, errors.Errorf("unsupported instruction %v", resolved.Instruction.Kind())
	}
}
