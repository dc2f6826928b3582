// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package client

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/vechain/stakepool/runtime"
	"github.com/vechain/stakepool/thor"
	"github.com/vechain/stakepool/tx"
)

// Client builds, submits and reads back staking transactions.
// It does no validation of its own; the runtime is the only authority.
type Client struct {
	rt *runtime.Runtime
}

func New(rt *runtime.Runtime) *Client {
	return &Client{rt: rt}
}

// Nonce returns the next nonce of signer.
func (c *Client) Nonce(signer thor.Address) (uint64, error) {
	return c.rt.State().GetNonce(signer)
}

// Build returns an unsigned transaction carrying ins for signer, naming the
// accounts the instruction touches and the signer's current nonce.
func (c *Client) Build(signer thor.Address, ins tx.Instruction) (*tx.Transaction, error) {
	nonce, err := c.Nonce(signer)
	if err != nil {
		return nil, err
	}
	return tx.NewBuilder(c.rt.Program()).
		ChainTag(c.rt.ChainTag()).
		Instruction(ins).
		Accounts(runtime.InstructionAccounts(c.rt.Program(), signer, ins.Kind())...).
		Nonce(nonce).
		Build()
}

func (c *Client) BuildInitialize(signer thor.Address, lockPeriod uint64) (*tx.Transaction, error) {
	return c.Build(signer, tx.Initialize{LockPeriod: lockPeriod})
}

func (c *Client) BuildAdjustLockPeriod(signer thor.Address, lockPeriod uint64) (*tx.Transaction, error) {
	return c.Build(signer, tx.AdjustLockPeriod{LockPeriod: lockPeriod})
}

func (c *Client) BuildStake(signer thor.Address, amount uint64) (*tx.Transaction, error) {
	return c.Build(signer, tx.Stake{Amount: amount})
}

func (c *Client) BuildUnstake(signer thor.Address) (*tx.Transaction, error) {
	return c.Build(signer, tx.Unstake{})
}

// Send submits a signed transaction and waits for its receipt.
func (c *Client) Send(ctx context.Context, trx *tx.Transaction) (*tx.Receipt, error) {
	receipt, err := c.rt.Execute(ctx, trx)
	if err != nil {
		return nil, errors.Wrap(err, "send transaction")
	}
	return receipt, nil
}

// SignAndSend builds ins for the key's address, signs it and sends it.
func (c *Client) SignAndSend(ctx context.Context, key *ecdsa.PrivateKey, ins tx.Instruction) (*tx.Receipt, error) {
	signer := thor.Address(crypto.PubkeyToAddress(key.PublicKey))
	trx, err := c.Build(signer, ins)
	if err != nil {
		return nil, err
	}
	signed, err := tx.Sign(trx, key)
	if err != nil {
		return nil, err
	}
	return c.Send(ctx, signed)
}
