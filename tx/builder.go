// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import "github.com/vechain/stakepool/thor"

// Builder to make it easy to build transaction.
type Builder struct {
	body body
	err  error
}

// NewBuilder creates a builder for transactions targeting program.
func NewBuilder(program thor.Address) *Builder {
	return &Builder{body: body{Program: program}}
}

// ChainTag set chain tag.
func (b *Builder) ChainTag(tag byte) *Builder {
	b.body.ChainTag = tag
	return b
}

// Instruction set the instruction and encode its arguments.
func (b *Builder) Instruction(ins Instruction) *Builder {
	payload, err := encodeInstruction(ins)
	if err != nil {
		b.err = err
		return b
	}
	b.body.Kind = ins.Kind()
	b.body.Payload = payload
	return b
}

// Accounts set the accounts the instruction touches.
func (b *Builder) Accounts(addrs ...thor.Address) *Builder {
	b.body.Accounts = append([]thor.Address(nil), addrs...)
	return b
}

// Nonce set nonce.
func (b *Builder) Nonce(nonce uint64) *Builder {
	b.body.Nonce = nonce
	return b
}

// Build build tx object.
func (b *Builder) Build() (*Transaction, error) {
	if b.err != nil {
		return nil, b.err
	}
	tx := Transaction{body: b.body}
	return &tx, nil
}
