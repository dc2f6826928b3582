// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/vechain/stakepool/thor"
)

var (
	ErrUnsigned          = errors.New("transaction is not signed")
	errInvalidSignLength = errors.New("invalid signature length")
)

// Transaction is an immutable tx type.
// It carries exactly one instruction for one program.
type Transaction struct {
	body body

	cache struct {
		signingHash atomic.Value
		origin      atomic.Value
		id          atomic.Value
	}
}

// body describes details of a tx.
type body struct {
	ChainTag  byte
	Program   thor.Address
	Kind      Kind
	Payload   []byte
	Accounts  []thor.Address
	Nonce     uint64
	Signature []byte
}

// ChainTag returns the chain tag the tx is bound to.
func (t *Transaction) ChainTag() byte {
	return t.body.ChainTag
}

// Program returns the address of the program the instruction targets.
func (t *Transaction) Program() thor.Address {
	return t.body.Program
}

// Kind returns the instruction kind.
func (t *Transaction) Kind() Kind {
	return t.body.Kind
}

// Instruction decodes the instruction payload.
func (t *Transaction) Instruction() (Instruction, error) {
	return DecodeInstruction(t.body.Kind, t.body.Payload)
}

// Accounts returns the accounts the instruction touches, besides the signer.
func (t *Transaction) Accounts() []thor.Address {
	return append([]thor.Address(nil), t.body.Accounts...)
}

// Nonce returns the signer nonce the tx consumes.
func (t *Transaction) Nonce() uint64 {
	return t.body.Nonce
}

// Signature returns signature.
func (t *Transaction) Signature() []byte {
	return append([]byte(nil), t.body.Signature...)
}

// SigningHash returns hash of tx excludes signature.
func (t *Transaction) SigningHash() (hash thor.Bytes32) {
	if cached := t.cache.signingHash.Load(); cached != nil {
		return cached.(thor.Bytes32)
	}
	defer func() { t.cache.signingHash.Store(hash) }()

	return thor.Blake2bFn(func(w io.Writer) {
		rlp.Encode(w, []any{
			t.body.ChainTag,
			t.body.Program,
			t.body.Kind,
			t.body.Payload,
			t.body.Accounts,
			t.body.Nonce,
		})
	})
}

// Origin returns the address that signed the tx.
func (t *Transaction) Origin() (origin thor.Address, err error) {
	if cached := t.cache.origin.Load(); cached != nil {
		return cached.(thor.Address), nil
	}
	defer func() {
		if err == nil {
			t.cache.origin.Store(origin)
		}
	}()

	if len(t.body.Signature) == 0 {
		return thor.Address{}, ErrUnsigned
	}
	if len(t.body.Signature) != crypto.SignatureLength {
		return thor.Address{}, errInvalidSignLength
	}
	pub, err := crypto.SigToPub(t.SigningHash().Bytes(), t.body.Signature)
	if err != nil {
		return thor.Address{}, err
	}
	origin = thor.Address(crypto.PubkeyToAddress(*pub))
	return
}

// ID returns id of tx.
// ID = hash(signingHash, origin).
// It returns zero Bytes32 if origin not available.
func (t *Transaction) ID() (id thor.Bytes32) {
	if cached := t.cache.id.Load(); cached != nil {
		return cached.(thor.Bytes32)
	}
	defer func() { t.cache.id.Store(id) }()

	origin, err := t.Origin()
	if err != nil {
		return
	}
	return thor.Blake2b(t.SigningHash().Bytes(), origin.Bytes())
}

// WithSignature create a new tx with signature set.
func (t *Transaction) WithSignature(sig []byte) *Transaction {
	newTx := Transaction{
		body: t.body,
	}
	// copy sig
	newTx.body.Signature = append([]byte(nil), sig...)
	return &newTx
}

// EncodeRLP implements rlp.Encoder
func (t *Transaction) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &t.body)
}

// DecodeRLP implements rlp.Decoder
func (t *Transaction) DecodeRLP(s *rlp.Stream) error {
	var body body
	if err := s.Decode(&body); err != nil {
		return err
	}
	*t = Transaction{
		body: body,
	}
	return nil
}

// MarshalBinary encodes the tx for transport.
func (t *Transaction) MarshalBinary() ([]byte, error) {
	return rlp.EncodeToBytes(t)
}

// UnmarshalBinary decodes a tx received from transport.
func (t *Transaction) UnmarshalBinary(data []byte) error {
	return rlp.DecodeBytes(data, t)
}

func (t *Transaction) String() string {
	origin, err := t.Origin()
	originStr := "N/A"
	if err == nil {
		originStr = origin.String()
	}
	return fmt.Sprintf(`
	Tx(%v)
	Origin:     %v
	Program:    %v
	Kind:       %v
	Accounts:   %v
	Nonce:      %v
	ChainTag:   %v
	Signature:  0x%x
`, t.ID(), originStr, t.body.Program, t.body.Kind, t.body.Accounts, t.body.Nonce, t.body.ChainTag, t.body.Signature)
}
