// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// Sign returns a copy of t carrying the owner's secp256k1 signature over
// its signing hash. The recovered origin of the result is the key's address.
func Sign(t *Transaction, key *ecdsa.PrivateKey) (*Transaction, error) {
	sig, err := crypto.Sign(t.SigningHash().Bytes(), key)
	if err != nil {
		return nil, errors.Wrap(err, "sign transaction")
	}
	return t.WithSignature(sig), nil
}

// MustSign is like Sign but panics on error. Used by tests and dev tooling.
func MustSign(t *Transaction, key *ecdsa.PrivateKey) *Transaction {
	signed, err := Sign(t, key)
	if err != nil {
		panic(err)
	}
	return signed
}
