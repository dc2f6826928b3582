// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

// AddressLength length of address in bytes.
const AddressLength = common.AddressLength

// Address identifies an account in the ledger.
type Address common.Address

// String implements the stringer interface
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Base58 returns the base58 text form of the address.
func (a Address) Base58() string {
	return base58.Encode(a[:])
}

// Bytes returns byte slice form of address.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero returns if address is all zero bytes.
func (a Address) IsZero() bool {
	return a == Address{}
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAddress converts a string presented address into Address type.
// Both the 0x-prefixed hex form and the base58 form are accepted.
func ParseAddress(s string) (Address, error) {
	var addr Address
	switch {
	case len(s) == AddressLength*2+2:
		if strings.ToLower(s[:2]) != "0x" {
			return Address{}, errors.New("invalid prefix")
		}
		s = s[2:]
		fallthrough
	case len(s) == AddressLength*2:
		if _, err := hex.Decode(addr[:], []byte(s)); err != nil {
			return Address{}, err
		}
		return addr, nil
	default:
		b, err := base58.Decode(s)
		if err != nil {
			return Address{}, errors.New("invalid address")
		}
		if len(b) != AddressLength {
			return Address{}, errors.New("invalid length")
		}
		copy(addr[:], b)
		return addr, nil
	}
}

// MustParseAddress converts string presented address into Address type, panic on error.
func MustParseAddress(s string) Address {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// BytesToAddress converts bytes slice into address.
// If b is larger than address length, b will be cropped (from the left).
// If b is smaller than address length, b will be extended (from the left).
func BytesToAddress(b []byte) Address {
	return Address(common.BytesToAddress(b))
}
