// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import "io"

var derivedAddressMarker = []byte("ProgramDerivedAddress")

// DeriveAddress computes the address owned by program for the given seeds.
// Anyone knowing the program and the seeds can recompute it without a lookup.
// Each seed is length-prefixed so that ("ab","c") and ("a","bc") never collide.
func DeriveAddress(program Address, seeds ...[]byte) Address {
	h := Blake2bFn(func(w io.Writer) {
		for _, seed := range seeds {
			w.Write([]byte{byte(len(seed) >> 8), byte(len(seed))})
			w.Write(seed)
		}
		w.Write(program[:])
		w.Write(derivedAddressMarker)
	})
	return BytesToAddress(h[12:])
}
