// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlake2b(t *testing.T) {
	data := []byte("stake")
	joined := Blake2b(data, data)

	h := NewBlake2b()
	h.Write(data)
	h.Write(data)
	assert.Equal(t, BytesToBytes32(h.Sum(nil)), joined)
	assert.Equal(t, Blake2b([]byte("stakestake")), joined)
}

func TestBytes32(t *testing.T) {
	b := Blake2b([]byte("pool"))
	parsed, err := ParseBytes32(b.String())
	assert.NoError(t, err)
	assert.Equal(t, b, parsed)

	_, err = ParseBytes32("0x1234")
	assert.EqualError(t, err, "invalid length")
	assert.True(t, Bytes32{}.IsZero())
	assert.Len(t, b.AbbrevString(), 2+8+len("…")+8)
}
