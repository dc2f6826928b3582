// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/stakepool/kv"
)

func TestLevelDB(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Get([]byte("missing"))
	assert.True(t, db.IsNotFound(err))

	require.NoError(t, db.Put([]byte("k1"), []byte("v1")))
	v, err := db.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	has, err := db.Has([]byte("k1"))
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, db.Delete([]byte("k1")))
	has, err = db.Has([]byte("k1"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestLevelDBBulkIsAtomic(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	bulk := db.Bulk()
	require.NoError(t, bulk.Put([]byte("a"), []byte("1")))
	require.NoError(t, bulk.Put([]byte("b"), []byte("2")))
	assert.Equal(t, 2, bulk.Len())

	// nothing visible before write
	has, _ := db.Has([]byte("a"))
	assert.False(t, has)

	require.NoError(t, bulk.Write())
	v, err := db.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
}

func TestLevelDBBucketIterate(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	accounts := kv.Bucket("a").NewStore(db)
	other := kv.Bucket("b").NewStore(db)

	require.NoError(t, accounts.Put([]byte{1}, []byte("one")))
	require.NoError(t, accounts.Put([]byte{2}, []byte("two")))
	require.NoError(t, other.Put([]byte{3}, []byte("three")))

	iter := accounts.Iterate(kv.Range{})
	defer iter.Release()

	var keys [][]byte
	for iter.Next() {
		keys = append(keys, append([]byte(nil), iter.Key()...))
	}
	require.NoError(t, iter.Error())
	assert.Equal(t, [][]byte{{1}, {2}}, keys)

	bulk := accounts.Bulk()
	require.NoError(t, bulk.Put([]byte{4}, []byte("four")))
	require.NoError(t, bulk.Write())
	v, err := db.Get([]byte("a\x04"))
	require.NoError(t, err)
	assert.Equal(t, []byte("four"), v)
}

func TestLevelDBPersistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.db")
	db, err := New(path, Options{})
	require.NoError(t, err)
	require.NoError(t, db.Put([]byte("k"), []byte("v")))
	require.NoError(t, db.Close())

	db, err = New(path, Options{CacheSize: 32})
	require.NoError(t, err)
	defer db.Close()
	v, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestLevelDBCloseReleasesLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.db")
	db, err := New(path, Options{})
	require.NoError(t, err)

	_, err = New(path, Options{})
	assert.Error(t, err, "directory should stay locked while open")

	require.NoError(t, db.Close())
	for range 2 {
		db, err = New(path, Options{})
		require.NoError(t, err)
		require.NoError(t, db.Close())
	}
}
