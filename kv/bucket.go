// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

import (
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Bucket namespaces keys of a shared store by prefixing them.
type Bucket string

func (b Bucket) key(k []byte) []byte {
	return append([]byte(b), k...)
}

// NewGetter reads src within the bucket.
func (b Bucket) NewGetter(src Getter) Getter { return bucketGetter{b, src} }

// NewPutter writes src within the bucket.
func (b Bucket) NewPutter(src Putter) Putter { return bucketPutter{b, src} }

// NewStore scopes every operation of src, including bulks and iteration,
// to the bucket.
func (b Bucket) NewStore(src Store) Store {
	return &bucketStore{bucketGetter{b, src}, bucketPutter{b, src}, src}
}

type bucketGetter struct {
	b   Bucket
	src Getter
}

func (g bucketGetter) Get(key []byte) ([]byte, error) { return g.src.Get(g.b.key(key)) }
func (g bucketGetter) Has(key []byte) (bool, error)   { return g.src.Has(g.b.key(key)) }
func (g bucketGetter) IsNotFound(err error) bool      { return g.src.IsNotFound(err) }

type bucketPutter struct {
	b   Bucket
	src Putter
}

func (p bucketPutter) Put(key, val []byte) error { return p.src.Put(p.b.key(key), val) }
func (p bucketPutter) Delete(key []byte) error   { return p.src.Delete(p.b.key(key)) }

type bucketBulk struct {
	bucketPutter
	src Bulk
}

func (k bucketBulk) Len() int     { return k.src.Len() }
func (k bucketBulk) Write() error { return k.src.Write() }

type bucketStore struct {
	bucketGetter
	bucketPutter
	src Store
}

func (s *bucketStore) Bulk() Bulk {
	bulk := s.src.Bulk()
	return bucketBulk{bucketPutter{s.bucketGetter.b, bulk}, bulk}
}

// Iterate walks r, given relative to the bucket. An empty limit runs to the
// end of the bucket.
func (s *bucketStore) Iterate(r Range) Iterator {
	b := s.bucketGetter.b
	abs := Range{Start: b.key(r.Start), Limit: b.key(r.Limit)}
	if len(r.Limit) == 0 {
		abs.Limit = util.BytesPrefix([]byte(b)).Limit
	}
	return bucketIterator{s.src.Iterate(abs), len(b)}
}

type bucketIterator struct {
	Iterator
	prefixLen int
}

func (it bucketIterator) Key() []byte { return it.Iterator.Key()[it.prefixLen:] }
