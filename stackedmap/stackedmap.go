// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package stackedmap provides a map with nested checkpoints that can be
// rolled back, layered over a read-only source.
package stackedmap

// Source loads a key missing from the map.
type Source[K comparable, V any] func(key K) (value V, exist bool, err error)

// StackedMap is a write overlay over a Source. Writes go to the top level
// of a stack; popping a level undoes the writes made in it.
type StackedMap[K comparable, V any] struct {
	src    Source[K, V]
	dirty  map[K]V
	levels [][]write[K, V]
}

// write is a Put, with what it overwrote so it can be undone.
type write[K comparable, V any] struct {
	key     K
	value   V
	prev    V
	hadPrev bool
}

// New creates a StackedMap of depth 1 over src.
func New[K comparable, V any](src Source[K, V]) *StackedMap[K, V] {
	sm := &StackedMap[K, V]{
		src:   src,
		dirty: make(map[K]V),
	}
	sm.Push()
	return sm
}

// Depth returns the number of levels.
func (sm *StackedMap[K, V]) Depth() int {
	return len(sm.levels)
}

// Push opens a level and returns the depth before it, to be passed to PopTo.
func (sm *StackedMap[K, V]) Push() int {
	sm.levels = append(sm.levels, nil)
	return len(sm.levels) - 1
}

// Pop drops the top level, undoing its writes newest first.
func (sm *StackedMap[K, V]) Pop() {
	top := sm.levels[len(sm.levels)-1]
	for i := len(top) - 1; i >= 0; i-- {
		w := top[i]
		if w.hadPrev {
			sm.dirty[w.key] = w.prev
		} else {
			delete(sm.dirty, w.key)
		}
	}
	sm.levels = sm.levels[:len(sm.levels)-1]
}

// PopTo pops levels until Depth is depth.
func (sm *StackedMap[K, V]) PopTo(depth int) {
	for len(sm.levels) > depth {
		sm.Pop()
	}
}

// Get returns the latest write of key, falling back to the source.
func (sm *StackedMap[K, V]) Get(key K) (V, bool, error) {
	if v, ok := sm.dirty[key]; ok {
		return v, true, nil
	}
	return sm.src(key)
}

// Put writes key at the top level. It panics if every level was popped.
func (sm *StackedMap[K, V]) Put(key K, value V) {
	prev, hadPrev := sm.dirty[key]
	top := len(sm.levels) - 1
	sm.levels[top] = append(sm.levels[top], write[K, V]{key, value, prev, hadPrev})
	sm.dirty[key] = value
}

// Journal replays every live Put, oldest first, until cb returns false.
func (sm *StackedMap[K, V]) Journal(cb func(key K, value V) bool) {
	for _, lvl := range sm.levels {
		for _, w := range lvl {
			if !cb(w.key, w.value) {
				return
			}
		}
	}
}
