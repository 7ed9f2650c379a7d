// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optseq

import (
	"fmt"
	"strings"
)

// HashMap is an associative container backed by two parallel Seqs, with
// keys[i] paired to values[i]. Keys are pairwise distinct and the two
// Seqs always have equal length; Insert and Delete maintain both
// invariants.
//
// Despite the name, lookup is a linear scan over keys, not a bucketed
// hash: every operation is O(n) in the map size. The trade is
// implementation simplicity for small maps. Keys of never-updated
// entries keep their insertion order, which is what String and Iter
// expose.
type HashMap[K comparable, V any] struct {
	keys   Seq[K]
	values Seq[V]
}

// Entry is one key-value pair of a HashMap, as yielded by Iter.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// NewHashMap creates an empty map.
func NewHashMap[K comparable, V any]() *HashMap[K, V] {
	return &HashMap[K, V]{}
}

// Len returns the number of entries.
func (m *HashMap[K, V]) Len() int {
	return len(m.keys)
}

// Insert associates k with v. An existing key is updated in place; a
// new key is appended to both parallel Seqs, so no duplicate key is
// ever created.
func (m *HashMap[K, V]) Insert(k K, v V) {
	if i := IndexOf(m.keys, k); i >= 0 {
		m.values[i] = v
		return
	}
	m.keys.Push(k)
	m.values.Push(v)
}

// Get returns the value associated with k, or None when k is absent.
func (m *HashMap[K, V]) Get(k K) Option[V] {
	if i := IndexOf(m.keys, k); i >= 0 {
		return Some(m.values[i])
	}
	return None[V]()
}

// Has reports whether k is present.
func (m *HashMap[K, V]) Has(k K) bool {
	return IndexOf(m.keys, k) >= 0
}

// Delete removes k and its value, in lockstep from both parallel Seqs.
// A missing key is a silent no-op.
func (m *HashMap[K, V]) Delete(k K) {
	i := IndexOf(m.keys, k)
	if i < 0 {
		return
	}
	m.keys = Remove(m.keys, i)
	m.values = Remove(m.values, i)
}

// Keys returns a fresh copy of the key Seq, in current key order.
func (m *HashMap[K, V]) Keys() Seq[K] {
	return m.keys.Clone()
}

// Values returns a fresh copy of the value Seq, paired index-for-index
// with Keys.
func (m *HashMap[K, V]) Values() Seq[V] {
	return m.values.Clone()
}

// Iter returns an iterator over the entries in current key order.
// The iterator works on a snapshot; later map mutations are not
// observed.
func (m *HashMap[K, V]) Iter() *Iter[Entry[K, V]] {
	keys := m.keys.Clone()
	values := m.values.Clone()
	pos := 0
	return &Iter[Entry[K, V]]{pull: func() Option[Entry[K, V]] {
		if pos >= len(keys) {
			return None[Entry[K, V]]()
		}
		e := Entry[K, V]{Key: keys[pos], Value: values[pos]}
		pos++
		return Some(e)
	}}
}

// String renders the map as {k1 => v1, k2 => v2} in current key order,
// or "empty map" when there are no entries.
func (m *HashMap[K, V]) String() string {
	if len(m.keys) == 0 {
		return "empty map"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v => %v", k, m.values[i])
	}
	sb.WriteByte('}')
	return sb.String()
}
