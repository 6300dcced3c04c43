// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bencode

import "iter"

// Entry is one key/value pair of a [Dictionary].
type Entry struct {
	Key   ByteString
	Value Value
}

// Dictionary is an ordered mapping from byte-string keys to values. Keys are
// unique. Iteration and encoding follow insertion order.
//
// The zero value is an empty dictionary ready to use. A nil *Dictionary
// behaves as an empty, read-only dictionary.
type Dictionary struct {
	// slots holds pairs in insertion order. Replaced and deleted pairs stay
	// behind as tombstones until compact drops them.
	slots []slot
	index map[ByteString]int
	dead  int
}

type slot struct {
	Entry
	removed bool
}

// compactThreshold is the smallest tombstone count worth a compaction.
const compactThreshold = 16

func (*Dictionary) isValue() {}

// NewDictionary returns an empty dictionary with room for capacity pairs.
func NewDictionary(capacity int) *Dictionary {
	return &Dictionary{
		slots: make([]slot, 0, capacity),
		index: make(map[ByteString]int, capacity),
	}
}

// Set stores value under key. When key is already present its old pair is
// removed and the new pair is appended at the end, so the dictionary's order
// always reflects the most recent insertion of each key. Set runs in
// amortized constant time, replacements included.
func (d *Dictionary) Set(key ByteString, value Value) {
	if d.index == nil {
		d.index = make(map[ByteString]int)
	}
	if position, exists := d.index[key]; exists {
		d.bury(position)
	}
	d.index[key] = len(d.slots)
	d.slots = append(d.slots, slot{Entry: Entry{Key: key, Value: value}})
	d.compact()
}

// Get returns the value stored under key.
func (d *Dictionary) Get(key ByteString) (Value, bool) {
	if d == nil {
		return nil, false
	}
	position, exists := d.index[key]
	if !exists {
		return nil, false
	}
	return d.slots[position].Value, true
}

// Delete removes key and reports whether it was present.
func (d *Dictionary) Delete(key ByteString) bool {
	if d == nil {
		return false
	}
	position, exists := d.index[key]
	if !exists {
		return false
	}
	delete(d.index, key)
	d.bury(position)
	d.compact()
	return true
}

// Len returns the number of pairs.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.slots) - d.dead
}

// Keys returns the keys in iteration order.
func (d *Dictionary) Keys() []ByteString {
	keys := make([]ByteString, 0, d.Len())
	for key := range d.All() {
		keys = append(keys, key)
	}
	return keys
}

// Entries returns a copy of the pairs in iteration order.
func (d *Dictionary) Entries() []Entry {
	if d == nil {
		return nil
	}
	entries := make([]Entry, 0, d.Len())
	for key, value := range d.All() {
		entries = append(entries, Entry{Key: key, Value: value})
	}
	return entries
}

// All iterates over the pairs in insertion order.
func (d *Dictionary) All() iter.Seq2[ByteString, Value] {
	return func(yield func(ByteString, Value) bool) {
		if d == nil {
			return
		}
		for _, current := range d.slots {
			if current.removed {
				continue
			}
			if !yield(current.Key, current.Value) {
				return
			}
		}
	}
}

// bury turns the slot at position into a tombstone. The caller updates
// the index.
func (d *Dictionary) bury(position int) {
	d.slots[position] = slot{removed: true}
	d.dead++
}

// compact drops tombstones once they make up half of the slots, so each
// compaction is paid for by the removals that preceded it.
func (d *Dictionary) compact() {
	if d.dead < compactThreshold || d.dead*2 < len(d.slots) {
		return
	}
	live := d.slots[:0]
	for _, current := range d.slots {
		if current.removed {
			continue
		}
		d.index[current.Key] = len(live)
		live = append(live, current)
	}
	clear(d.slots[len(live):])
	d.slots = live
	d.dead = 0
}
