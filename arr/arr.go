// Package arr implements an insertion-ordered associative container with
// PHP-style ergonomics: values addressable by key or by dot-delimited path
// (with autovivification on write), bulk fetch/remove with per-entry
// defaults, key-set filtering, predicate scans, and a flexible sort front-end
// unifying value/key sorts with and without user comparators.
package arr

import (
	"github.com/hideo55/go-popcount"
)

// Item is a single key/value entry.
type Item struct {
	Key Key
	Val interface{}
}

// Arr is an ordered mapping from Key to value. Values may themselves be
// *Arr, nested arbitrarily deep. Insertion order is preserved and
// observable; overwriting an existing key keeps its original position.
//
// An Arr is not safe for concurrent use: Set, Pull and Sort mutate it in
// place, so independent goroutines sharing one container need external
// locking around whole calls.
type Arr struct {
	slots []Item      // insertion order, may contain dead slots
	index map[Key]int // key -> slot
	live  []uint64    // bitmap, bit i set = slots[i] alive
	size  int
}

// InitArr resets an Arr in place and fills it with the given items.
// Returns the same Arr.
func InitArr(a *Arr, items ...Item) *Arr {
	*a = Arr{index: make(map[Key]int, len(items))}
	for _, item := range items {
		a.put(item.Key, item.Val)
	}
	return a
}

func New(items ...Item) *Arr {
	return InitArr(&Arr{}, items...)
}

// Len returns the number of live entries.
func (a *Arr) Len() int {
	if a == nil {
		return 0
	}
	return a.size
}

func (a *Arr) Empty() bool {
	return a.Len() == 0
}

// Has reports whether the literal key is present. No path interpretation.
func (a *Arr) Has(key interface{}) bool {
	_, ok := a.get(coerceKey(key))
	return ok
}

// get is the direct (literal key) lookup.
func (a *Arr) get(k Key) (interface{}, bool) {
	if a == nil || a.index == nil {
		return nil, false
	}
	i, ok := a.index[k]
	if !ok {
		return nil, false
	}
	return a.slots[i].Val, true
}

// Put inserts or overwrites the literal key, with no path interpretation,
// and returns the receiver for chaining. This is the only way to create a
// key that itself contains separator characters.
func (a *Arr) Put(key, val interface{}) *Arr {
	a.put(coerceKey(key), val)
	return a
}

// put inserts or overwrites the literal key.
func (a *Arr) put(k Key, val interface{}) {
	if a.index == nil {
		a.index = make(map[Key]int)
	}
	if i, ok := a.index[k]; ok {
		a.slots[i].Val = val
		return
	}
	i := len(a.slots)
	a.slots = append(a.slots, Item{Key: k, Val: val})
	a.index[k] = i
	a.mark(i)
	a.size++
}

// del removes the literal key, reporting the removed value. The slot is
// tombstoned to keep the remaining order intact; compaction runs once dead
// slots outnumber live ones.
func (a *Arr) del(k Key) (interface{}, bool) {
	if a == nil || a.index == nil {
		return nil, false
	}
	i, ok := a.index[k]
	if !ok {
		return nil, false
	}
	val := a.slots[i].Val
	a.slots[i].Val = nil
	delete(a.index, k)
	a.clear(i)
	a.size--
	if len(a.slots)-a.size > a.size {
		a.compact()
	}
	return val, true
}

func (a *Arr) mark(i int) {
	w := i >> 6
	for w >= len(a.live) {
		a.live = append(a.live, 0)
	}
	a.live[w] |= 1 << (uint(i) & 0x3F)
}

func (a *Arr) clear(i int) {
	a.live[i>>6] &^= 1 << (uint(i) & 0x3F)
}

// liveCount recounts the bitmap. Must always equal size.
func (a *Arr) liveCount() int {
	return int(popcount.CountSlice(a.live))
}

// compact rebuilds the slot slice without tombstones. All-dead words are
// skipped 64 slots at a time and all-live words copied wholesale, so the
// scan touches individual bits only in mixed words.
func (a *Arr) compact() {
	slots := make([]Item, 0, a.size)
	for w, bits := range a.live {
		if bits == 0 {
			continue
		}
		lo := w << 6
		hi := lo + 64
		if hi > len(a.slots) {
			hi = len(a.slots)
		}
		if popcount.Count(bits) == 64 {
			slots = append(slots, a.slots[lo:hi]...)
			continue
		}
		for i := lo; i < hi; i++ {
			if bits&(1<<(uint(i)&0x3F)) != 0 {
				slots = append(slots, a.slots[i])
			}
		}
	}
	a.reset(slots)
}

// reset replaces the contents with the given live items, rebuilding the
// index and bitmap. Keys in items must be unique.
func (a *Arr) reset(items []Item) {
	a.slots = items
	a.size = len(items)
	a.index = make(map[Key]int, len(items))
	a.live = make([]uint64, (len(items)+63)>>6)
	for i, item := range items {
		a.index[item.Key] = i
		a.live[i>>6] |= 1 << (uint(i) & 0x3F)
	}
}

// Iter calls a handler for every entry in insertion order.
// It returns whether all entries were iterated.
// The handler can continue the process by returning true or abort with false.
func (a *Arr) Iter(handler func(Item) bool) bool {
	if a == nil {
		return true
	}
	for w, bits := range a.live {
		if bits == 0 {
			continue
		}
		lo := w << 6
		hi := lo + 64
		if hi > len(a.slots) {
			hi = len(a.slots)
		}
		for i := lo; i < hi; i++ {
			if bits&(1<<(uint(i)&0x3F)) == 0 {
				continue
			}
			if !handler(a.slots[i]) {
				return false
			}
		}
	}
	return true
}

// Keys returns all keys in insertion order.
func (a *Arr) Keys() []Key {
	keys := make([]Key, 0, a.Len())
	a.Iter(func(item Item) bool {
		keys = append(keys, item.Key)
		return true
	})
	return keys
}

// Values returns all values in insertion order.
func (a *Arr) Values() []interface{} {
	vals := make([]interface{}, 0, a.Len())
	a.Iter(func(item Item) bool {
		vals = append(vals, item.Val)
		return true
	})
	return vals
}

// Items returns all entries in insertion order.
func (a *Arr) Items() []Item {
	items := make([]Item, 0, a.Len())
	a.Iter(func(item Item) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Clone returns a shallow copy: nested *Arr values are shared.
func (a *Arr) Clone() *Arr {
	return New(a.Items()...)
}
