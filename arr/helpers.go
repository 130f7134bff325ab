package arr

import (
	"math"
	"strconv"
)

// Typed getters: Get, then a loose cast. Absence resolves to def before any
// casting; a present value that cannot be cast also falls back to def.

func (a *Arr) GetInt(key interface{}, def int) int {
	val := a.Get(key, nil)
	if val == nil {
		return def
	}
	switch {
	case rankOf(val) == rankBool:
		if val.(bool) {
			return 1
		}
		return 0
	default:
		if f, ok := toFloat(val); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(f)
		}
	}
	return def
}

func (a *Arr) GetFloat(key interface{}, def float64) float64 {
	val := a.Get(key, nil)
	if val == nil {
		return def
	}
	if f, ok := toFloat(val); ok {
		return f
	}
	return def
}

func (a *Arr) GetString(key interface{}, def string) string {
	val := a.Get(key, nil)
	switch v := val.(type) {
	case nil, *Arr:
		return def
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return ""
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	if _, ok := toFloat(val); ok {
		return stringOf(val)
	}
	return def
}

// GetBool applies PHP truthiness to the resolved value: false, zero, "",
// "0" and an empty container are false, anything else true.
func (a *Arr) GetBool(key interface{}, def bool) bool {
	val := a.Get(key, nil)
	switch v := val.(type) {
	case nil:
		return def
	case bool:
		return v
	case string:
		if f, ok := toFloat(v); ok {
			return f != 0
		}
		return v != ""
	case *Arr:
		return v.Len() > 0
	}
	if f, ok := toFloat(val); ok {
		return f != 0
	}
	return def
}

// First returns the value at insertion-order position 0, or def when the
// container is empty.
func (a *Arr) First(def interface{}) interface{} {
	if a != nil {
		for w, bits := range a.live {
			if bits == 0 {
				continue
			}
			lo := w << 6
			for i := lo; i < lo+64; i++ {
				if bits&(1<<(uint(i)&0x3F)) != 0 {
					return a.slots[i].Val
				}
			}
		}
	}
	return def
}

// Last returns the value at insertion-order position n-1, or def when the
// container is empty.
func (a *Arr) Last(def interface{}) interface{} {
	if a != nil {
		for w := len(a.live) - 1; w >= 0; w-- {
			bits := a.live[w]
			if bits == 0 {
				continue
			}
			lo := w << 6
			for i := lo + 63; i >= lo; i-- {
				if bits&(1<<(uint(i)&0x3F)) != 0 {
					return a.slots[i].Val
				}
			}
		}
	}
	return def
}

// Include returns a new container with only the entries whose key is among
// keys, in their original insertion order. The receiver is not modified.
func (a *Arr) Include(keys ...interface{}) *Arr {
	want := keySet(keys)
	picked := New()
	a.Iter(func(item Item) bool {
		if _, ok := want[item.Key]; ok {
			picked.put(item.Key, item.Val)
		}
		return true
	})
	return picked
}

// Exclude returns a new container without the entries whose key is among
// keys. The receiver is not modified.
func (a *Arr) Exclude(keys ...interface{}) *Arr {
	drop := keySet(keys)
	kept := New()
	a.Iter(func(item Item) bool {
		if _, ok := drop[item.Key]; !ok {
			kept.put(item.Key, item.Val)
		}
		return true
	})
	return kept
}

func keySet(keys []interface{}) map[Key]struct{} {
	set := make(map[Key]struct{}, len(keys))
	for _, key := range keys {
		set[coerceKey(key)] = struct{}{}
	}
	return set
}

// Test reports whether pred holds for at least one entry, scanning in
// insertion order and stopping at the first hit. The predicate always
// receives the value and its key; ignore the key when it is not needed.
func (a *Arr) Test(pred func(val interface{}, key Key) bool) bool {
	found := false
	a.Iter(func(item Item) bool {
		if pred(item.Val, item.Key) {
			found = true
			return false
		}
		return true
	})
	return found
}

// TestAll reports whether pred holds for every entry, scanning in insertion
// order and stopping at the first miss. Vacuously true for an empty
// container.
func (a *Arr) TestAll(pred func(val interface{}, key Key) bool) bool {
	return a.Iter(func(item Item) bool {
		return pred(item.Val, item.Key)
	})
}
