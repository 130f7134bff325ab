package arr

import "strings"

// Sep is the path separator in dotted key specifications.
const Sep = "."

// A key spec is interpreted by every accessor with the same two-step rule:
// an existing literal key always wins, even one containing dots; only then
// is the spec split on Sep and walked as a path, one segment per nesting
// level. A single-segment split degrades to plain direct-key semantics.

// splitPath splits a key's string form into path segments. Pure; called
// only after a direct lookup missed, so a literal dotted key never gets
// here. Empty segments (from leading/trailing/doubled separators) are kept:
// they are ordinary keys that simply fail lookup.
func splitPath(k Key) []Key {
	s := k.String()
	if !strings.Contains(s, Sep) {
		return []Key{k}
	}
	parts := strings.Split(s, Sep)
	segs := make([]Key, len(parts))
	for i, p := range parts {
		segs[i] = StrKey(p)
	}
	return segs
}

// Get returns the value at a key or dotted path, or def when it does not
// resolve or resolves to nil. Absence is never an error: a missing segment,
// a non-container intermediate value, or an empty path all yield def.
// Get does not mutate the container.
func (a *Arr) Get(key, def interface{}) interface{} {
	k := coerceKey(key)
	if val, ok := a.get(k); ok {
		return valueOr(val, def)
	}
	segs := splitPath(k)
	if len(segs) == 1 {
		return def
	}
	cur := a
	for _, seg := range segs[:len(segs)-1] {
		val, ok := cur.get(seg)
		if !ok {
			return def
		}
		sub, ok := val.(*Arr)
		if !ok {
			return def
		}
		cur = sub
	}
	val, ok := cur.get(segs[len(segs)-1])
	if !ok {
		return def
	}
	return valueOr(val, def)
}

func valueOr(val, def interface{}) interface{} {
	if val == nil {
		return def
	}
	return val
}

// Set stores val at a key or dotted path and returns the receiver for
// chaining. Missing intermediate levels are created as empty containers;
// an intermediate holding a non-container value is overwritten with a fresh
// container, discarding the old value. An existing literal key is always
// assigned directly, even when it contains separators.
func (a *Arr) Set(key, val interface{}) *Arr {
	k := coerceKey(key)
	if _, ok := a.get(k); ok {
		a.put(k, val)
		return a
	}
	segs := splitPath(k)
	cur := a
	for _, seg := range segs[:len(segs)-1] {
		next, ok := cur.get(seg)
		sub, isArr := next.(*Arr)
		if !ok || !isArr || sub == nil {
			// a typed-nil *Arr counts as a non-container too
			sub = New()
			cur.put(seg, sub)
		}
		cur = sub
	}
	cur.put(segs[len(segs)-1], val)
	return a
}

// Pull removes the literal key and returns its value, or def when the key is
// absent or held nil. Unlike Get and Set, Pull does not interpret dotted
// paths: "a.b" only ever names the literal key "a.b", and a miss leaves the
// container untouched.
func (a *Arr) Pull(key, def interface{}) interface{} {
	val, ok := a.del(coerceKey(key))
	if !ok {
		return def
	}
	return valueOr(val, def)
}

// Spec names one entry of a bulk Get/Pull: a key, optionally paired with a
// default overriding the call-wide one for that entry only.
type Spec struct {
	key    Key
	def    interface{}
	hasDef bool
}

// K builds a Spec using the call-wide default.
func K(key interface{}) Spec {
	return Spec{key: coerceKey(key)}
}

// KD builds a Spec carrying its own default.
func KD(key, def interface{}) Spec {
	return Spec{key: coerceKey(key), def: def, hasDef: true}
}

// GetAll applies Get once per spec, in order, and returns one value per
// spec (duplicates included). There is no cross-entry transaction.
func (a *Arr) GetAll(specs []Spec, def interface{}) []interface{} {
	vals := make([]interface{}, len(specs))
	for i, spec := range specs {
		d := def
		if spec.hasDef {
			d = spec.def
		}
		vals[i] = a.Get(spec.key, d)
	}
	return vals
}

// PullAll applies Pull once per spec, in order. Entries removed by earlier
// specs stay removed, so a repeated key yields its default the second time.
func (a *Arr) PullAll(specs []Spec, def interface{}) []interface{} {
	vals := make([]interface{}, len(specs))
	for i, spec := range specs {
		d := def
		if spec.hasDef {
			d = spec.def
		}
		vals[i] = a.Pull(spec.key, d)
	}
	return vals
}
