package arr

import (
	"fmt"
	"strconv"
)

// Key is a container key: a string or an integer scalar. A string that is a
// canonical non-negative decimal ("0", "7", "42" but not "07" or "+7")
// canonicalizes to the equivalent integer key, so StrKey("2") and IntKey(2)
// address the same entry. This is what makes integer keys reachable through
// dotted paths, whose segments are always strings.
type Key struct {
	str   string
	num   int
	isNum bool
}

func IntKey(n int) Key {
	return Key{num: n, isNum: true}
}

func StrKey(s string) Key {
	if n, ok := parseIndex(s); ok {
		return IntKey(n)
	}
	return Key{str: s}
}

// parseIndex accepts only the canonical decimal form of a non-negative int.
func parseIndex(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// overflows int - keep it a string key
		return 0, false
	}
	return n, true
}

// IsInt reports whether the key is an integer key.
func (k Key) IsInt() bool {
	return k.isNum
}

// Int returns the integer form of the key and whether it has one.
func (k Key) Int() (int, bool) {
	return k.num, k.isNum
}

// String returns the key's string form.
func (k Key) String() string {
	if k.isNum {
		return strconv.Itoa(k.num)
	}
	return k.str
}

// Value returns the key as a plain int or string.
func (k Key) Value() interface{} {
	if k.isNum {
		return k.num
	}
	return k.str
}

// compareKeys orders integer keys numerically before string keys, string
// keys between themselves bytewise.
func compareKeys(x, y Key) int {
	switch {
	case x.isNum && y.isNum:
		switch {
		case x.num < y.num:
			return -1
		case x.num > y.num:
			return 1
		}
		return 0
	case x.isNum:
		return -1
	case y.isNum:
		return 1
	}
	switch {
	case x.str < y.str:
		return -1
	case x.str > y.str:
		return 1
	}
	return 0
}

// KindError reports a key argument of a kind the container cannot address by.
type KindError struct {
	Value interface{}
}

func (e *KindError) Error() string {
	return fmt.Sprintf("arr: invalid key kind %T", e.Value)
}

// coerceKey converts loose key arguments: a Key, a string, or any integer
// kind. Anything else panics with *KindError - a wrong key type is a
// programming error, same class as indexing a Go map with an incomparable
// key. Callers who want this unreachable construct Keys with IntKey/StrKey.
func coerceKey(key interface{}) Key {
	switch v := key.(type) {
	case Key:
		return v
	case string:
		return StrKey(v)
	case int:
		return IntKey(v)
	case int8:
		return IntKey(int(v))
	case int16:
		return IntKey(int(v))
	case int32:
		return IntKey(int(v))
	case int64:
		return IntKey(int(v))
	case uint:
		return IntKey(int(v))
	case uint8:
		return IntKey(int(v))
	case uint16:
		return IntKey(int(v))
	case uint32:
		return IntKey(int(v))
	case uint64:
		return IntKey(int(v))
	}
	panic(&KindError{Value: key})
}
