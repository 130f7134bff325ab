package arr

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CompareFunc orders two values: negative, zero or positive.
type CompareFunc func(x, y interface{}) int

// SortFlags modify the natural ordering used when no comparator is given.
// At most one of FlagNumeric/FlagString applies; FlagCaseFold only matters
// together with FlagString.
type SortFlags uint

const (
	FlagNumeric SortFlags = 1 << iota // compare everything as numbers
	FlagString                        // compare everything as strings
	FlagCaseFold                      // case-insensitive string compare
)

// Strategy names a built-in sort. The "u" prefix marks the user-driven
// variants, which require a comparator.
type Strategy string

const (
	Values          Strategy = "sort"   // by value, reindexing keys
	ValuesKeepKeys  Strategy = "asort"  // by value, keys preserved
	Keys            Strategy = "ksort"  // by key
	UValues         Strategy = "usort"  // by comparator over values, reindexing
	UValuesKeepKeys Strategy = "uasort" // by comparator over values, keys preserved
	UKeys           Strategy = "uksort" // by comparator over keys
)

func (s Strategy) userDriven() bool {
	return strings.HasPrefix(string(s), "u")
}

// toUserDriven maps a plain strategy to its comparator-accepting variant.
func (s Strategy) toUserDriven() Strategy {
	if s.userDriven() {
		return s
	}
	return Strategy("u" + string(s))
}

// ErrComparatorRequired is returned by Sort when a user-driven strategy is
// named without a comparator.
var ErrComparatorRequired = errors.New("arr: user-driven sort strategy requires a comparator")

// SortSpec selects one of four mutually exclusive sorting modes. Construct
// with NoComparator, ByComparator, ByNamedStrategy or
// ByNamedStrategyWithComparator.
type SortSpec struct {
	strategy Strategy
	cmp      CompareFunc
	flags    SortFlags
	named    bool
}

// NoComparator sorts by natural value ordering honoring flags, reindexing
// keys.
func NoComparator(flags SortFlags) SortSpec {
	return SortSpec{flags: flags}
}

// ByComparator sorts values by cmp, reindexing keys.
func ByComparator(cmp CompareFunc) SortSpec {
	return SortSpec{cmp: cmp}
}

// ByNamedStrategy runs a built-in strategy with natural ordering. Naming a
// user-driven strategy here is an error: it has no comparator to run with.
func ByNamedStrategy(name Strategy, flags SortFlags) SortSpec {
	return SortSpec{strategy: name, flags: flags, named: true}
}

// ByNamedStrategyWithComparator runs a built-in strategy in its user-driven
// variant with cmp as the ordering; flags play no part in this mode.
func ByNamedStrategyWithComparator(name Strategy, cmp CompareFunc) SortSpec {
	return SortSpec{strategy: name.toUserDriven(), cmp: cmp, named: true}
}

// Sort sorts the container in place per spec and returns the receiver for
// chaining. Sorting is stable: equal entries keep their insertion order.
func (a *Arr) Sort(spec SortSpec) (*Arr, error) {
	switch {
	case spec.named:
		if spec.strategy.userDriven() && spec.cmp == nil {
			return a, ErrComparatorRequired
		}
		a.runStrategy(spec.strategy, spec.cmp, spec.flags)
	case spec.cmp != nil:
		a.sortValues(spec.cmp, false)
	default:
		flags := spec.flags
		a.sortValues(func(x, y interface{}) int {
			return compare(x, y, flags)
		}, false)
	}
	return a, nil
}

func (a *Arr) runStrategy(name Strategy, cmp CompareFunc, flags SortFlags) {
	if cmp == nil {
		cmp = func(x, y interface{}) int {
			return compare(x, y, flags)
		}
	}
	switch name {
	case ValuesKeepKeys, UValuesKeepKeys:
		a.sortValues(cmp, true)
	case Keys:
		if flags != 0 {
			a.sortKeys(func(x, y Key) int {
				return compare(x.Value(), y.Value(), flags)
			})
			return
		}
		a.sortKeys(compareKeys)
	case UKeys:
		a.sortKeys(func(x, y Key) int {
			return cmp(x.Value(), y.Value())
		})
	default:
		// Values/UValues and anything off the closed set
		a.sortValues(cmp, false)
	}
}

// sortValues stable-sorts the entries by value. With keepKeys the key/value
// association survives; otherwise keys are renumbered 0..n-1.
func (a *Arr) sortValues(cmp CompareFunc, keepKeys bool) {
	items := a.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return cmp(items[i].Val, items[j].Val) < 0
	})
	if !keepKeys {
		for i := range items {
			items[i].Key = IntKey(i)
		}
	}
	a.reset(items)
}

func (a *Arr) sortKeys(cmp func(x, y Key) int) {
	items := a.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return cmp(items[i].Key, items[j].Key) < 0
	})
	a.reset(items)
}

// compare is the natural ordering behind comparator-less sorts. Without
// flags it orders loosely: nils first, then bools, then anything numeric
// (including numeric strings) by value, then strings bytewise, then
// everything else by its formatted form.
func compare(x, y interface{}, flags SortFlags) int {
	switch {
	case flags&FlagNumeric != 0:
		return compareFloats(toFloatLoose(x), toFloatLoose(y))
	case flags&FlagString != 0:
		xs, ys := stringOf(x), stringOf(y)
		if flags&FlagCaseFold != 0 {
			xs, ys = strings.ToLower(xs), strings.ToLower(ys)
		}
		return strings.Compare(xs, ys)
	}

	xr, yr := rankOf(x), rankOf(y)
	if xr != yr {
		return xr - yr
	}
	switch xr {
	case rankNil:
		return 0
	case rankBool:
		xb, yb := x.(bool), y.(bool)
		switch {
		case !xb && yb:
			return -1
		case xb && !yb:
			return 1
		}
		return 0
	case rankNumber:
		xf, _ := toFloat(x)
		yf, _ := toFloat(y)
		return compareFloats(xf, yf)
	}
	return strings.Compare(stringOf(x), stringOf(y))
}

const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankOther
)

func rankOf(v interface{}) int {
	switch v.(type) {
	case nil:
		return rankNil
	case bool:
		return rankBool
	case string:
		if _, ok := toFloat(v); ok {
			return rankNumber
		}
		return rankString
	default:
		if _, ok := toFloat(v); ok {
			return rankNumber
		}
		return rankOther
	}
}

func compareFloats(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// toFloat extracts a numeric value from any number kind or a numeric string.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// toFloatLoose is the FlagNumeric cast: non-numeric values count as zero.
func toFloatLoose(v interface{}) float64 {
	if f, ok := toFloat(v); ok {
		return f
	}
	if b, ok := v.(bool); ok && b {
		return 1
	}
	return 0
}

func stringOf(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	}
	return fmt.Sprint(v)
}
