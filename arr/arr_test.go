package arr

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	a := New()

	require.NotNil(t, a)
	assert.Equal(t, 0, a.Len())
	assert.True(t, a.Empty())
}

func TestNew_Items(t *testing.T) {
	t.Parallel()

	a := New(
		Item{StrKey("b"), 1},
		Item{StrKey("a"), 2},
		Item{IntKey(7), 3},
	)

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []Key{StrKey("b"), StrKey("a"), IntKey(7)}, a.Keys())
	assert.Equal(t, []interface{}{1, 2, 3}, a.Values())
}

func TestArr_InsertionOrder(t *testing.T) {
	t.Parallel()

	a := New()
	a.Set("x", 1).Set("m", 2).Set("a", 3)

	// overwriting keeps the original position
	a.Set("m", 20)

	assert.Equal(t, []Key{StrKey("x"), StrKey("m"), StrKey("a")}, a.Keys())
	assert.Equal(t, []interface{}{1, 20, 3}, a.Values())
}

func TestArr_NumericStringKeys(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Str Key
		Int Key
		Eq  bool
	}{
		{StrKey("5"), IntKey(5), true},
		{StrKey("0"), IntKey(0), true},
		{StrKey("42"), IntKey(42), true},
		{StrKey("05"), IntKey(5), false}, // not canonical
		{StrKey("+5"), IntKey(5), false},
		{StrKey("5x"), IntKey(5), false},
		{StrKey(""), IntKey(0), false},
	} {
		tcase := tcase

		t.Run(tcase.Str.String(), func(t *testing.T) {
			assert.Equal(t, tcase.Eq, tcase.Str == tcase.Int)
		})
	}

	a := New()
	a.Set("5", "five")

	assert.Equal(t, "five", a.Get(5, nil))
	assert.True(t, a.Has(IntKey(5)))
}

func TestArr_DeleteKeepsOrder(t *testing.T) {
	t.Parallel()

	a := New()
	for i := 0; i < 8; i++ {
		a.Set(fmt.Sprintf("k%d", i), i)
	}

	a.Pull("k2", nil)
	a.Pull("k5", nil)

	assert.Equal(t, 6, a.Len())
	assert.Equal(
		t,
		[]Key{StrKey("k0"), StrKey("k1"), StrKey("k3"), StrKey("k4"), StrKey("k6"), StrKey("k7")},
		a.Keys(),
	)

	// re-adding a deleted key appends at the end
	a.Set("k2", 22)

	assert.Equal(t, 22, a.Get("k2", nil))
	assert.Equal(t, 22, a.Last(nil))
}

func TestArr_Compaction(t *testing.T) {
	t.Parallel()

	const total = 200

	a := New()
	for i := 0; i < total; i++ {
		a.Set(i, i*i)
	}

	// deleting most entries forces compaction several times over
	for i := 0; i < total; i++ {
		if i%4 != 0 {
			a.Pull(i, nil)
		}
	}

	require.Equal(t, total/4, a.Len())
	require.Equal(t, a.Len(), a.liveCount())

	want := make([]Key, 0, total/4)
	for i := 0; i < total; i += 4 {
		want = append(want, IntKey(i))

		assert.Equal(t, i*i, a.Get(i, nil))
	}

	assert.Equal(t, want, a.Keys())
}

func TestArr_Iter(t *testing.T) {
	t.Parallel()

	a := New()
	a.Set("a", 1).Set("b", 2).Set("c", 3)

	var seen []interface{}

	full := a.Iter(func(item Item) bool {
		seen = append(seen, item.Val)
		return true
	})

	assert.True(t, full)
	assert.Equal(t, []interface{}{1, 2, 3}, seen)

	seen = seen[:0]
	full = a.Iter(func(item Item) bool {
		seen = append(seen, item.Val)
		return len(seen) < 2
	})

	assert.False(t, full)
	assert.Equal(t, []interface{}{1, 2}, seen)
}

func TestArr_Clone(t *testing.T) {
	t.Parallel()

	a := New()
	a.Set("x", 1).Set("sub.y", 2)

	b := a.Clone()
	b.Set("x", 10)

	assert.Equal(t, 1, a.Get("x", nil))
	assert.Equal(t, 10, b.Get("x", nil))

	// shallow: nested containers are shared
	b.Set("sub.y", 20)

	assert.Equal(t, 20, a.Get("sub.y", nil))
}

func TestArr_KindError(t *testing.T) {
	t.Parallel()

	a := New()

	assert.PanicsWithError(t, "arr: invalid key kind float64", func() {
		a.Get(1.5, nil)
	})
	assert.PanicsWithError(t, "arr: invalid key kind struct {}", func() {
		a.Set(struct{}{}, 1)
	})
}

func TestArr_Stress(t *testing.T) {
	t.Parallel()

	const (
		seed  = 1234567890
		total = 2000
	)

	var (
		faker = gofakeit.New(seed)
		a     = New()
		ref   = map[Key]interface{}{}
		order []Key
	)

	for i := 0; i < total; i++ {
		key := StrKey(faker.LetterN(8))
		val := faker.Int16()

		if _, dup := ref[key]; !dup {
			order = append(order, key)
		}
		ref[key] = val
		a.Set(key, val)
	}

	require.Equal(t, len(ref), a.Len())
	require.Equal(t, order, a.Keys())

	// delete a third, verify the rest
	for i, key := range order {
		if i%3 == 0 {
			assert.Equal(t, ref[key], a.Pull(key, nil))
			delete(ref, key)
		}
	}

	require.Equal(t, len(ref), a.Len())

	for key, val := range ref {
		assert.Equal(t, val, a.Get(key, nil))
	}
}
