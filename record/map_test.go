package record_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kode4food/pluck/record"
)

func TestMapOrder(t *testing.T) {
	as := assert.New(t)

	m := record.NewMap()
	m.Set(record.StringKey("b"), 1)
	m.Set(record.StringKey("a"), 2)
	m.Set(record.IntKey(5), 3)

	as.Equal(3, m.Len())
	as.Equal([]record.Key{
		record.StringKey("b"), record.StringKey("a"), record.IntKey(5),
	}, m.Keys())
	as.Equal([]any{1, 2, 3}, m.Values())

	v, ok := m.Get(record.StringKey("a"))
	as.True(ok)
	as.Equal(2, v)

	_, ok = m.Get(record.StringKey("missing"))
	as.False(ok)
}

func TestMapOverwriteKeepsPosition(t *testing.T) {
	as := assert.New(t)

	m := record.MapOf("x", 1, "y", 2, "z", 3)
	m.Set(record.StringKey("x"), 10)

	as.Equal([]any{10, 2, 3}, m.Values())
	as.Equal(3, m.Len())
}

func TestMapAppend(t *testing.T) {
	as := assert.New(t)

	m := record.NewMap()
	as.Equal(record.IntKey(0), mustAppend(t, m, "a"))
	m.Set(record.StringKey("name"), "b")
	as.Equal(record.IntKey(1), mustAppend(t, m, "c"))

	m.Set(record.IntKey(10), "d")
	as.Equal(record.IntKey(11), mustAppend(t, m, "e"))

	m.Set(record.IntKey(-3), "f")
	as.Equal(record.IntKey(12), mustAppend(t, m, "g"))

	as.Equal([]any{"a", "b", "c", "d", "e", "f", "g"}, m.Values())
}

func TestMapZeroValue(t *testing.T) {
	as := assert.New(t)

	var m record.Map
	as.Equal(0, m.Len())
	_, ok := m.Get(record.IntKey(0))
	as.False(ok)

	mustAppend(t, &m, "first")
	as.Equal([]any{"first"}, m.Values())
}

func TestMapAppendAtMaxInt(t *testing.T) {
	as := assert.New(t)

	m := record.NewMap()
	m.Set(record.IntKey(math.MaxInt), "last")
	k, err := m.Append("overflow")
	as.ErrorIs(err, record.ErrNoFreeKey)
	as.Equal(record.Key{}, k)
	as.Equal([]record.Key{record.IntKey(math.MaxInt)}, m.Keys())

	m.Set(record.IntKey(5), "still settable")
	_, err = m.Append("again")
	as.ErrorIs(err, record.ErrNoFreeKey)
	as.Equal(2, m.Len())
}

func mustAppend(t *testing.T, m *record.Map, v any) record.Key {
	t.Helper()
	k, err := m.Append(v)
	require.NoError(t, err)
	return k
}

func TestMapIsList(t *testing.T) {
	as := assert.New(t)

	as.True(record.NewMap().IsList())
	as.True(record.ListOf("a", "b", "c").IsList())
	as.False(record.MapOf(1, "a", 0, "b").IsList())
	as.False(record.MapOf("a", 1).IsList())
	as.False(record.MapOf(1, "a").IsList())
}

func TestMapOfNormalizes(t *testing.T) {
	as := assert.New(t)

	m := record.MapOf("1", "one", true, "yes", nil, "empty")
	as.Equal([]record.Key{
		record.IntKey(1), record.StringKey(""),
	}, m.Keys())
	as.Equal([]any{"yes", "empty"}, m.Values())

	as.Panics(func() { record.MapOf("odd") })
	as.Panics(func() { record.MapOf([]any{}, 1) })
}

func TestMapEqual(t *testing.T) {
	as := assert.New(t)

	l := record.MapOf("a", 1, "b", record.ListOf(1, 2))
	r := record.MapOf("a", 1, "b", record.ListOf(1, 2))
	as.True(l.Equal(r))

	as.False(l.Equal(record.MapOf("b", record.ListOf(1, 2), "a", 1)))
	as.False(l.Equal(record.MapOf("a", 1, "b", record.ListOf(2, 1))))
	as.False(l.Equal(record.MapOf("a", 1)))
	as.False(l.Equal(record.MapOf("a", 1, "b", []any{1, 2})))
	as.False(l.Equal(nil))

	var n *record.Map
	as.True(n.Equal(nil))
}

func TestMapRangeStops(t *testing.T) {
	as := assert.New(t)

	m := record.ListOf("a", "b", "c")
	var seen []any
	m.Range(func(_ record.Key, v any) bool {
		seen = append(seen, v)
		return len(seen) < 2
	})
	as.Equal([]any{"a", "b"}, seen)

	entries := m.Entries()
	as.Len(entries, 3)
	as.Equal(record.Entry{Key: record.IntKey(2), Value: "c"}, entries[2])
}
