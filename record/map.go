package record

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

type (
	// Map is an insertion-ordered association of Keys to values. It is used
	// both as a Record and as the result of a column extraction
	Map struct {
		index   map[Key]int
		entries []Entry
		next    int
		full    bool
	}

	// Entry is a single Key and value pair of a Map
	Entry struct {
		Key   Key
		Value any
	}
)

// ErrNoFreeKey is returned by Append when the largest integer Key is in use
var ErrNoFreeKey = errors.New("next integer key is already occupied")

// NewMap returns an empty Map
func NewMap() *Map {
	return &Map{
		index: map[Key]int{},
	}
}

// MapOf builds a Map from alternating key and value arguments. Keys are
// normalized with NormalizeKey; it panics on an odd argument count or an
// unconvertible key, so it is meant for literals
func MapOf(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("record.MapOf: odd number of arguments")
	}
	m := NewMap()
	for i := 0; i < len(kv); i += 2 {
		k, err := NormalizeKey(kv[i])
		if err != nil {
			panic(fmt.Sprintf("record.MapOf: %v", err))
		}
		m.Set(k, kv[i+1])
	}
	return m
}

// ListOf builds a Map keyed 0 through n-1 from the provided values
func ListOf(values ...any) *Map {
	m := NewMap()
	for i, v := range values {
		m.Set(IntKey(i), v)
	}
	return m
}

// Set stores a value under the Key. Overwriting an existing Key keeps its
// original position
func (m *Map) Set(k Key, v any) {
	if m.index == nil {
		m.index = map[Key]int{}
	}
	if i, ok := m.index[k]; ok {
		m.entries[i].Value = v
		return
	}
	if i, ok := k.Int(); ok && !m.full && i >= m.next {
		if i == math.MaxInt {
			m.full = true
		} else {
			m.next = i + 1
		}
	}
	m.index[k] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: k, Value: v})
}

// Append stores a value under the next free integer Key and returns that Key.
// Once math.MaxInt is in use there is no next free Key and ErrNoFreeKey is
// returned
func (m *Map) Append(v any) (Key, error) {
	if m.full {
		return Key{}, ErrNoFreeKey
	}
	k := IntKey(m.next)
	m.Set(k, v)
	return k, nil
}

// Get returns the value stored under the Key, and whether it exists
func (m *Map) Get(k Key) (any, bool) {
	if i, ok := m.index[k]; ok {
		return m.entries[i].Value, true
	}
	return nil, false
}

// Len returns the number of entries in the Map
func (m *Map) Len() int {
	return len(m.entries)
}

// Keys returns the Keys of the Map in order
func (m *Map) Keys() []Key {
	res := make([]Key, len(m.entries))
	for i, e := range m.entries {
		res[i] = e.Key
	}
	return res
}

// Values returns the values of the Map in order
func (m *Map) Values() []any {
	res := make([]any, len(m.entries))
	for i, e := range m.entries {
		res[i] = e.Value
	}
	return res
}

// Entries returns a copy of the Map's entries in order
func (m *Map) Entries() []Entry {
	res := make([]Entry, len(m.entries))
	copy(res, m.entries)
	return res
}

// Range calls fn for each entry in order. If fn returns false, iteration
// stops
func (m *Map) Range(fn func(Key, any) bool) {
	for _, e := range m.entries {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// IsList returns whether the Map's Keys are exactly 0 through n-1, in order
func (m *Map) IsList() bool {
	for i, e := range m.entries {
		if n, ok := e.Key.Int(); !ok || n != i {
			return false
		}
	}
	return true
}

// Equal returns whether both Maps hold equal entries in the same order.
// Nested Maps are compared with Equal, other values with reflect.DeepEqual
func (m *Map) Equal(o *Map) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.entries) != len(o.entries) {
		return false
	}
	for i, e := range m.entries {
		oe := o.entries[i]
		if e.Key != oe.Key || !valuesEqual(e.Value, oe.Value) {
			return false
		}
	}
	return true
}

func valuesEqual(l, r any) bool {
	if lm, ok := l.(*Map); ok {
		if rm, ok := r.(*Map); ok {
			return lm.Equal(rm)
		}
		return false
	}
	return reflect.DeepEqual(l, r)
}
