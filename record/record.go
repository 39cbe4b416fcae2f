package record

import (
	"reflect"
	"sort"
)

type (
	// Record is a mapping from Keys to values. Records in a single set may
	// have differing key sets
	Record interface {
		// Get returns the value stored under the Key, and whether it exists
		Get(Key) (any, bool)

		// Range calls fn for each entry of the Record. If fn returns false,
		// iteration stops
		Range(fn func(Key, any) bool)
	}

	// List adapts a slice into a Record keyed 0 through n-1
	List []any

	// StringMap adapts a string-keyed Go map into a Record
	StringMap map[string]any

	// IntMap adapts an int-keyed Go map into a Record
	IntMap map[int]any

	// KeyMap adapts a Key-keyed Go map into a Record
	KeyMap map[Key]any

	reflected struct {
		v reflect.Value
	}
)

// Of adapts a value into a Record. Slices, arrays, and maps keyed by strings
// or integers are Records. Anything else (scalars, nil, structs) is not
func Of(v any) (Record, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case Record:
		return v, true
	case []any:
		return List(v), true
	case map[string]any:
		return StringMap(v), true
	case map[int]any:
		return IntMap(v), true
	case map[Key]any:
		return KeyMap(v), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			// byte slices are scalar values
			return nil, false
		}
		return &reflected{v: rv}, true
	case reflect.Map:
		if isKeyKind(rv.Type().Key().Kind()) {
			return &reflected{v: rv}, true
		}
	}
	return nil, false
}

// Get returns the element at the Key's position
func (l List) Get(k Key) (any, bool) {
	i, ok := k.Int()
	if !ok || i < 0 || i >= len(l) {
		return nil, false
	}
	return l[i], true
}

// Range visits the elements in order
func (l List) Range(fn func(Key, any) bool) {
	for i, v := range l {
		if !fn(IntKey(i), v) {
			return
		}
	}
}

// Get looks up the string form of the Key
func (m StringMap) Get(k Key) (any, bool) {
	v, ok := m[k.String()]
	return v, ok
}

// Range visits the entries in sorted key order
func (m StringMap) Range(fn func(Key, any) bool) {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if !fn(StringKey(n), m[n]) {
			return
		}
	}
}

// Get looks up integer Keys
func (m IntMap) Get(k Key) (any, bool) {
	i, ok := k.Int()
	if !ok {
		return nil, false
	}
	v, ok := m[i]
	return v, ok
}

// Range visits the entries in ascending key order
func (m IntMap) Range(fn func(Key, any) bool) {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		if !fn(IntKey(k), m[k]) {
			return
		}
	}
}

func (m KeyMap) Get(k Key) (any, bool) {
	v, ok := m[k]
	return v, ok
}

// Range visits integer Keys first, in ascending order, then string Keys
func (m KeyMap) Range(fn func(Key, any) bool) {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortKeys(keys)
	for _, k := range keys {
		if !fn(k, m[k]) {
			return
		}
	}
}

func (r *reflected) Get(k Key) (any, bool) {
	if r.v.Kind() != reflect.Map {
		i, ok := k.Int()
		if !ok || i < 0 || i >= r.v.Len() {
			return nil, false
		}
		return r.v.Index(i).Interface(), true
	}
	mk, ok := mapKey(r.v.Type().Key(), k)
	if !ok {
		return nil, false
	}
	e := r.v.MapIndex(mk)
	if !e.IsValid() {
		return nil, false
	}
	return e.Interface(), true
}

func (r *reflected) Range(fn func(Key, any) bool) {
	if r.v.Kind() != reflect.Map {
		for i := 0; i < r.v.Len(); i++ {
			if !fn(IntKey(i), r.v.Index(i).Interface()) {
				return
			}
		}
		return
	}
	entries := map[Key]any{}
	for it := r.v.MapRange(); it.Next(); {
		k, err := NormalizeKey(it.Key().Interface())
		if err != nil {
			continue
		}
		entries[k] = it.Value().Interface()
	}
	KeyMap(entries).Range(fn)
}

func isKeyKind(k reflect.Kind) bool {
	switch k {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64:
		return true
	default:
		return false
	}
}

func mapKey(t reflect.Type, k Key) (reflect.Value, bool) {
	if t.Kind() == reflect.String {
		return reflect.ValueOf(k.String()).Convert(t), true
	}
	i, ok := k.Int()
	if !ok {
		return reflect.Value{}, false
	}
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64:
		if i < 0 {
			return reflect.Value{}, false
		}
		v := reflect.New(t).Elem()
		if v.OverflowUint(uint64(i)) {
			return reflect.Value{}, false
		}
		v.SetUint(uint64(i))
		return v, true
	default:
		v := reflect.New(t).Elem()
		if v.OverflowInt(int64(i)) {
			return reflect.Value{}, false
		}
		v.SetInt(int64(i))
		return v, true
	}
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		l, r := keys[i], keys[j]
		if l.IsInt() != r.IsInt() {
			return l.IsInt()
		}
		if l.IsInt() {
			return l.num < r.num
		}
		return l.str < r.str
	})
}
