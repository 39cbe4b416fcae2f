package record

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Key identifies an entry of a Record or of a Map. A Key is either an integer
// or a string, and is comparable
type Key struct {
	str   string
	num   int
	isStr bool
}

// Error messages
var (
	ErrInvalidKeyType     = errors.New("key should be either a string or an integer")
	ErrUnconvertibleValue = errors.New("value cannot be converted to a key")
)

// IntKey returns an integer Key
func IntKey(i int) Key {
	return Key{num: i}
}

// StringKey returns a Key for the provided string. Strings in canonical
// decimal integer form become integer Keys
func StringKey(s string) Key {
	if i, ok := canonicalInt(s); ok {
		return IntKey(i)
	}
	return Key{str: s, isStr: true}
}

// IsInt returns whether the Key is an integer Key
func (k Key) IsInt() bool {
	return !k.isStr
}

// Int returns the integer value of the Key and whether it is an integer Key
func (k Key) Int() (int, bool) {
	return k.num, !k.isStr
}

// String returns the string form of the Key
func (k Key) String() string {
	if k.isStr {
		return k.str
	}
	return strconv.Itoa(k.num)
}

// Value returns the Key as an int or a string
func (k Key) Value() any {
	if k.isStr {
		return k.str
	}
	return k.num
}

// ParseKey validates a key argument. Values of any string or integer kind,
// Keys, and values implementing fmt.Stringer are accepted. Integer kinds
// take precedence over a String method
func ParseKey(v any) (Key, error) {
	switch v := v.(type) {
	case Key:
		return v, nil
	case string:
		return StringKey(v), nil
	case int:
		return IntKey(v), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return StringKey(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:
		i, err := fromSigned(rv.Int())
		if err != nil {
			return Key{}, fmt.Errorf("%w: %w", ErrInvalidKeyType, err)
		}
		return IntKey(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		i, err := fromUnsigned(rv.Uint())
		if err != nil {
			return Key{}, fmt.Errorf("%w: %w", ErrInvalidKeyType, err)
		}
		return IntKey(i), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Key{}, fmt.Errorf("%w: nil %T given", ErrInvalidKeyType, v)
		}
	}
	if s, ok := v.(fmt.Stringer); ok {
		return StringKey(s.String()), nil
	}
	return Key{}, fmt.Errorf("%w: %T given", ErrInvalidKeyType, v)
}

// NormalizeKey converts a record value into a Key, applying the same rules as
// ParseKey, but also accepting booleans (0 or 1), floats (truncated toward
// zero) and nil (the empty string)
func NormalizeKey(v any) (Key, error) {
	if v == nil {
		return StringKey(""), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return IntKey(1), nil
		}
		return IntKey(0), nil
	case reflect.Float32, reflect.Float64:
		return floatKey(rv.Float())
	}
	k, err := ParseKey(v)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %T", ErrUnconvertibleValue, v)
	}
	return k, nil
}

func floatKey(f float64) (Key, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Key{}, fmt.Errorf("%w: %v", ErrUnconvertibleValue, f)
	}
	t := math.Trunc(f)
	if t < math.MinInt || t >= math.MaxInt {
		return Key{}, fmt.Errorf("%w: %v", ErrUnconvertibleValue, f)
	}
	return IntKey(int(t)), nil
}

func fromSigned(i int64) (int, error) {
	if i < math.MinInt || i > math.MaxInt {
		return 0, fmt.Errorf("integer out of range: %d", i)
	}
	return int(i), nil
}

func fromUnsigned(u uint64) (int, error) {
	if u > math.MaxInt {
		return 0, fmt.Errorf("integer out of range: %d", u)
	}
	return int(u), nil
}

// canonicalInt reports whether s is the canonical decimal form of an int:
// "0", or an optional minus sign followed by a non-zero digit and more digits
func canonicalInt(s string) (int, bool) {
	d := s
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}
	if len(d) == 0 || (d[0] == '0' && (len(d) > 1 || len(s) > 1)) {
		return 0, false
	}
	for i := 0; i < len(d); i++ {
		if d[i] < '0' || d[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}
