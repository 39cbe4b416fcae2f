// Package codec reads record sets from YAML or JSON documents and writes
// extraction results back out. Mappings keep their document order in both
// directions
package codec

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/kode4food/pluck/record"
)

// Format selects the output encoding
type Format int

// Output formats
const (
	YAML Format = iota
	JSON
)

// Error messages
var (
	ErrNotSequence   = errors.New("document root is not a sequence")
	ErrUnknownFormat = errors.New("unknown format")
)

// ParseFormat resolves a Format by name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml", "":
		return YAML, nil
	case "json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "yaml"
}

// Decode reads a single YAML or JSON document whose root is a sequence.
// Mappings become *record.Map values and sequences become []any. An empty
// document is an empty record set
func Decode(r io.Reader) ([]any, error) {
	var doc any
	dec := yaml.NewDecoder(r, yaml.UseOrderedMap())
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []any{}, nil
		}
		return nil, err
	}
	if doc == nil {
		return []any{}, nil
	}
	seq, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotSequence, doc)
	}
	res, err := fromDocument(seq)
	if err != nil {
		return nil, err
	}
	return res.([]any), nil
}

func fromDocument(v any) (any, error) {
	switch v := v.(type) {
	case yaml.MapSlice:
		m := record.NewMap()
		for _, item := range v {
			k, err := record.NormalizeKey(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := fromDocument(item.Value)
			if err != nil {
				return nil, err
			}
			m.Set(k, val)
		}
		return m, nil
	case []any:
		res := make([]any, len(v))
		for i, e := range v {
			val, err := fromDocument(e)
			if err != nil {
				return nil, err
			}
			res[i] = val
		}
		return res, nil
	default:
		return v, nil
	}
}

// Encode writes an extraction result. Results keyed 0 through n-1 are written
// as sequences, anything else as a mapping in result order. Mapping keys are
// always written as strings, so integer keys come out quoted in YAML
func Encode(w io.Writer, m *record.Map, f Format) error {
	var opts []yaml.EncodeOption
	if f == JSON {
		opts = append(opts, yaml.JSON())
	}
	return yaml.NewEncoder(w, opts...).Encode(toDocument(m))
}

func toDocument(v any) any {
	switch v := v.(type) {
	case *record.Map:
		if v.IsList() {
			return toDocument(v.Values())
		}
		res := make(yaml.MapSlice, 0, v.Len())
		v.Range(func(k record.Key, e any) bool {
			res = append(res, yaml.MapItem{
				Key: k.String(), Value: toDocument(e),
			})
			return true
		})
		return res
	case []any:
		res := make([]any, len(v))
		for i, e := range v {
			res[i] = toDocument(e)
		}
		return res
	case record.Record:
		m := record.NewMap()
		v.Range(func(k record.Key, e any) bool {
			m.Set(k, e)
			return true
		})
		return toDocument(m)
	default:
		return v
	}
}
