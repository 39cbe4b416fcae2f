package column

import (
	"fmt"
	"iter"
	"log/slog"
	"reflect"

	"github.com/kode4food/pluck/column"
	"github.com/kode4food/pluck/record"
)

// Extractor is the internal implementation of a column.Extractor
type Extractor struct {
	cfg    *column.Config
	column record.Key
	whole  bool
	sel    column.Selector
}

// Make instantiates an Extractor for the column key. A nil column key selects
// whole records. The column key is validated before the options
func Make(col any, o ...column.Option) (column.Extractor, error) {
	e := &Extractor{whole: col == nil}
	if !e.whole {
		k, err := record.ParseKey(col)
		if err != nil {
			err = fmt.Errorf("%w, %s given",
				column.ErrInvalidColumnKey, record.TypeName(col),
			)
			diagnose(loggerOf(o), err)
			return nil, err
		}
		e.column = k
		e.sel = column.Select(k)
	}
	cfg, err := column.Apply(o...)
	if err != nil {
		if column.KindOf(err) == column.KindInvalidKeyType {
			diagnose(loggerOf(o), err)
		}
		return nil, err
	}
	e.cfg = cfg
	return e, nil
}

func (e *Extractor) Column() (record.Key, bool) {
	return e.column, !e.whole
}

func (e *Extractor) Index() (record.Key, bool) {
	return e.cfg.Index, e.cfg.Indexed
}

func (e *Extractor) Extract(records any) (*record.Map, error) {
	each, err := elements(records)
	if err != nil {
		diagnose(e.cfg.Logger, err)
		return nil, err
	}
	res := record.NewMap()
	for elem := range each {
		if err := e.visit(res, elem); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (e *Extractor) visit(res *record.Map, elem any) error {
	r, ok := record.Of(elem)
	if !ok {
		return nil
	}
	if f := e.cfg.Filter; f != nil {
		if ok, err := f(r); err != nil || !ok {
			return err
		}
	}
	v := elem
	if !e.whole {
		if v, ok = e.sel(r); !ok {
			return nil
		}
	}
	if !e.cfg.Indexed {
		_, err := res.Append(v)
		return err
	}
	iv, ok := r.Get(e.cfg.Index)
	if !ok {
		_, err := res.Append(v)
		return err
	}
	k, err := record.NormalizeKey(iv)
	if err != nil {
		return fmt.Errorf("index %q: %w", e.cfg.Index, err)
	}
	res.Set(k, v)
	return nil
}

// elements returns an iterator over the values of a record set, in order
func elements(records any) (iter.Seq[any], error) {
	switch rs := records.(type) {
	case []any:
		return func(fn func(any) bool) {
			for _, v := range rs {
				if !fn(v) {
					return
				}
			}
		}, nil
	case record.Record:
		return func(fn func(any) bool) {
			rs.Range(func(_ record.Key, v any) bool {
				return fn(v)
			})
		}, nil
	}
	rv := reflect.ValueOf(records)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		return func(fn func(any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !fn(rv.Index(i).Interface()) {
					return
				}
			}
		}, nil
	case reflect.Map:
		if r, ok := record.Of(records); ok {
			return elements(r)
		}
	}
	return nil, fmt.Errorf("%w, %s given",
		column.ErrInvalidRecordsType, record.TypeName(records),
	)
}

func diagnose(l *slog.Logger, err error) {
	l.Warn(err.Error(), slog.String("kind", column.KindOf(err).String()))
}

// loggerOf recovers the diagnostics logger from a set of options that may not
// apply cleanly. Every option is replayed and failures are ignored
func loggerOf(o []column.Option) *slog.Logger {
	cfg := &column.Config{}
	_ = column.Defaults(cfg)
	for _, opt := range o {
		_ = opt(cfg)
	}
	return cfg.Logger
}
