package pluck

import (
	"github.com/kode4food/pluck/column"
	columnImpl "github.com/kode4food/pluck/internal/column"
	"github.com/kode4food/pluck/record"
)

// NewExtractor instantiates a new column Extractor for the column key. A nil
// column key selects whole records
func NewExtractor(col any, o ...column.Option) (column.Extractor, error) {
	return columnImpl.Make(col, o...)
}

// Column returns the values found under the column key, in record order.
// Records that lack the column are skipped
func Column(records []any, col any) ([]any, error) {
	e, err := NewExtractor(col)
	if err != nil {
		return nil, err
	}
	res, err := e.Extract(records)
	if err != nil {
		return nil, err
	}
	return res.Values(), nil
}

// IndexedColumn returns the values found under the column key, keyed by the
// values found under the index key of the same record. Records lacking the
// index key are appended at the next free integer key
func IndexedColumn(records []any, col, idx any) (*record.Map, error) {
	e, err := NewExtractor(col, column.Index(idx))
	if err != nil {
		return nil, err
	}
	return e.Extract(records)
}

// Call extracts a column using the loosely typed positional convention:
// records, column key, and an optional index key
func Call(args ...any) (*record.Map, error) {
	return columnImpl.Call(args...)
}
