package column

import (
	"errors"

	"github.com/kode4food/pluck/record"
)

type (
	// Extractor pulls the values of a single column out of a set of records,
	// optionally keying the result by the values of another column. An
	// Extractor is immutable and may be shared between goroutines
	Extractor interface {
		// Column returns the column Key being extracted, and false if the
		// Extractor selects whole records
		Column() (record.Key, bool)

		// Index returns the index Key used to key the result, and false if
		// the result is a plain sequence
		Index() (record.Key, bool)

		// Extract performs a single pass over the records. The records must
		// be a slice, an array, or a record.Record whose values are visited
		// in order
		Extract(records any) (*record.Map, error)
	}

	// Selector retrieves the value that an Extractor emits for a record, and
	// whether the record participates in the result at all
	Selector func(record.Record) (any, bool)
)

// Error messages
var (
	ErrMissingArgument    = errors.New("expects at least 2 parameters")
	ErrTooManyArguments   = errors.New("expects at most 3 parameters")
	ErrInvalidRecordsType = errors.New("expects parameter 1 to be array")
	ErrInvalidColumnKey   = errors.New("the column key should be either a string or an integer")
	ErrInvalidIndexKey    = errors.New("the index key should be either a string or an integer")
)

// Select returns a Selector for the column Key
func Select(k record.Key) Selector {
	return func(r record.Record) (any, bool) {
		return r.Get(k)
	}
}
