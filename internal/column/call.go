package column

import (
	"fmt"
	"log/slog"

	"github.com/kode4food/pluck/column"
	"github.com/kode4food/pluck/record"
)

// Call extracts a column using positional arguments: the records, the column
// key, and an optional index key, where a nil index key means none was given.
// Arguments are validated in positional order, and every rejected argument
// is reported to slog.Default()
func Call(args ...any) (*record.Map, error) {
	l := slog.Default()
	switch {
	case len(args) < 2:
		err := fmt.Errorf("%w, %d given", column.ErrMissingArgument, len(args))
		diagnose(l, err)
		return nil, err
	case len(args) > 3:
		err := fmt.Errorf("%w, %d given", column.ErrTooManyArguments, len(args))
		diagnose(l, err)
		return nil, err
	}

	if _, err := elements(args[0]); err != nil {
		diagnose(l, err)
		return nil, err
	}

	var opts []column.Option
	if len(args) == 3 {
		opts = append(opts, column.Index(args[2]))
	}
	e, err := Make(args[1], opts...)
	if err != nil {
		return nil, err
	}
	return e.Extract(args[0])
}
