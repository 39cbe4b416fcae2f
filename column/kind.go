package column

import (
	"errors"

	"github.com/kode4food/pluck/record"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind classifies the errors reported by an Extractor
type Kind int

// Error kinds. KindMissingArgument covers any wrong argument count
const (
	KindNone Kind = iota
	KindMissingArgument
	KindInvalidRecordsType
	KindInvalidKeyType
	KindUnconvertibleValue
	KindNoFreeKey
	KindUnknown
)

// KindOf classifies an error. A nil error is KindNone and an error that did
// not originate from extraction is KindUnknown
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMissingArgument),
		errors.Is(err, ErrTooManyArguments):
		return KindMissingArgument
	case errors.Is(err, ErrInvalidRecordsType):
		return KindInvalidRecordsType
	case errors.Is(err, ErrInvalidColumnKey),
		errors.Is(err, ErrInvalidIndexKey),
		errors.Is(err, record.ErrInvalidKeyType):
		return KindInvalidKeyType
	case errors.Is(err, record.ErrUnconvertibleValue):
		return KindUnconvertibleValue
	case errors.Is(err, record.ErrNoFreeKey):
		return KindNoFreeKey
	default:
		return KindUnknown
	}
}

// Recoverable returns whether the Kind describes bad input that was rejected
// before any record was visited
func (k Kind) Recoverable() bool {
	switch k {
	case KindMissingArgument, KindInvalidRecordsType, KindInvalidKeyType:
		return true
	default:
		return false
	}
}
