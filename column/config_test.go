package column_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/pluck/column"
	"github.com/kode4food/pluck/record"
)

func TestDefaults(t *testing.T) {
	as := assert.New(t)

	cfg, err := column.Apply()
	as.Nil(err)
	as.Same(slog.Default(), cfg.Logger)
	as.False(cfg.Indexed)
	as.Nil(cfg.Filter)

	cfg, err = column.Apply(column.Defaults, column.Defaults)
	as.Nil(err)
	as.NotNil(cfg)
}

func TestIndexOption(t *testing.T) {
	as := assert.New(t)

	cfg, err := column.Apply(column.Index("42"))
	as.Nil(err)
	as.True(cfg.Indexed)
	as.Equal(record.IntKey(42), cfg.Index)

	cfg, err = column.Apply(column.Index("id"), column.Index(nil))
	as.Nil(err)
	as.False(cfg.Indexed)

	cfg, err = column.Apply(column.Index(map[string]any{}))
	as.Nil(cfg)
	as.ErrorIs(err, column.ErrInvalidIndexKey)
	as.EqualError(err,
		"the index key should be either a string or an integer, array given",
	)
}

func TestLoggerOptions(t *testing.T) {
	as := assert.New(t)

	l := slog.New(slog.DiscardHandler)
	cfg, err := column.Apply(column.Logger(l))
	as.Nil(err)
	as.Same(l, cfg.Logger)

	cfg, err = column.Apply(column.Quiet)
	as.Nil(err)
	as.NotSame(slog.Default(), cfg.Logger)

	cfg, err = column.Apply(column.Logger(nil))
	as.Nil(err)
	as.NotNil(cfg.Logger)
}

func TestFilterOptions(t *testing.T) {
	as := assert.New(t)

	cfg, err := column.Apply(column.Where("id == 1"))
	as.Nil(err)
	as.NotNil(cfg.Filter)
	ok, err := cfg.Filter(record.MapOf("id", 1))
	as.Nil(err)
	as.True(ok)

	cfg, err = column.Apply(column.Where(""))
	as.Nil(cfg)
	as.NotNil(err)

	cfg, err = column.Apply(column.Filter(func(record.Record) (bool, error) {
		return false, nil
	}))
	as.Nil(err)
	ok, _ = cfg.Filter(record.NewMap())
	as.False(ok)
}

func TestSelect(t *testing.T) {
	as := assert.New(t)

	sel := column.Select(record.StringKey("name"))
	v, ok := sel(record.MapOf("name", "bill"))
	as.True(ok)
	as.Equal("bill", v)

	_, ok = sel(record.MapOf("age", 42))
	as.False(ok)
}
