package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"

	"github.com/kode4food/pluck/codec"
	"github.com/kode4food/pluck/column"
	"github.com/kode4food/pluck/record"
)

const records = `
- {id: 1, first_name: John, last_name: Doe}
- {id: 2, first_name: Sally, last_name: Smith}
- {id: 3, first_name: Jane, last_name: Jones}
`

func TestMainCommand(t *testing.T) {
	as := assert.New(t)
	as.NotNil(MainCommand())
}

func TestRunColumn(t *testing.T) {
	as := assert.New(t)

	var out, diag bytes.Buffer
	err := run(&Config{}, strings.NewReader(records), &out, &diag, "last_name")
	as.Nil(err)
	as.Equal("- Doe\n- Smith\n- Jones\n", out.String())
	as.Empty(diag.String())
}

func TestRunIndexed(t *testing.T) {
	as := assert.New(t)

	var out, diag bytes.Buffer
	cfg := &Config{Index: "first_name", Format: "json"}
	err := run(cfg, strings.NewReader(records), &out, &diag, "id")
	as.Nil(err)

	recs, err := codec.Decode(strings.NewReader("[" + out.String() + "]"))
	as.Nil(err)
	as.Len(recs, 1)
	m := recs[0].(*record.Map)
	as.Equal([]record.Key{
		record.StringKey("John"), record.StringKey("Sally"),
		record.StringKey("Jane"),
	}, m.Keys())
	v, _ := m.Get(record.StringKey("Sally"))
	as.EqualValues(2, v)
}

func TestRunWhere(t *testing.T) {
	as := assert.New(t)

	var out, diag bytes.Buffer
	cfg := &Config{Where: "id >= 2", Index: "id"}
	err := run(cfg, strings.NewReader(records), &out, &diag, "first_name")
	as.Nil(err)
	as.Equal("\"2\": Sally\n\"3\": Jane\n", out.String())
}

func TestRunIndexedYAML(t *testing.T) {
	as := assert.New(t)

	var out, diag bytes.Buffer
	cfg := &Config{Index: "id"}
	as.NotPanics(func() {
		err := run(cfg, strings.NewReader(records), &out, &diag, "last_name")
		as.Nil(err)
	})

	var doc yaml.MapSlice
	as.Nil(yaml.UnmarshalWithOptions(out.Bytes(), &doc, yaml.UseOrderedMap()))
	as.Equal(yaml.MapSlice{
		{Key: "1", Value: "Doe"},
		{Key: "2", Value: "Smith"},
		{Key: "3", Value: "Jones"},
	}, doc)
}

func TestRunErrors(t *testing.T) {
	as := assert.New(t)

	var out, diag bytes.Buffer
	err := run(&Config{Format: "xml"}, strings.NewReader(records),
		&out, &diag, "id",
	)
	as.ErrorIs(err, codec.ErrUnknownFormat)

	err = run(&Config{}, strings.NewReader("a: 1"), &out, &diag, "id")
	as.ErrorIs(err, codec.ErrNotSequence)

	err = run(&Config{Where: "id >"}, strings.NewReader(records),
		&out, &diag, "id",
	)
	as.NotNil(err)
	as.Empty(out.String())
}

func TestRunUnconvertibleIndex(t *testing.T) {
	as := assert.New(t)

	var out, diag bytes.Buffer
	err := run(&Config{}, strings.NewReader(`- {k: [1, 2], v: 1}`),
		&out, &diag, "v",
	)
	as.Nil(err)
	as.Equal("- 1\n", out.String())

	err = run(&Config{Index: "k"}, strings.NewReader(`- {k: [1, 2], v: 1}`),
		&out, &diag, "v",
	)
	as.Equal(column.KindUnconvertibleValue, column.KindOf(err))
	as.Equal("- 1\n", out.String())
	as.Empty(diag.String())
}
