package table

import (
	"bytes"
	"encoding/csv"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVBytes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		given       *Table
		want        string
	}{
		{
			"header row and data rows in column order",
			&Table{
				Columns: []string{"a", "b"},
				Rows: []map[string]any{
					{"a": json.Number("1"), "b": "x"},
					{"a": json.Number("2"), "b": "y"},
				},
			},
			"a,b\n1,x\n2,y\n",
		},
		{
			"embedded commas and quotes are escaped",
			&Table{
				Columns: []string{"name", "note"},
				Rows: []map[string]any{
					{"name": `say "hi"`, "note": "one, two"},
				},
			},
			"name,note\n\"say \"\"hi\"\"\",\"one, two\"\n",
		},
		{
			"nil values become empty fields",
			&Table{
				Columns: []string{"a", "b"},
				Rows:    []map[string]any{{"a": nil, "b": true}},
			},
			"a,b\n,true\n",
		},
		{
			"empty table with columns yields a header only",
			&Table{Columns: []string{"a", "b"}},
			"a,b\n",
		},
		{
			"empty table without columns yields nothing",
			&Table{},
			"",
		},
		{
			"nested values stay JSON-encoded",
			&Table{
				Columns: []string{"tags"},
				Rows:    []map[string]any{{"tags": []any{"x", "y"}}},
			},
			"tags\n\"[\"\"x\"\",\"\"y\"\"]\"\n",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			actual, err := tc.given.CSVBytes()

			require.NoError(t, err)
			assert.Equal(t, tc.want, string(actual))
		})
	}
}

func TestCSVBytesRoundTrip(t *testing.T) {
	t.Parallel()

	given := &Table{
		Columns: []string{"id", "comment", "multiline"},
		Rows: []map[string]any{
			{"id": json.Number("1"), "comment": "plain", "multiline": "a\nb"},
			{"id": json.Number("2"), "comment": `with "quotes", and commas`, "multiline": ""},
		},
	}

	content, err := given.CSVBytes()
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, given.Columns, records[0])
	assert.Equal(t, []string{"1", "plain", "a\nb"}, records[1])
	assert.Equal(t, []string{"2", `with "quotes", and commas`, ""}, records[2])
}

func TestRecords(t *testing.T) {
	t.Parallel()

	given := &Table{
		Columns: []string{"n"},
		Rows: []map[string]any{
			{"n": json.Number("1")},
			{"n": json.Number("2")},
			{"n": json.Number("3")},
		},
	}

	cases := []struct {
		description string
		limit       int
		want        [][]string
	}{
		{
			"negative limit keeps all rows",
			-1,
			[][]string{{"1"}, {"2"}, {"3"}},
		},
		{
			"limit below row count truncates",
			2,
			[][]string{{"1"}, {"2"}},
		},
		{
			"limit above row count keeps all rows",
			10,
			[][]string{{"1"}, {"2"}, {"3"}},
		},
		{
			"zero limit keeps nothing",
			0,
			[][]string{},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, given.Records(tc.limit))
		})
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		given       any
		want        string
	}{
		{"nil", nil, ""},
		{"string", "text", "text"},
		{"number", json.Number("123456789012345678"), "123456789012345678"},
		{"decimal number", json.Number("1.5"), "1.5"},
		{"bool", true, "true"},
		{"float", 2.5, "2.5"},
		{"object", map[string]any{"k": "v"}, `{"k":"v"}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, formatValue(tc.given))
		})
	}
}
