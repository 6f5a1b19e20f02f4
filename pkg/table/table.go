package table

import (
	"bytes"
	"sort"

	json "github.com/goccy/go-json"
)

// MalformedError reports an upstream payload that does not follow the
// documented results shape. Raw keeps the original payload so callers can
// still show it for diagnostics.
type MalformedError struct {
	Raw json.RawMessage
}

func (e *MalformedError) Error() string {
	return "Dune API response not in the expected format"
}

// Table is the rectangular form of a query result: ordered columns and
// ordered rows, with every row holding a value (possibly nil) for every
// declared column.
type Table struct {
	Columns []string
	Rows    []map[string]any
}

func (t *Table) TotalRows() int {
	return len(t.Rows)
}

// Tabulate turns a raw results payload into a Table. The payload must be
// an object with a result.rows sequence of row objects; anything else
// fails with MalformedError. Columns come from result.metadata.column_names
// verbatim when present. Without metadata the columns are the union of all
// row keys in lexicographic order, since JSON key order does not survive
// decoding into Go maps.
func Tabulate(raw []byte) (*Table, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &MalformedError{Raw: raw}
	}

	resultRaw, found := payload["result"]
	if !found {
		return nil, &MalformedError{Raw: raw}
	}

	var result struct {
		Rows     json.RawMessage `json:"rows"`
		Metadata struct {
			ColumnNames []string `json:"column_names"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(resultRaw, &result); err != nil {
		return nil, &MalformedError{Raw: raw}
	}
	if result.Rows == nil {
		return nil, &MalformedError{Raw: raw}
	}

	var rows []map[string]any

	// UseNumber keeps large block numbers and amounts exact instead of
	// going through float64.
	decoder := json.NewDecoder(bytes.NewReader(result.Rows))
	decoder.UseNumber()
	if err := decoder.Decode(&rows); err != nil {
		return nil, &MalformedError{Raw: raw}
	}

	columns := result.Metadata.ColumnNames
	if len(columns) == 0 {
		columns = inferColumns(rows)
	}

	for i := range rows {
		row := make(map[string]any, len(columns))
		for _, column := range columns {
			row[column] = rows[i][column]
		}
		rows[i] = row
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

func inferColumns(rows []map[string]any) []string {
	seen := make(map[string]struct{})

	var columns []string
	for _, row := range rows {
		for key := range row {
			if _, found := seen[key]; !found {
				seen[key] = struct{}{}
				columns = append(columns, key)
			}
		}
	}
	sort.Strings(columns)

	return columns
}
