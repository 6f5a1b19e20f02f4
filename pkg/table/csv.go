package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// CSVBytes serializes the table as RFC 4180 CSV, a header row of column
// names followed by one record per row, UTF-8 encoded. A table without
// known columns yields no output at all.
func (t *Table) CSVBytes() ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	if len(t.Columns) > 0 {
		if err := w.Write(t.Columns); err != nil {
			return nil, fmt.Errorf("unable to write CSV header: %w", err)
		}
	}

	for _, record := range t.Records(-1) {
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("unable to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("unable to flush CSV records: %w", err)
	}

	return buf.Bytes(), nil
}

// Records renders up to limit rows as strings in column order. A negative
// limit means all rows.
func (t *Table) Records(limit int) [][]string {
	rows := t.Rows
	if limit >= 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		record := make([]string, len(t.Columns))
		for i, column := range t.Columns {
			record[i] = formatValue(row[column])
		}
		records = append(records, record)
	}

	return records
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		// Nested arrays and objects stay JSON-encoded in their cell.
		content, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(content)
	}
}
