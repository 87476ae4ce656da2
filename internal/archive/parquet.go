package archive

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/tablewise/tablewise"
)

// encodeTableParquet writes rows under a schema discovered at call time.
// Every column becomes an optional UTF8 leaf: values are rendered to
// strings and NULLs are preserved as parquet nulls. Columns are only known
// at runtime, so rows go through the low-level row API rather than the
// typed writer.
func encodeTableParquet(table string, columns []string, rows []tablewise.ResultRow) ([]byte, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %q has no columns", table)
	}

	group := parquet.Group{}
	for _, col := range columns {
		group[col] = parquet.Optional(parquet.String())
	}
	schema := parquet.NewSchema(table, group)

	// Group fields sort lexicographically; map each column to its leaf
	// index in that order.
	sorted := append([]string(nil), columns...)
	sort.Strings(sorted)
	leafIndex := make(map[string]int, len(sorted))
	for i, col := range sorted {
		leafIndex[col] = i
	}

	buf := bytes.NewBuffer(nil)
	writer := parquet.NewWriter(buf, schema)
	for _, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row has %d values, want %d", len(row), len(columns))
		}
		parquetRow := make(parquet.Row, len(columns))
		for i, col := range columns {
			idx := leafIndex[col]
			text, isNull := renderValue(row[i])
			if isNull {
				parquetRow[idx] = parquet.ValueOf(nil).Level(0, 0, idx)
				continue
			}
			parquetRow[idx] = parquet.ValueOf(text).Level(0, 1, idx)
		}
		if _, err := writer.WriteRows([]parquet.Row{parquetRow}); err != nil {
			return nil, fmt.Errorf("write parquet row: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close parquet writer: %w", err)
	}
	return buf.Bytes(), nil
}

// renderValue stringifies one store value.
func renderValue(value any) (string, bool) {
	switch typed := value.(type) {
	case nil:
		return "", true
	case string:
		return typed, false
	case []byte:
		return string(typed), false
	case time.Time:
		return typed.UTC().Format(time.RFC3339Nano), false
	case bool:
		return strconv.FormatBool(typed), false
	case int64:
		return strconv.FormatInt(typed, 10), false
	case int32:
		return strconv.FormatInt(int64(typed), 10), false
	case int:
		return strconv.Itoa(typed), false
	case float64:
		return strconv.FormatFloat(typed, 'g', -1, 64), false
	case float32:
		return strconv.FormatFloat(float64(typed), 'g', -1, 32), false
	default:
		return fmt.Sprint(typed), false
	}
}
