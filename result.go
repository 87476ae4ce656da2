package tablewise

import (
	"database/sql"
	"fmt"
	"strconv"
)

// Row is caller-supplied column data for writes. Keys are column names.
type Row map[string]any

// ResultRow is one result tuple, values in the requested column order.
type ResultRow []any

// ResultSet is a fully materialized query result.
type ResultSet struct {
	Columns []string    `json:"columns"`
	Rows    []ResultRow `json:"rows"`
}

// scanResultSet drains rows into memory, normalizing driver []byte values
// to string.
func scanResultSet(rows *sql.Rows) (*ResultSet, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read result columns: %w", err)
	}

	result := &ResultSet{Columns: columns, Rows: make([]ResultRow, 0)}
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		result.Rows = append(result.Rows, normalizeValues(values))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return result, nil
}

func normalizeValues(values []any) ResultRow {
	normalized := make(ResultRow, len(values))
	for i, value := range values {
		switch typed := value.(type) {
		case []byte:
			normalized[i] = string(typed)
		default:
			normalized[i] = typed
		}
	}
	return normalized
}

// asInt64 coerces a scanned generated-id value. Stores report ids as
// integers of varying width; postgres may hand back numerics as strings.
func asInt64(value any) int64 {
	switch typed := value.(type) {
	case int64:
		return typed
	case int32:
		return int64(typed)
	case int:
		return int64(typed)
	case uint64:
		return int64(typed)
	case float64:
		return int64(typed)
	case string:
		parsed, err := strconv.ParseInt(typed, 10, 64)
		if err != nil {
			return 0
		}
		return parsed
	case []byte:
		parsed, err := strconv.ParseInt(string(typed), 10, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
