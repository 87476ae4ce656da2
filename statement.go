package tablewise

import (
	"fmt"
	"strings"

	"github.com/tablewise/tablewise/internal/dialect"
)

// statement is rendered SQL text plus its bound arguments. All values reach
// the store as bound parameters, never as inlined literals.
type statement struct {
	sql  string
	args []any
}

// buildInsert renders an insert for the data keys that are schema columns,
// in schema order. Unknown keys are dropped so callers may pass superset
// maps; a map with no usable keys renders the dialect's all-default-row
// form.
func buildInsert(d dialect.Dialect, schema TableSchema, data Row) statement {
	columns := make([]string, 0, len(data))
	args := make([]any, 0, len(data))
	for _, col := range schema.Columns {
		value, ok := data[col.Name]
		if !ok {
			continue
		}
		columns = append(columns, col.Name)
		args = append(args, value)
	}
	if len(columns) == 0 {
		return statement{sql: d.EmptyInsert(schema.Table)}
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(d.QuoteIdent(schema.Table))
	sb.WriteString(" (")
	for i, col := range columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(d.QuoteIdent(col))
	}
	sb.WriteString(") VALUES (")
	for i := range columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(d.Placeholder(i + 1))
	}
	sb.WriteString(")")
	return statement{sql: sb.String(), args: args}
}

// buildSelect renders a projection over the named columns, or every schema
// column when none are named. Unlike inserts, unknown columns are an error
// here: a read of a column that does not exist can never be intentional.
func buildSelect(d dialect.Dialect, schema TableSchema, columns []string, conds []Cond) (statement, error) {
	if len(columns) == 0 {
		columns = schema.Names()
	}
	quoted := make([]string, 0, len(columns))
	for _, col := range columns {
		if !schema.Has(col) {
			return statement{}, fmt.Errorf("%w: column %q in table %q", ErrSchema, col, schema.Table)
		}
		quoted = append(quoted, d.QuoteIdent(col))
	}

	where, args, err := buildWhere(d, schema, conds, 0)
	if err != nil {
		return statement{}, err
	}
	return statement{
		sql:  "SELECT " + strings.Join(quoted, ", ") + " FROM " + d.QuoteIdent(schema.Table) + where,
		args: args,
	}, nil
}

// buildUpdate renders an assignment of data over the rows matching conds.
// Every data key must be a schema column.
func buildUpdate(d dialect.Dialect, schema TableSchema, data Row, conds []Cond) (statement, error) {
	if len(data) == 0 {
		return statement{}, fmt.Errorf("update %q: no column values given", schema.Table)
	}

	assigns := make([]string, 0, len(data))
	args := make([]any, 0, len(data)+len(conds))
	matched := 0
	for _, col := range schema.Columns {
		value, ok := data[col.Name]
		if !ok {
			continue
		}
		matched++
		assigns = append(assigns, d.QuoteIdent(col.Name)+" = "+d.Placeholder(matched))
		args = append(args, value)
	}
	if matched != len(data) {
		for key := range data {
			if !schema.Has(key) {
				return statement{}, fmt.Errorf("%w: column %q in table %q", ErrSchema, key, schema.Table)
			}
		}
	}

	where, whereArgs, err := buildWhere(d, schema, conds, matched)
	if err != nil {
		return statement{}, err
	}
	return statement{
		sql:  "UPDATE " + d.QuoteIdent(schema.Table) + " SET " + strings.Join(assigns, ", ") + where,
		args: append(args, whereArgs...),
	}, nil
}

// buildDelete renders a delete of the rows matching conds.
func buildDelete(d dialect.Dialect, schema TableSchema, conds []Cond) (statement, error) {
	where, args, err := buildWhere(d, schema, conds, 0)
	if err != nil {
		return statement{}, err
	}
	return statement{sql: "DELETE FROM " + d.QuoteIdent(schema.Table) + where, args: args}, nil
}

// buildWhere renders the AND-conjunction of equality conditions. No
// conditions means no WHERE clause: the statement applies to every row,
// which is the documented contract, not an accident. offset is the number
// of placeholders already rendered before the clause.
func buildWhere(d dialect.Dialect, schema TableSchema, conds []Cond, offset int) (string, []any, error) {
	if len(conds) == 0 {
		return "", nil, nil
	}
	parts := make([]string, 0, len(conds))
	args := make([]any, 0, len(conds))
	for i, cond := range conds {
		if !schema.Has(cond.Column) {
			return "", nil, fmt.Errorf("%w: column %q in table %q", ErrSchema, cond.Column, schema.Table)
		}
		parts = append(parts, d.QuoteIdent(cond.Column)+" = "+d.Placeholder(offset+i+1))
		args = append(args, cond.Value)
	}
	return " WHERE " + strings.Join(parts, " AND "), args, nil
}
