package tablewise

import (
	"context"
	"fmt"

	"github.com/tablewise/tablewise/internal/observability"
)

// Column describes one reflected table column.
type Column struct {
	Name       string
	Type       string
	Nullable   bool
	PrimaryKey bool
}

// TableSchema is the reflected column set of one table, in store-reported
// order. Schemas are treated as immutable for the lifetime of the engine.
type TableSchema struct {
	Table   string
	Columns []Column
}

// Has reports whether the table has the named column.
func (s TableSchema) Has(column string) bool {
	for _, col := range s.Columns {
		if col.Name == column {
			return true
		}
	}
	return false
}

// Names returns the column names in store-reported order.
func (s TableSchema) Names() []string {
	names := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		names = append(names, col.Name)
	}
	return names
}

// PrimaryKey reports the table's primary key column. Composite keys report
// no key; generated-id handling only applies to single-column keys.
func (s TableSchema) PrimaryKey() (string, bool) {
	name := ""
	count := 0
	for _, col := range s.Columns {
		if col.PrimaryKey {
			name = col.Name
			count++
		}
	}
	if count != 1 {
		return "", false
	}
	return name, true
}

// Reflect returns the table's column set, introspecting the store on first
// use and serving the cached schema afterwards.
func (e *Engine) Reflect(ctx context.Context, table string) (TableSchema, error) {
	if err := e.ready(); err != nil {
		return TableSchema{}, err
	}

	e.mu.Lock()
	cached, ok := e.schemas[table]
	e.mu.Unlock()
	if ok {
		observability.RecordSchemaCacheHit()
		return cached, nil
	}

	reflected, err := e.dialect.Columns(ctx, e.db, table)
	if err != nil {
		return TableSchema{}, fmt.Errorf("reflect table %q: %w", table, err)
	}
	if len(reflected) == 0 {
		return TableSchema{}, fmt.Errorf("%w: table %q", ErrSchema, table)
	}

	schema := TableSchema{Table: table, Columns: make([]Column, 0, len(reflected))}
	for _, col := range reflected {
		schema.Columns = append(schema.Columns, Column(col))
	}

	e.mu.Lock()
	e.schemas[table] = schema
	e.mu.Unlock()

	observability.RecordSchemaReflection(e.dialect.Name())
	return schema, nil
}
