// Package dialect resolves connection targets to their backing store
// flavor: driver registration, bind placeholder style, identifier quoting,
// schema introspection, and store-specific error classification.
package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Queryer is the slice of *sql.DB the introspection queries need.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Column is one introspected table column.
type Column struct {
	Name       string
	Type       string
	Nullable   bool
	PrimaryKey bool
}

// Dialect describes the store-specific surface of one backend.
type Dialect interface {
	Name() string
	DriverName() string
	// Embedded reports whether the store runs inside the process. Embedded
	// connections are never recycled so session tuning survives.
	Embedded() bool
	// Placeholder renders the n-th bind marker, 1-based.
	Placeholder(n int) string
	QuoteIdent(ident string) string
	// Tuning returns session statements applied once after connect.
	Tuning() []string
	// EmptyInsert renders the all-default-row insert form.
	EmptyInsert(table string) string
	SupportsReturning() bool
	SupportsLastInsertID() bool
	Tables(ctx context.Context, q Queryer) ([]string, error)
	Columns(ctx context.Context, q Queryer, table string) ([]Column, error)
	IsIntegrityErr(err error) bool
}

// Target is a parsed connection target.
type Target struct {
	Dialect Dialect
	DSN     string
}

// Parse resolves a connection target of the form dialect://rest. A driver
// qualifier after the dialect (for example postgresql+pgx://) is accepted
// and ignored; a bare path with no scheme is treated as a sqlite database
// file.
func Parse(target string) (Target, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return Target{}, fmt.Errorf("connection target is required")
	}
	if !strings.Contains(target, "://") {
		return Target{Dialect: SQLite{}, DSN: sqliteDSN(target)}, nil
	}

	scheme, rest, _ := strings.Cut(target, "://")
	if plus := strings.Index(scheme, "+"); plus >= 0 {
		scheme = scheme[:plus]
	}
	switch strings.ToLower(scheme) {
	case "sqlite", "sqlite3":
		return Target{Dialect: SQLite{}, DSN: sqliteDSN(filePath(rest))}, nil
	case "duckdb":
		return Target{Dialect: DuckDB{}, DSN: filePath(rest)}, nil
	case "postgres", "postgresql":
		return Target{Dialect: Postgres{}, DSN: "postgres://" + rest}, nil
	case "mysql":
		dsn, err := mysqlDSN(rest)
		if err != nil {
			return Target{}, err
		}
		return Target{Dialect: MySQL{}, DSN: dsn}, nil
	default:
		return Target{}, fmt.Errorf("unsupported dialect %q", scheme)
	}
}

// filePath extracts the database path from the rest of a file-backed
// target. One leading slash separates the empty authority from the path, so
// dialect:///app.db is the relative path app.db and dialect:////data/app.db
// is absolute. Nothing after the scheme means in-memory.
func filePath(rest string) string {
	return strings.TrimPrefix(rest, "/")
}

func quoteANSI(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func scanStrings(ctx context.Context, q Queryer, query string) ([]string, error) {
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query table names: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table names: %w", err)
	}
	return names, nil
}

// scanInfoSchemaColumns reads rows shaped (name, type, nullable, primary
// key) as produced by the information_schema column queries.
func scanInfoSchemaColumns(ctx context.Context, q Queryer, query, table string) ([]Column, error) {
	rows, err := q.QueryContext(ctx, query, table)
	if err != nil {
		return nil, fmt.Errorf("query columns: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	columns := make([]Column, 0)
	for rows.Next() {
		var column Column
		if err := rows.Scan(&column.Name, &column.Type, &column.Nullable, &column.PrimaryKey); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		columns = append(columns, column)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns: %w", err)
	}
	return columns, nil
}

// scanPragmaColumns reads PRAGMA table_info rows, shaped
// (cid, name, type, notnull, dflt_value, pk).
func scanPragmaColumns(ctx context.Context, q Queryer, query string) ([]Column, error) {
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query table_info: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	columns := make([]Column, 0)
	for rows.Next() {
		var (
			cid       int
			name      string
			typeName  string
			notNull   int
			dfltValue any
			pk        int
		)
		if err := rows.Scan(&cid, &name, &typeName, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("scan table_info row: %w", err)
		}
		columns = append(columns, Column{
			Name:       name,
			Type:       typeName,
			Nullable:   notNull == 0,
			PrimaryKey: pk > 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table_info rows: %w", err)
	}
	return columns, nil
}
