package dialect

import (
	"context"
	"strings"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// DuckDB backs duckdb:// targets. An empty path opens an in-memory
// database.
type DuckDB struct{}

func (DuckDB) Name() string       { return "duckdb" }
func (DuckDB) DriverName() string { return "duckdb" }
func (DuckDB) Embedded() bool     { return true }

func (DuckDB) Placeholder(int) string { return "?" }

func (DuckDB) QuoteIdent(ident string) string { return quoteANSI(ident) }

func (DuckDB) Tuning() []string { return nil }

func (DuckDB) EmptyInsert(table string) string {
	return "INSERT INTO " + quoteANSI(table) + " DEFAULT VALUES"
}

func (DuckDB) SupportsReturning() bool    { return true }
func (DuckDB) SupportsLastInsertID() bool { return false }

func (DuckDB) Tables(ctx context.Context, q Queryer) ([]string, error) {
	return scanStrings(ctx, q, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'main' AND table_type = 'BASE TABLE'
		ORDER BY table_name ASC`)
}

func (DuckDB) Columns(ctx context.Context, q Queryer, table string) ([]Column, error) {
	columns, err := scanPragmaColumns(ctx, q, "PRAGMA table_info('"+strings.ReplaceAll(table, "'", "''")+"')")
	if err != nil {
		// Unlike sqlite, a missing table is an error here; report it as an
		// empty column set so all dialects agree.
		if strings.Contains(err.Error(), "does not exist") {
			return nil, nil
		}
		return nil, err
	}
	return columns, nil
}

func (DuckDB) IsIntegrityErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "Constraint Error")
}
