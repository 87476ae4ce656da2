package dialect

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Postgres backs postgres:// and postgresql:// targets through the pgx
// stdlib driver. The target URL is handed to the driver unchanged.
type Postgres struct{}

func (Postgres) Name() string       { return "postgres" }
func (Postgres) DriverName() string { return "pgx" }
func (Postgres) Embedded() bool     { return false }

func (Postgres) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }

func (Postgres) QuoteIdent(ident string) string { return quoteANSI(ident) }

func (Postgres) Tuning() []string { return nil }

func (Postgres) EmptyInsert(table string) string {
	return "INSERT INTO " + quoteANSI(table) + " DEFAULT VALUES"
}

func (Postgres) SupportsReturning() bool    { return true }
func (Postgres) SupportsLastInsertID() bool { return false }

func (Postgres) Tables(ctx context.Context, q Queryer) ([]string, error) {
	return scanStrings(ctx, q, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
		ORDER BY table_name ASC`)
}

func (Postgres) Columns(ctx context.Context, q Queryer, table string) ([]Column, error) {
	query := `
		SELECT
			cols.column_name,
			cols.data_type,
			cols.is_nullable = 'YES' AS nullable,
			EXISTS (
				SELECT 1
				FROM information_schema.table_constraints AS tc
				JOIN information_schema.key_column_usage AS kcu
					ON kcu.constraint_name = tc.constraint_name
					AND kcu.table_schema = tc.table_schema
				WHERE tc.table_schema = cols.table_schema
					AND tc.table_name = cols.table_name
					AND tc.constraint_type = 'PRIMARY KEY'
					AND kcu.column_name = cols.column_name
			) AS primary_key
		FROM information_schema.columns AS cols
		WHERE cols.table_schema = current_schema() AND cols.table_name = $1
		ORDER BY cols.ordinal_position ASC`
	return scanInfoSchemaColumns(ctx, q, query, table)
}

// IsIntegrityErr matches SQLSTATE class 23, integrity constraint violation.
func (Postgres) IsIntegrityErr(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return strings.HasPrefix(pgErr.Code, "23")
}
