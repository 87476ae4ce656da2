package dialect

import (
	"context"

	sqlitedrv "github.com/tablewise/tablewise/internal/sqlite"
)

// SQLite backs sqlite:// targets and bare file paths. The driver is chosen
// at build time by the internal/sqlite package.
type SQLite struct{}

func sqliteDSN(path string) string { return sqlitedrv.FileDSN(path) }

func (SQLite) Name() string       { return "sqlite" }
func (SQLite) DriverName() string { return sqlitedrv.DriverName }
func (SQLite) Embedded() bool     { return true }

func (SQLite) Placeholder(int) string { return "?" }

func (SQLite) QuoteIdent(ident string) string { return quoteANSI(ident) }

// Tuning enables WAL with relaxed durability and turns foreign key
// enforcement on. Applied once per connect; the engine keeps the session
// alive for its whole lifetime.
func (SQLite) Tuning() []string {
	return []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA wal_autocheckpoint=1000",
		"PRAGMA foreign_keys=ON",
	}
}

func (SQLite) EmptyInsert(table string) string {
	return "INSERT INTO " + quoteANSI(table) + " DEFAULT VALUES"
}

func (SQLite) SupportsReturning() bool    { return false }
func (SQLite) SupportsLastInsertID() bool { return true }

func (SQLite) Tables(ctx context.Context, q Queryer) ([]string, error) {
	return scanStrings(ctx, q, `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name ASC`)
}

func (SQLite) Columns(ctx context.Context, q Queryer, table string) ([]Column, error) {
	return scanPragmaColumns(ctx, q, "PRAGMA table_info("+quoteANSI(table)+")")
}

func (SQLite) IsIntegrityErr(err error) bool { return sqlitedrv.IsConstraintErr(err) }
