package dialect

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// MySQL backs mysql:// targets. The URL form is rewritten into the
// driver's user:pass@tcp(host:port)/dbname DSN.
type MySQL struct{}

func (MySQL) Name() string       { return "mysql" }
func (MySQL) DriverName() string { return "mysql" }
func (MySQL) Embedded() bool     { return false }

func (MySQL) Placeholder(int) string { return "?" }

func (MySQL) QuoteIdent(ident string) string { return quoteBacktick(ident) }

func (MySQL) Tuning() []string { return nil }

func (MySQL) EmptyInsert(table string) string {
	return "INSERT INTO " + quoteBacktick(table) + " () VALUES ()"
}

func quoteBacktick(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}

func (MySQL) SupportsReturning() bool    { return false }
func (MySQL) SupportsLastInsertID() bool { return true }

func (MySQL) Tables(ctx context.Context, q Queryer) ([]string, error) {
	return scanStrings(ctx, q, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		ORDER BY table_name ASC`)
}

func (MySQL) Columns(ctx context.Context, q Queryer, table string) ([]Column, error) {
	query := `
		SELECT
			column_name,
			data_type,
			is_nullable = 'YES' AS nullable,
			column_key = 'PRI' AS primary_key
		FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ?
		ORDER BY ordinal_position ASC`
	return scanInfoSchemaColumns(ctx, q, query, table)
}

// Constraint-violation error numbers: duplicate keys, null violations,
// foreign key failures and check failures.
var mysqlIntegrityNumbers = map[uint16]struct{}{
	1022: {},
	1048: {},
	1062: {},
	1169: {},
	1216: {},
	1217: {},
	1364: {},
	1451: {},
	1452: {},
	3819: {},
}

func (MySQL) IsIntegrityErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	_, ok := mysqlIntegrityNumbers[mysqlErr.Number]
	return ok
}

// mysqlDSN rewrites the rest of a mysql:// target into the driver DSN.
// parseTime is forced on so temporal columns scan as time.Time.
func mysqlDSN(rest string) (string, error) {
	parsed, err := url.Parse("mysql://" + rest)
	if err != nil {
		return "", fmt.Errorf("parse mysql target: %w", err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("mysql host is required")
	}

	host := parsed.Host
	if parsed.Port() == "" {
		host = net.JoinHostPort(parsed.Hostname(), "3306")
	}

	creds := ""
	if parsed.User != nil {
		creds = parsed.User.Username()
		if password, ok := parsed.User.Password(); ok {
			creds += ":" + password
		}
		creds += "@"
	}

	database := strings.TrimPrefix(parsed.Path, "/")
	params := "parseTime=true"
	if parsed.RawQuery != "" {
		params = parsed.RawQuery + "&parseTime=true"
	}
	return fmt.Sprintf("%stcp(%s)/%s?%s", creds, host, database, params), nil
}
