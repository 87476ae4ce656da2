//go:build !cgo_sqlite

package sqlite

import (
	"errors"

	msqlite "modernc.org/sqlite"
)

// DriverName is the database/sql driver the default build registers.
const DriverName = "sqlite"

// SQLITE_CONSTRAINT; extended constraint codes keep it in the low byte.
const constraintCode = 19

// IsConstraintErr reports whether err is a SQLite constraint violation.
func IsConstraintErr(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code()&0xff == constraintCode
}
