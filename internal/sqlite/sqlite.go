// Package sqlite selects the SQLite driver backing the sqlite dialect.
//
// The default build uses the pure Go modernc.org/sqlite driver. Building
// with -tags cgo_sqlite (and CGO_ENABLED=1) switches to mattn/go-sqlite3.
// Both drivers accept the same file: DSN form produced by FileDSN.
package sqlite

// FileDSN builds the DSN for a database path. An empty path opens an
// in-memory database. The _txlock parameter makes explicit transactions
// take the write lock at BEGIN instead of on first write.
func FileDSN(path string) string {
	if path == "" || path == ":memory:" {
		return "file::memory:?_txlock=exclusive"
	}
	return "file:" + path + "?_txlock=exclusive"
}
