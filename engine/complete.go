package engine

import (
	"modernc.org/libc"
	sqlite3 "modernc.org/sqlite/lib"
)

// IsComplete reports whether text forms one or more complete SQL statements,
// using SQLite's own sqlite3_complete. A semicolon inside a string literal,
// a quoted identifier or a comment does not end a statement.
func IsComplete(text string) bool {
	tls := libc.NewTLS()
	defer tls.Close()

	cs, err := libc.CString(text)
	if err != nil {
		return false
	}
	defer libc.Xfree(tls, cs)

	return sqlite3.Xsqlite3_complete(tls, cs) != 0
}
