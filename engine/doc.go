// Package engine wraps the embedded SQLite engine used by the sq3 shell.
// It opens the database file through modernc.org/sqlite, runs one statement
// at a time on a single connection and exposes the catalog queries needed by
// the .list command.
package engine
