package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"modernc.org/sqlite"
)

// DriverName is the database/sql driver name registered by modernc.org/sqlite
const DriverName = "sqlite"

// statementSavepoint guards a single data-changing statement
const statementSavepoint = "sq3_statement"

// DB is a handle to one SQLite database file.
// Statements are executed serially on one pinned connection in autocommit
// mode so that ":memory:" databases, PRAGMA settings, VACUUM and
// connection-scoped functions such as changes() behave as they would in a
// single-connection shell.
type DB struct {
	db   *sql.DB
	conn *sql.Conn
	path string

	closeOnce sync.Once
	closeErr  error
	closed    bool
}

// Result describes a statement that ran to completion.
type Result struct {
	// Columns holds the result column names; it is empty for statements
	// that do not return rows.
	Columns []string
	// RowsAffected is the engine's change count for INSERT, UPDATE, DELETE
	// and REPLACE statements, and -1 for everything else.
	RowsAffected int64
}

// IsQuery reports whether the statement produced a result set.
func (r Result) IsQuery() bool {
	return len(r.Columns) > 0
}

// RowHandler consumes the result set of a query before the statement is
// finished. An error from the handler undoes a data-changing statement.
type RowHandler func(rows *Rows) error

// TableDef is a catalog entry for one table.
type TableDef struct {
	Name string
	SQL  string
}

// Open opens (creating if needed) the SQLite database at path.
func Open(ctx context.Context, path string) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}

	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	return &DB{
		db:   db,
		conn: conn,
		path: path,
	}, nil
}

// Path returns the path the database was opened with.
func (d *DB) Path() string {
	return d.path
}

// Close releases the database handle. It is safe to call more than once;
// only the first call closes the underlying connection.
func (d *DB) Close() error {
	d.closeOnce.Do(func() {
		d.closed = true
		d.closeErr = errors.Join(d.conn.Close(), d.db.Close())
	})
	return d.closeErr
}

// Execute runs one statement. SQLite makes every statement atomic on its
// own, so most statements run directly in autocommit mode. INSERT, UPDATE,
// DELETE and REPLACE run under a savepoint that is rolled back when the
// statement or the row handler fails, so a failed statement has no effect.
// A savepoint nests inside a transaction the operator opened with BEGIN.
func (d *DB) Execute(ctx context.Context, statement string, handle RowHandler) (Result, error) {
	if d.closed {
		return Result{RowsAffected: -1}, ErrClosed
	}

	if !reportsChanges(statement) {
		return d.run(ctx, statement, handle)
	}

	if _, err := d.conn.ExecContext(ctx, "SAVEPOINT "+statementSavepoint); err != nil {
		return Result{RowsAffected: -1}, fmt.Errorf("failed to begin statement: %w", err)
	}

	result, err := d.run(ctx, statement, handle)
	if err != nil {
		if rbErr := d.rollbackStatement(context.WithoutCancel(ctx)); rbErr != nil {
			return result, fmt.Errorf("%w (also failed to roll back: %w)", err, rbErr)
		}
		return result, err
	}

	if _, err := d.conn.ExecContext(ctx, "RELEASE "+statementSavepoint); err != nil {
		return result, fmt.Errorf("failed to commit: %w", err)
	}
	return result, nil
}

// rollbackStatement undoes the statement savepoint and removes it
func (d *DB) rollbackStatement(ctx context.Context) error {
	if _, err := d.conn.ExecContext(ctx, "ROLLBACK TO "+statementSavepoint); err != nil {
		return err
	}
	_, err := d.conn.ExecContext(ctx, "RELEASE "+statementSavepoint)
	return err
}

// run executes the statement on the pinned connection and streams any
// result set to handle
func (d *DB) run(ctx context.Context, statement string, handle RowHandler) (Result, error) {
	result := Result{RowsAffected: -1}

	rows, err := d.conn.QueryContext(ctx, statement)
	if err != nil {
		return result, err
	}

	columns, err := rows.Columns()
	if err != nil {
		_ = rows.Close()
		return result, err
	}

	if len(columns) > 0 {
		result.Columns = columns
		if handle != nil {
			if err := handle(newRows(rows, columns)); err != nil {
				_ = rows.Close()
				return result, err
			}
		}
		if err := rows.Close(); err != nil {
			return result, err
		}
		return result, rows.Err()
	}

	if err := rows.Close(); err != nil {
		return result, err
	}
	if err := rows.Err(); err != nil {
		return result, err
	}

	if reportsChanges(statement) {
		if err := d.conn.QueryRowContext(ctx, "SELECT changes()").Scan(&result.RowsAffected); err != nil {
			return result, fmt.Errorf("failed to read change count: %w", err)
		}
	}
	return result, nil
}

// Tables lists the tables in the schema, in catalog order.
func (d *DB) Tables(ctx context.Context) ([]TableDef, error) {
	if d.closed {
		return nil, ErrClosed
	}

	rows, err := d.conn.QueryContext(ctx, "SELECT name, sql FROM sqlite_master WHERE type='table'")
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []TableDef
	for rows.Next() {
		var name string
		var def sql.NullString
		if err := rows.Scan(&name, &def); err != nil {
			return nil, fmt.Errorf("failed to list tables: %w", err)
		}
		tables = append(tables, TableDef{Name: name, SQL: def.String})
	}
	return tables, rows.Err()
}

// Indexes lists the names of the indexes defined on table.
func (d *DB) Indexes(ctx context.Context, table string) ([]string, error) {
	if d.closed {
		return nil, ErrClosed
	}

	rows, err := d.conn.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type='index' AND tbl_name=?", table)
	if err != nil {
		return nil, fmt.Errorf("failed to list indexes of %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to list indexes of %s: %w", table, err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ErrorCode returns the SQLite result code carried by err, or 0 when err
// did not come from the engine.
func ErrorCode(err error) int {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code()
	}
	return 0
}

// changeKeywords are the leading keywords of statements whose change count is reported
var changeKeywords = map[string]struct{}{
	"INSERT":  {},
	"UPDATE":  {},
	"DELETE":  {},
	"REPLACE": {},
}

// reportsChanges reports whether the statement is a data modification whose
// change count is meaningful. DDL and other statements report -1.
func reportsChanges(statement string) bool {
	_, ok := changeKeywords[strings.ToUpper(leadingKeyword(statement))]
	return ok
}

// leadingKeyword returns the first word of statement, skipping whitespace
// and SQL comments.
func leadingKeyword(statement string) string {
	s := statement
	for {
		s = strings.TrimLeft(s, " \t\r\n\f")
		switch {
		case strings.HasPrefix(s, "--"):
			idx := strings.IndexByte(s, '\n')
			if idx < 0 {
				return ""
			}
			s = s[idx+1:]
		case strings.HasPrefix(s, "/*"):
			idx := strings.Index(s[2:], "*/")
			if idx < 0 {
				return ""
			}
			s = s[idx+4:]
		default:
			end := strings.IndexFunc(s, func(r rune) bool {
				return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
			})
			if end < 0 {
				return s
			}
			return s[:end]
		}
	}
}
