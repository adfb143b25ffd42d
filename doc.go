// Package sq3 implements an interactive command shell for a SQLite database file.
//
// A Session reads one line at a time and decides whether it is a dot-command
// (a line starting with ".") or an SQL statement. Statements are executed by
// the embedded SQLite engine one at a time, each with no effect on failure, and query
// results are rendered as an aligned table with an interactive pager, as
// tab-delimited lines, or written to an output file.
//
// # Basic Usage
//
//	builder := sq3.NewBuilder("data.db").
//	    WithInput(lineReader).
//	    WithStdout(os.Stdout).
//	    WithStderr(os.Stderr)
//
//	validatedBuilder, err := builder.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	session, err := validatedBuilder.Open(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer session.Close()
//
//	if err := session.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Dot-commands
//
// Every command has a short and a long form:
//   - .q[uit]                     leave the shell
//   - .h[elp]                     show help
//   - .m[ode] [tabular|tab-delimited]  show or set the render mode ("def" and "csv" also work)
//   - .p[age] [N|-]               show, set or disable paging
//   - .o[ut] [path|-]             show, set or clear the output file
//   - .l[ist] [-full] [table...]  list tables, optionally with definitions and indexes
//   - .a[lias] [name [template]]  list, show or define aliases
//   - .e[cho] words...            print words to standard output
//   - .s[et]                      reserved, accepted and ignored
//
// # Aliases
//
// An alias maps a name to a template with positional placeholders:
//
//	SQL> .alias nrows select count(*) from {0}
//	SQL> nrows users
//	;;; alias expanded to: select count(*) from users
//
// The expanded line is interpreted again, so an alias may expand to another alias.
//
// # Output Files
//
// With .out set, query results go to the named file instead of the terminal.
// The format follows the file extension: ".xlsx" writes an Excel workbook,
// ".parquet" writes a Parquet file and anything else writes tab-delimited
// text. A trailing ".gz", ".xz" or ".zst" compresses the output.
package sq3
