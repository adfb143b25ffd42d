package sq3

// helpText is shown by .help
const helpText = `Commands start with a dot (.). Available commands:

.l[ist] [-full] [table...]  List all table names in db. With '-full', also display table structure.

.p[age] N                   When displaying query results, pause every N lines.
                            With no arguments, display current value of N. With - or 0, disable paging.

.o[ut] O                    Write query results to file O. The format follows the extension:
                            .xlsx and .parquet are written as such, anything else as tab-delimited
                            text. A .gz, .xz or .zst suffix compresses the file.
                            With no arguments, display current value of O. With -, disable file output.

.m[ode] [tabular|tab-delimited]
                            Select tabular (human readable) or tab-delimited output format.
                            'def' and 'csv' are accepted as short names.
                            With no arguments, display current mode.

.a[lias] name definition    Set 'name' as an alias for string 'definition'. The definition may contain
                            placeholders {0}, {1}, etc. For example:
                              .alias nrows select count(*) from {0}
                            This can then be invoked as: SQL> nrows table_name
                            With one argument, display that alias. With no arguments, display all aliases.

.e[cho] words...            Print words... to standard output. Useful for messages in init file.

.q[uit]                     Exit program (ctrl-d also works).


Everything else is interpreted as an SQL statement. The semicolon at the end of SQL statements is optional.
`
