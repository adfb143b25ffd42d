// Command sq3 is an interactive shell for SQLite database files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/nao1215/sq3"
)

const (
	// defaultInitFile is interpreted before the first prompt
	defaultInitFile = "~/.sq3rc"
	// defaultHistoryFile keeps the line editing history between sessions
	defaultHistoryFile = "~/.sq3hist"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options are the parsed command line options
type options struct {
	help        bool
	version     bool
	initFile    string
	historyFile string
	histlen     int
	databases   []string
}

// parseArgs parses the command line
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("sq3", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVarP(&opts.help, "help", "h", false, "Display this help message.")
	fs.BoolVarP(&opts.version, "version", "v", false, "Display version number.")
	fs.StringVar(&opts.initFile, "init", defaultInitFile, "File of commands to run before the first prompt.")
	fs.StringVar(&opts.historyFile, "history", defaultHistoryFile, "File the input history is kept in.")
	fs.IntVar(&opts.histlen, "histlen", sq3.DefaultHistoryLength, "Number of history lines to keep.")
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.databases = fs.Args()
	return opts, nil
}

// run is the whole program; it returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, ";;; %v\n", err)
		usage(stdout, false)
		return 2
	}

	switch {
	case opts.help:
		usage(stdout, true)
		return 0
	case opts.version:
		fmt.Fprintf(stdout, "sq3 v%s\n", sq3.Version)
		return 0
	case len(opts.databases) == 0:
		usage(stdout, false)
		return 0
	case len(opts.databases) > 1:
		fmt.Fprintln(stderr, ";;; Warning: multi-database support is not implemented yet.")
	}

	ctx := context.Background()

	builder, err := sq3.NewBuilder(opts.databases[0]).
		WithStdout(stdout).
		WithStderr(stderr).
		WithColor(!color.NoColor).
		WithHistoryLength(opts.histlen).
		Build(ctx)
	if err != nil {
		fmt.Fprintf(stderr, ";;; Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stderr, ";;; sq3 - v%s\n", sq3.Version)
	fmt.Fprintln(stderr, ";;; Use .h or .help for help.")

	session, editor, err := openShell(ctx, builder, expandHome(opts.historyFile), stderr)
	if err != nil {
		fmt.Fprintf(stderr, ";;; Error: %v\n", err)
		return 1
	}
	defer session.Close()
	defer editor.Close()

	session.LoadInitFile(ctx, expandHome(opts.initFile))
	if err := session.Run(ctx); err != nil {
		fmt.Fprintf(stderr, ";;; Error: %v\n", err)
		return 1
	}
	return 0
}

// openShell opens the session and then the line editor, sized by the
// session's history length setting
func openShell(ctx context.Context, builder *sq3.Builder, historyFile string, stderr io.Writer) (*sq3.Session, *lineEditor, error) {
	editor := newLineEditor(sq3.DefaultPrompt)
	session, err := builder.WithInput(editor).Open(ctx)
	if err != nil {
		return nil, nil, err
	}

	if err := editor.open(historyFile, session.HistoryLength(), stderr); err != nil {
		_ = session.Close()
		return nil, nil, err
	}
	return session, editor, nil
}

// usage writes the short usage line, and the option list when full is set
func usage(w io.Writer, full bool) {
	fmt.Fprintln(w, "Usage: sq3 [options] database.db")
	if !full {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, " -h, --help       Display this help message.")
	fmt.Fprintln(w, " -v, --version    Display version number.")
	fmt.Fprintln(w, "     --init FILE  Commands to run before the first prompt (default ~/.sq3rc).")
	fmt.Fprintln(w, "     --history F  Input history file (default ~/.sq3hist).")
	fmt.Fprintln(w, "     --histlen N  Number of history lines to keep (default 1000).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "At the SQL> prompt, type .h for help.")
}

// expandHome replaces a leading "~" with the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
