package sq3

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
	"sync"

	"github.com/nao1215/sq3/engine"
)

// historyLengthSetting is the settings key holding the history length hint
const historyLengthSetting = "histlen"

// Session is one interactive shell on one database. It owns the mutable
// shell state changed by dot-commands. A Session is not safe for
// concurrent use; statements run one at a time.
type Session struct {
	db     *engine.DB
	stdout io.Writer
	diag   *reporter
	input  LineReader
	prompt string

	mode     RenderMode
	pageSize int
	outFile  string
	aliases  *AliasTable
	settings map[string]int

	closeOnce sync.Once
	closeErr  error
}

// sessionConfig carries the builder's settings into a new session
type sessionConfig struct {
	stdout        io.Writer
	diag          *reporter
	input         LineReader
	prompt        string
	historyLength int
}

// newSession creates a session on an open database
func newSession(db *engine.DB, cfg sessionConfig) *Session {
	return &Session{
		db:       db,
		stdout:   cfg.stdout,
		diag:     cfg.diag,
		input:    cfg.input,
		prompt:   cfg.prompt,
		mode:     RenderModeTabular,
		aliases:  NewAliasTable(),
		settings: map[string]int{historyLengthSetting: cfg.historyLength},
	}
}

// Mode returns the current render mode.
func (s *Session) Mode() RenderMode {
	return s.mode
}

// PageSize returns the configured page size; 0 means paging is disabled.
func (s *Session) PageSize() int {
	return s.pageSize
}

// OutFile returns the output file target, or "" when results go to the terminal.
func (s *Session) OutFile() string {
	return s.outFile
}

// Aliases returns the session's alias table.
func (s *Session) Aliases() *AliasTable {
	return s.aliases
}

// Settings returns a copy of the session settings.
func (s *Session) Settings() map[string]int {
	return maps.Clone(s.settings)
}

// HistoryLength returns the number of history lines the line editor should keep.
func (s *Session) HistoryLength() int {
	return s.settings[historyLengthSetting]
}

// Close closes the database. Only the first call has an effect.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.db.Close()
	})
	return s.closeErr
}

// Run reads and interprets lines until .quit or end of input.
// An interrupted line is discarded. A *FormatError from alias expansion is
// returned to the caller and ends the loop.
func (s *Session) Run(ctx context.Context) error {
	if s.input == nil {
		return ErrNoInput
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.input.ReadLine(s.prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.diag.raw("\n")
				return nil
			}
			if errors.Is(err, ErrInterrupted) {
				continue
			}
			return err
		}

		quit, err := s.Interpret(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// LoadInitFile interprets every non-blank line of the file at path. A
// missing file is skipped silently. A read failure or an alias expansion
// failure is reported and stops the file, but never the session.
// .quit inside the file is ignored.
func (s *Session) LoadInitFile(ctx context.Context, path string) {
	f, err := os.Open(path) //nolint:gosec // init file path comes from the operator
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.diag.plain("Error reading init file: %v", err)
		}
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := s.Interpret(ctx, line); err != nil {
			s.diag.plain("Error reading init file: %v", err)
			return
		}
	}
	if err := scanner.Err(); err != nil {
		s.diag.plain("Error reading init file: %v", err)
	}
}

// Interpret runs one input line: a dot-command, an alias invocation or a
// statement. It reports whether the session should end. Usage, syntax,
// engine and file errors are reported on the diagnostic stream and do not
// produce an error; only a *FormatError from alias expansion is returned.
func (s *Session) Interpret(ctx context.Context, line string) (bool, error) {
	return s.interpret(ctx, line, 0)
}

func (s *Session) interpret(ctx context.Context, line string, depth int) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	words := strings.Fields(line)
	if line[0] == commandPrefix {
		return s.dispatch(ctx, words)
	}

	if template, ok := s.aliases.Lookup(words[0]); ok {
		if depth >= maxAliasDepth {
			s.diag.warn("Error: %v (%s)", ErrAliasDepth, words[0])
			return false, nil
		}
		expanded, err := Expand(template, words[1:])
		if err != nil {
			return false, err
		}
		s.diag.plain("alias expanded to: %s", expanded)
		return s.interpret(ctx, expanded, depth+1)
	}

	_, _ = s.Execute(ctx, line)
	return false, nil
}

// Execute runs one statement, renders its result and reports the outcome
// on the diagnostic stream. The returned error is the one that was
// reported: ErrIncompleteStatement or an *OperationalError.
func (s *Session) Execute(ctx context.Context, text string) (engine.Result, error) {
	statement := normalizeStatement(text)
	if !engine.IsComplete(statement) {
		s.diag.fail("SQL syntax incorrect.")
		return engine.Result{RowsAffected: -1}, ErrIncompleteStatement
	}

	result, err := s.db.Execute(ctx, statement, s.showResults)
	if err != nil {
		opErr := &OperationalError{Statement: statement, Code: engine.ErrorCode(err), Err: err}
		s.diag.fail("SQL Error: %v", opErr)
		return result, opErr
	}

	if !result.IsQuery() && result.RowsAffected >= 0 {
		s.diag.info("%d row(s) affected.", result.RowsAffected)
	}
	s.diag.info("Ok.")
	return result, nil
}

// showResults renders a result set to the output file when one is set,
// otherwise to the terminal in the current mode. A file that cannot be
// written is reported without failing the statement.
func (s *Session) showResults(rows *engine.Rows) error {
	if s.outFile != "" {
		n, err := writeResultFile(s.outFile, rows)
		if err != nil {
			if rowsErr := rows.Err(); rowsErr != nil {
				return rowsErr
			}
			s.diag.fail("Error: %v", err)
			return nil
		}
		s.diag.info("%d row(s) written.", n)
		return nil
	}

	var (
		n   int
		err error
	)
	switch s.mode {
	case RenderModeTabDelimited:
		n, err = writeDelimited(s.stdout, rows)
	default:
		n, err = renderTable(s.stdout, s.input, s.pageSize, rows)
	}
	if err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}
	s.diag.info("%d row(s) returned.", n)
	return nil
}
